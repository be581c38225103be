package prettytable

import "math"

// The width resolver turns formatted rows into committed per-column widths.
// Widths are render-scratch state: computed once per render pass and threaded
// explicitly into the rule renderer and row layout, never stored on the table.

func (c *config) paddingWidths() (lpad, rpad int) {
	lpad, rpad = c.paddingWidth, c.paddingWidth
	if c.leftPaddingWidth >= 0 {
		lpad = c.leftPaddingWidth
	}
	if c.rightPaddingWidth >= 0 {
		rpad = c.rightPaddingWidth
	}
	return lpad, rpad
}

func (c *config) fieldVisible(name string) bool {
	if len(c.fields) == 0 {
		return true
	}
	for _, f := range c.fields {
		if f == name {
			return true
		}
	}
	return false
}

// computeTableWidth returns the display width the table would occupy with the
// given column widths, including padding and vertical-rule overhead, floored
// by the title width.
func (c *config) computeTableWidth(widths []int) int {
	lpad, rpad := c.paddingWidths()
	titleWidth := 0
	if c.title != "" {
		titleWidth = stringWidth(c.title) + lpad + rpad
	}
	if tw := c.rawTableWidth(widths); tw > titleWidth {
		return tw
	}
	return titleWidth
}

// rawTableWidth is computeTableWidth without the title floor; the grow step
// compares against it so that a wide title actually widens the columns.
func (c *config) rawTableWidth(widths []int) int {
	lpad, rpad := c.paddingWidths()
	tw := 0
	if c.vrules == RuleFrame || c.vrules == RuleAll {
		tw = 2
	}
	if c.vrules == RuleAll && len(c.cols) > 1 {
		tw += len(c.cols) - 1
	}
	for i, col := range c.cols {
		if c.fieldVisible(col.Name) {
			tw += widths[i] + lpad + rpad
		}
	}
	return tw
}

// nonShrinkable returns the overhead that proportional scaling cannot touch:
// vertical rule characters and per-column padding.
func (c *config) nonShrinkable() (vrule, padding int) {
	if c.vrules == RuleFrame || c.vrules == RuleAll {
		vrule = 2
	}
	if c.vrules == RuleAll && len(c.cols) > 1 {
		vrule += len(c.cols) - 1
	}
	mult := 1
	if c.vrules == RuleAll {
		mult = 2
	}
	padding = c.paddingWidth * len(c.cols) * mult
	return vrule, padding
}

// computeWidths resolves the committed width of every column. Base widths
// come from header and cell content under per-column min/max constraints;
// a max-table-width ceiling shrinks them proportionally, and a
// min-table-width or title floor grows them. Shrink and grow are mutually
// exclusive within one render pass.
func (c *config) computeWidths(formatted [][]string) []int {
	n := len(c.cols)
	widths := make([]int, n)
	if c.header {
		for i, col := range c.cols {
			widths[i], _ = textSize(col.Name)
		}
	}

	// The effective minimum is floored by the header text (or, headerless,
	// the first row's cell); the floor applies only when rows exist.
	mins := make([]int, n)
	for i, col := range c.cols {
		ref := ""
		if c.header {
			ref = col.Name
		} else if len(formatted) > 0 {
			ref = formatted[0][i]
		}
		mins[i], _ = textSize(ref)
		if col.MinWidth > mins[i] {
			mins[i] = col.MinWidth
		}
	}

	for _, row := range formatted {
		for i, cell := range row {
			w, _ := textSize(cell)
			if capw := c.cols[i].MaxWidth; capw > 0 && w > capw {
				w = capw
			}
			if w > widths[i] {
				widths[i] = w
			}
			if widths[i] < mins[i] {
				widths[i] = mins[i]
			}
		}
	}

	shrunk := false
	if c.maxTableWidth > 0 {
		if tw := c.computeTableWidth(widths); tw > c.maxTableWidth {
			vrule, padding := c.nonShrinkable()
			dataWidth := tw - padding - vrule
			budget := c.maxTableWidth
			if budget < vrule+padding {
				// Degenerate ceiling: relax instead of going negative.
				budget = vrule + padding + len(formatted)
			}
			scale := 1.0
			if dataWidth != 0 {
				scale = math.Min(1, float64(budget-padding-vrule)/float64(dataWidth))
			}
			for i := range widths {
				widths[i] = int(float64(widths[i]) * scale)
			}
			shrunk = true
		}
	}

	if !shrunk && (c.minTableWidth > 0 || c.title != "") {
		lpad, rpad := c.paddingWidths()
		floor := c.minTableWidth
		if c.title != "" {
			// The title row spends two columns on its endpoints.
			if tw := stringWidth(c.title) + lpad + rpad + 2; tw > floor {
				floor = tw
			}
		}
		if tw := c.rawTableWidth(widths); tw < floor {
			vrule, padding := c.nonShrinkable()
			dataWidth := tw - padding - vrule
			scale := 1.0
			if dataWidth != 0 {
				scale = float64(floor-padding-vrule) / float64(dataWidth)
			}
			for i := range widths {
				widths[i] = int(math.Ceil(float64(widths[i]) * scale))
			}
		}
	}
	return widths
}
