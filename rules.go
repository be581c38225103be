package prettytable

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// popRune drops the last rune of s. Used where a trailing separator space
// must become the outer frame glyph.
func popRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

// hruleLine draws one horizontal rule sized to the committed widths plus
// padding, with junction glyphs wherever a vertical rule crosses.
func (c *config) hruleLine(widths []int) string {
	if !c.border {
		return ""
	}
	lpad, rpad := c.paddingWidths()
	junctions := c.vrules == RuleAll || c.vrules == RuleFrame
	var b strings.Builder
	if junctions {
		b.WriteString(c.junctionChar)
	} else {
		b.WriteString(c.horizontalChar)
	}
	if len(c.cols) == 0 {
		if junctions {
			b.WriteString(c.junctionChar)
		} else {
			b.WriteString(c.horizontalChar)
		}
		return b.String()
	}
	for i, col := range c.cols {
		if !c.fieldVisible(col.Name) {
			continue
		}
		b.WriteString(strings.Repeat(c.horizontalChar, widths[i]+lpad+rpad))
		if c.vrules == RuleAll {
			b.WriteString(c.junctionChar)
		} else {
			b.WriteString(c.horizontalChar)
		}
	}
	line := b.String()
	if c.vrules == RuleFrame {
		line = popRune(line) + c.junctionChar
	}
	return line
}

// titleLines renders the title bar: an optional junction-free rule above, and
// the centered title between outer glyphs (blank unless vrules draws a frame).
func (c *config) titleLines(title string, widths []int, hrule string) []string {
	var lines []string
	if c.border && c.hrules != RuleNone {
		top := *c
		if top.vrules == RuleAll {
			top.vrules = RuleFrame
		}
		lines = append(lines, top.hruleLine(widths))
	}
	endpoint := " "
	if c.vrules == RuleAll || c.vrules == RuleFrame {
		endpoint = c.verticalChar
	}
	lpad, rpad := c.paddingWidths()
	padded := strings.Repeat(" ", lpad) + title + strings.Repeat(" ", rpad)
	lines = append(lines, endpoint+justify(padded, stringWidth(hrule)-2, AlignCenter)+endpoint)
	return lines
}

// headerLines renders the field-name row with surrounding rules per policy.
// Header styling is applied after widths were computed from the unstyled
// names; a width-changing transform therefore keeps the body's alignment.
func (c *config) headerLines(widths []int, hrule string) []string {
	var lines []string
	if c.border && (c.hrules == RuleAll || c.hrules == RuleFrame) {
		lines = append(lines, hrule)
	}
	lpad, rpad := c.paddingWidths()
	var b strings.Builder
	if c.border {
		if c.vrules == RuleAll || c.vrules == RuleFrame {
			b.WriteString(c.verticalChar)
		} else {
			b.WriteString(" ")
		}
	}
	if len(c.cols) == 0 {
		if c.vrules == RuleAll || c.vrules == RuleFrame {
			b.WriteString(c.verticalChar)
		} else {
			b.WriteString(" ")
		}
	}
	for i, col := range c.cols {
		if !c.fieldVisible(col.Name) {
			continue
		}
		name := applyHeaderStyle(c.headerStyle, col.Name)
		b.WriteString(strings.Repeat(" ", lpad))
		b.WriteString(justify(name, widths[i], col.Align))
		b.WriteString(strings.Repeat(" ", rpad))
		if c.border {
			if c.vrules == RuleAll {
				b.WriteString(c.verticalChar)
			} else {
				b.WriteString(" ")
			}
		}
	}
	line := b.String()
	if c.border && c.vrules == RuleFrame {
		line = popRune(line) + c.verticalChar
	}
	lines = append(lines, line)
	if c.border && c.hrules != RuleNone {
		lines = append(lines, hrule)
	}
	return lines
}

// rowLines lays out one logical row: cells are wrapped to their committed
// widths, vertically aligned to the row height, justified, and joined with
// vertical rules. The result may span several physical lines and, with
// RuleAll, carries its trailing rule.
func (c *config) rowLines(row []string, widths []int, hrule string) string {
	wrapped := make([][]string, len(row))
	height := 0
	for i, cell := range row {
		wrapped[i] = strings.Split(wrapCell(cell, widths[i]), "\n")
		if len(wrapped[i]) > height {
			height = len(wrapped[i])
		}
	}

	lpad, rpad := c.paddingWidths()
	bits := make([]strings.Builder, height)
	for y := range bits {
		if c.border {
			if c.vrules == RuleAll || c.vrules == RuleFrame {
				bits[y].WriteString(c.verticalChar)
			} else {
				bits[y].WriteString(" ")
			}
		}
	}
	for i, col := range c.cols {
		// Hidden columns still count toward row height but emit nothing.
		if !c.fieldVisible(col.Name) {
			continue
		}
		for y, l := range valignLines(wrapped[i], height, col.VAlign) {
			bits[y].WriteString(strings.Repeat(" ", lpad))
			bits[y].WriteString(justify(l, widths[i], col.Align))
			bits[y].WriteString(strings.Repeat(" ", rpad))
			if c.border {
				if c.vrules == RuleAll {
					bits[y].WriteString(c.verticalChar)
				} else {
					bits[y].WriteString(" ")
				}
			}
		}
	}

	lines := make([]string, height)
	for y := range bits {
		line := bits[y].String()
		if c.border && c.vrules == RuleFrame {
			line = popRune(line) + c.verticalChar
		}
		lines[y] = line
	}
	out := strings.Join(lines, "\n")
	if c.border && c.hrules == RuleAll {
		out += "\n" + hrule
	}
	return out
}

func applyHeaderStyle(style HeaderStyle, name string) string {
	switch style {
	case HeaderStyleCap:
		return capitalize(name)
	case HeaderStyleTitle:
		return cases.Title(language.Und).String(name)
	case HeaderStyleUpper:
		return strings.ToUpper(name)
	case HeaderStyleLower:
		return strings.ToLower(name)
	default:
		return name
	}
}

func capitalize(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}
