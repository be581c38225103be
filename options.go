package prettytable

import (
	"fmt"
)

// RuleStyle controls which border lines are drawn. Horizontal rules accept
// all four values; vertical rules accept every value except RuleHeader.
type RuleStyle int

const (
	RuleNone   RuleStyle = iota // no rules
	RuleFrame                   // outer frame only
	RuleHeader                  // after the header row only (hrules only)
	RuleAll                     // after every row / between every column
)

func (r RuleStyle) String() string {
	switch r {
	case RuleNone:
		return "none"
	case RuleFrame:
		return "frame"
	case RuleHeader:
		return "header"
	case RuleAll:
		return "all"
	default:
		return fmt.Sprintf("RuleStyle(%d)", int(r))
	}
}

// Align controls horizontal justification within a column.
// The zero value is AlignCenter, the default for new columns.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// VAlign controls vertical placement of a cell's lines within its row.
// The zero value is VAlignTop.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignMiddle
	VAlignBottom
)

func (v VAlign) String() string {
	switch v {
	case VAlignTop:
		return "top"
	case VAlignMiddle:
		return "middle"
	case VAlignBottom:
		return "bottom"
	default:
		return fmt.Sprintf("VAlign(%d)", int(v))
	}
}

// HeaderStyle is a text transform applied to field names in the header row.
// Transforms are applied after column widths are computed, so a transform
// that changes display width may misalign the header; this matches the
// conventional behavior of ASCII table generators.
type HeaderStyle int

const (
	HeaderStyleNone HeaderStyle = iota
	HeaderStyleCap
	HeaderStyleTitle
	HeaderStyleUpper
	HeaderStyleLower
)

// SortKey transforms a sort-column value before comparison.
type SortKey func(value any) any

// settings is a full snapshot of table-level configuration. Render calls
// operate on a clone, so per-call overrides never leak back into the table.
type settings struct {
	title             string
	start             int
	end               int // negative means through the last row
	fields            []string
	header            bool
	headerStyle       HeaderStyle
	border            bool
	hrules            RuleStyle
	vrules            RuleStyle
	minTableWidth     int // zero means unset
	maxTableWidth     int // zero means unset
	paddingWidth      int
	leftPaddingWidth  int // negative means inherit paddingWidth
	rightPaddingWidth int // negative means inherit paddingWidth
	verticalChar      string
	horizontalChar    string
	junctionChar      string
	sortBy            string
	sortKey           SortKey
	reverseSort       bool
	htmlFormat        bool
	xhtml             bool
	attributes        map[string]string
	printEmpty        bool
	oldSortSlice      bool
}

func defaultSettings() settings {
	return settings{
		end:               -1,
		header:            true,
		border:            true,
		hrules:            RuleFrame,
		vrules:            RuleAll,
		paddingWidth:      1,
		leftPaddingWidth:  -1,
		rightPaddingWidth: -1,
		verticalChar:      "|",
		horizontalChar:    "-",
		junctionChar:      "+",
		printEmpty:        true,
	}
}

// config is the unit an Option operates on: the column list plus the table
// settings. Table.Apply commits the result back to the table; render calls
// keep it as call-local scratch state.
type config struct {
	cols []Column
	settings
}

func (c *config) column(name string) (*Column, error) {
	for i := range c.cols {
		if c.cols[i].Name == name {
			return &c.cols[i], nil
		}
	}
	return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidOption, name)
}

func (c *config) columnIndex(name string) int {
	for i := range c.cols {
		if c.cols[i].Name == name {
			return i
		}
	}
	return -1
}

// Option adjusts table configuration. Options validate eagerly: an invalid
// value is reported when the option is applied, never at render time.
type Option func(*config) error

func nonNegative(name string, v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidOption, name, v)
	}
	return nil
}

func singleChar(name, s string) error {
	if stringWidth(s) != 1 {
		return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidOption, name, s)
	}
	return nil
}

// WithTitle sets an optional table title. An empty string removes the title.
func WithTitle(title string) Option {
	return func(c *config) error {
		c.title = title
		return nil
	}
}

// WithStart sets the index of the first data row to include.
func WithStart(start int) Option {
	return func(c *config) error {
		if err := nonNegative("start", start); err != nil {
			return err
		}
		c.start = start
		return nil
	}
}

// WithEnd sets the index one past the last data row to include, slice style.
func WithEnd(end int) Option {
	return func(c *config) error {
		if err := nonNegative("end", end); err != nil {
			return err
		}
		c.end = end
		return nil
	}
}

// WithAllRows removes any start/end row slicing.
func WithAllRows() Option {
	return func(c *config) error {
		c.start, c.end = 0, -1
		return nil
	}
}

// WithFields restricts output to the named columns. No names removes the
// restriction.
func WithFields(names ...string) Option {
	return func(c *config) error {
		for _, name := range names {
			if c.columnIndex(name) < 0 {
				return fmt.Errorf("%w: unknown field %q", ErrInvalidOption, name)
			}
		}
		c.fields = append([]string(nil), names...)
		return nil
	}
}

// WithHeader controls whether the field-name header row is printed.
func WithHeader(on bool) Option {
	return func(c *config) error {
		c.header = on
		return nil
	}
}

// WithHeaderStyle sets the text transform applied to header field names.
func WithHeaderStyle(style HeaderStyle) Option {
	return func(c *config) error {
		if style < HeaderStyleNone || style > HeaderStyleLower {
			return fmt.Errorf("%w: invalid header style %d", ErrInvalidOption, style)
		}
		c.headerStyle = style
		return nil
	}
}

// WithBorder controls whether a border is drawn around the table.
func WithBorder(on bool) Option {
	return func(c *config) error {
		c.border = on
		return nil
	}
}

// WithHRules controls horizontal rules after rows.
func WithHRules(style RuleStyle) Option {
	return func(c *config) error {
		if style < RuleNone || style > RuleAll {
			return fmt.Errorf("%w: invalid hrules style %d", ErrInvalidOption, style)
		}
		c.hrules = style
		return nil
	}
}

// WithVRules controls vertical rules between columns. RuleHeader is not a
// valid vertical style.
func WithVRules(style RuleStyle) Option {
	return func(c *config) error {
		if style != RuleNone && style != RuleFrame && style != RuleAll {
			return fmt.Errorf("%w: vrules must be all, frame or none, got %v", ErrInvalidOption, style)
		}
		c.vrules = style
		return nil
	}
}

// WithMinTableWidth sets the minimum rendered table width in characters.
func WithMinTableWidth(w int) Option {
	return func(c *config) error {
		if err := nonNegative("min_table_width", w); err != nil {
			return err
		}
		c.minTableWidth = w
		return nil
	}
}

// WithMaxTableWidth sets the maximum rendered table width in characters.
func WithMaxTableWidth(w int) Option {
	return func(c *config) error {
		if err := nonNegative("max_table_width", w); err != nil {
			return err
		}
		c.maxTableWidth = w
		return nil
	}
}

// WithPaddingWidth sets the number of spaces on either side of column data.
func WithPaddingWidth(w int) Option {
	return func(c *config) error {
		if err := nonNegative("padding_width", w); err != nil {
			return err
		}
		c.paddingWidth = w
		return nil
	}
}

// WithLeftPaddingWidth overrides the padding on the left side of column data.
func WithLeftPaddingWidth(w int) Option {
	return func(c *config) error {
		if err := nonNegative("left_padding_width", w); err != nil {
			return err
		}
		c.leftPaddingWidth = w
		return nil
	}
}

// WithRightPaddingWidth overrides the padding on the right side of column data.
func WithRightPaddingWidth(w int) Option {
	return func(c *config) error {
		if err := nonNegative("right_padding_width", w); err != nil {
			return err
		}
		c.rightPaddingWidth = w
		return nil
	}
}

// WithVerticalChar sets the glyph used for vertical lines.
func WithVerticalChar(s string) Option {
	return func(c *config) error {
		if err := singleChar("vertical_char", s); err != nil {
			return err
		}
		c.verticalChar = s
		return nil
	}
}

// WithHorizontalChar sets the glyph used for horizontal lines.
func WithHorizontalChar(s string) Option {
	return func(c *config) error {
		if err := singleChar("horizontal_char", s); err != nil {
			return err
		}
		c.horizontalChar = s
		return nil
	}
}

// WithJunctionChar sets the glyph drawn where rules cross.
func WithJunctionChar(s string) Option {
	return func(c *config) error {
		if err := singleChar("junction_char", s); err != nil {
			return err
		}
		c.junctionChar = s
		return nil
	}
}

// WithSortBy sorts rows by the named field. An empty name disables sorting.
func WithSortBy(field string) Option {
	return func(c *config) error {
		if field != "" && c.columnIndex(field) < 0 {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidOption, field)
		}
		c.sortBy = field
		return nil
	}
}

// WithSortKey sets a transform applied to sort-column values before
// comparison. A nil key compares values directly.
func WithSortKey(key SortKey) Option {
	return func(c *config) error {
		c.sortKey = key
		return nil
	}
}

// WithReverseSort controls sort direction: true sorts descending.
func WithReverseSort(on bool) Option {
	return func(c *config) error {
		c.reverseSort = on
		return nil
	}
}

// WithOldSortSlice slices rows before sorting instead of after.
func WithOldSortSlice(on bool) Option {
	return func(c *config) error {
		c.oldSortSlice = on
		return nil
	}
}

// WithHTMLFormat controls whether RenderHTML mirrors the table's rule and
// alignment styling, rather than emitting a bare semantic table.
func WithHTMLFormat(on bool) Option {
	return func(c *config) error {
		c.htmlFormat = on
		return nil
	}
}

// WithXHTML makes RenderHTML emit <br/> line breaks instead of <br>.
func WithXHTML(on bool) Option {
	return func(c *config) error {
		c.xhtml = on
		return nil
	}
}

// WithAttributes sets HTML attributes emitted on the <table> tag.
// Attributes are written in sorted key order for deterministic output.
func WithAttributes(attrs map[string]string) Option {
	return func(c *config) error {
		m := make(map[string]string, len(attrs))
		for k, v := range attrs {
			m[k] = v
		}
		c.attributes = m
		return nil
	}
}

// WithPrintEmpty controls whether a table with no rows renders a header and
// frame skeleton (true) or an empty string (false).
func WithPrintEmpty(on bool) Option {
	return func(c *config) error {
		c.printEmpty = on
		return nil
	}
}

// WithAlign sets the horizontal alignment of every column.
func WithAlign(a Align) Option {
	return func(c *config) error {
		if err := validAlign(a); err != nil {
			return err
		}
		for i := range c.cols {
			c.cols[i].Align = a
		}
		return nil
	}
}

// WithVAlign sets the vertical alignment of every column.
func WithVAlign(v VAlign) Option {
	return func(c *config) error {
		if err := validVAlign(v); err != nil {
			return err
		}
		for i := range c.cols {
			c.cols[i].VAlign = v
		}
		return nil
	}
}

// WithColumnAlign sets the horizontal alignment of one column.
func WithColumnAlign(field string, a Align) Option {
	return func(c *config) error {
		if err := validAlign(a); err != nil {
			return err
		}
		col, err := c.column(field)
		if err != nil {
			return err
		}
		col.Align = a
		return nil
	}
}

// WithColumnVAlign sets the vertical alignment of one column.
func WithColumnVAlign(field string, v VAlign) Option {
	return func(c *config) error {
		if err := validVAlign(v); err != nil {
			return err
		}
		col, err := c.column(field)
		if err != nil {
			return err
		}
		col.VAlign = v
		return nil
	}
}

// WithMinWidth sets the minimum width of every column.
func WithMinWidth(w int) Option {
	return func(c *config) error {
		if err := nonNegative("min_width", w); err != nil {
			return err
		}
		for i := range c.cols {
			c.cols[i].MinWidth = w
		}
		return nil
	}
}

// WithMaxWidth sets the maximum width of every column. Zero removes the cap.
func WithMaxWidth(w int) Option {
	return func(c *config) error {
		if err := nonNegative("max_width", w); err != nil {
			return err
		}
		for i := range c.cols {
			c.cols[i].MaxWidth = w
		}
		return nil
	}
}

// WithColumnMinWidth sets the minimum width of one column.
func WithColumnMinWidth(field string, w int) Option {
	return func(c *config) error {
		if err := nonNegative("min_width", w); err != nil {
			return err
		}
		col, err := c.column(field)
		if err != nil {
			return err
		}
		col.MinWidth = w
		return nil
	}
}

// WithColumnMaxWidth sets the maximum width of one column. Zero removes the cap.
func WithColumnMaxWidth(field string, w int) Option {
	return func(c *config) error {
		if err := nonNegative("max_width", w); err != nil {
			return err
		}
		col, err := c.column(field)
		if err != nil {
			return err
		}
		col.MaxWidth = w
		return nil
	}
}

// WithIntFormat sets the integer format directive of every column.
func WithIntFormat(spec string) Option {
	return func(c *config) error {
		if err := validIntFormat(spec); err != nil {
			return err
		}
		for i := range c.cols {
			c.cols[i].IntFormat = spec
		}
		return nil
	}
}

// WithFloatFormat sets the float format directive of every column.
func WithFloatFormat(spec string) Option {
	return func(c *config) error {
		if err := validFloatFormat(spec); err != nil {
			return err
		}
		for i := range c.cols {
			c.cols[i].FloatFormat = spec
		}
		return nil
	}
}

// WithColumnIntFormat sets the integer format directive of one column.
func WithColumnIntFormat(field, spec string) Option {
	return func(c *config) error {
		if err := validIntFormat(spec); err != nil {
			return err
		}
		col, err := c.column(field)
		if err != nil {
			return err
		}
		col.IntFormat = spec
		return nil
	}
}

// WithColumnFloatFormat sets the float format directive of one column.
func WithColumnFloatFormat(field, spec string) Option {
	return func(c *config) error {
		if err := validFloatFormat(spec); err != nil {
			return err
		}
		col, err := c.column(field)
		if err != nil {
			return err
		}
		col.FloatFormat = spec
		return nil
	}
}

func validAlign(a Align) error {
	if a < AlignCenter || a > AlignRight {
		return fmt.Errorf("%w: invalid alignment %d", ErrInvalidOption, a)
	}
	return nil
}

func validVAlign(v VAlign) error {
	if v < VAlignTop || v > VAlignBottom {
		return fmt.Errorf("%w: invalid vertical alignment %d", ErrInvalidOption, v)
	}
	return nil
}
