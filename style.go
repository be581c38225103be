package prettytable

import (
	"fmt"
	"math/rand"
)

// TableStyle is a preset bundle of render settings.
type TableStyle int

const (
	StyleDefault TableStyle = iota
	StyleMSWordFriendly
	StylePlainColumns
	StyleRandom
)

// SetStyle applies a preset style to the table's persistent settings.
func (t *Table) SetStyle(style TableStyle) error {
	switch style {
	case StyleDefault:
		return t.Apply(
			WithHeader(true), WithBorder(true),
			WithHRules(RuleFrame), WithVRules(RuleAll),
			WithPaddingWidth(1), WithLeftPaddingWidth(1), WithRightPaddingWidth(1),
			WithVerticalChar("|"), WithHorizontalChar("-"), WithJunctionChar("+"),
		)
	case StyleMSWordFriendly:
		return t.Apply(
			WithHeader(true), WithBorder(true), WithHRules(RuleNone),
			WithPaddingWidth(1), WithLeftPaddingWidth(1), WithRightPaddingWidth(1),
			WithVerticalChar("|"),
		)
	case StylePlainColumns:
		return t.Apply(
			WithHeader(true), WithBorder(false),
			WithPaddingWidth(1), WithLeftPaddingWidth(0), WithRightPaddingWidth(8),
		)
	case StyleRandom:
		const glyphs = `~!@#$%^&*()_+|-=\{}[];':",./;<>?`
		pick := func() string { return string(glyphs[rand.Intn(len(glyphs))]) }
		hrules := []RuleStyle{RuleAll, RuleFrame, RuleHeader, RuleNone}
		vrules := []RuleStyle{RuleAll, RuleFrame, RuleNone}
		return t.Apply(
			WithHeader(rand.Intn(2) == 0),
			WithBorder(rand.Intn(2) == 0),
			WithHRules(hrules[rand.Intn(len(hrules))]),
			WithVRules(vrules[rand.Intn(len(vrules))]),
			WithLeftPaddingWidth(rand.Intn(6)),
			WithRightPaddingWidth(rand.Intn(6)),
			WithVerticalChar(pick()),
			WithHorizontalChar(pick()),
			WithJunctionChar(pick()),
		)
	default:
		return fmt.Errorf("%w: unknown table style %d", ErrInvalidOption, style)
	}
}
