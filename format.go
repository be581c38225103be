package prettytable

import (
	"fmt"
	"regexp"
)

// Format directives are the body of a printf verb: "03" renders integers via
// "%03d", ".2" renders floats via "%.2f". Directives are validated when
// configured, so formatting itself never fails.
var (
	intFormatRE   = regexp.MustCompile(`^[+-]? ?[0-9]+$`)
	floatFormatRE = regexp.MustCompile(`^[+-]?[0-9]*\.[0-9]*$`)
)

func validIntFormat(spec string) error {
	if spec == "" {
		return nil
	}
	if !intFormatRE.MatchString(spec) {
		return fmt.Errorf("%w: %q is not an integer format directive", ErrInvalidOption, spec)
	}
	return nil
}

func validFloatFormat(spec string) error {
	if spec == "" {
		return nil
	}
	if !floatFormatRE.MatchString(spec) {
		return fmt.Errorf("%w: %q is not a float format directive", ErrInvalidOption, spec)
	}
	return nil
}

// formatValue renders a raw cell value to its display string. Integer and
// float values honor the column's format directives; everything else uses its
// natural representation.
func formatValue(col Column, value any) string {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		if col.IntFormat != "" {
			return fmt.Sprintf("%"+col.IntFormat+"d", value)
		}
	case float32, float64:
		if col.FloatFormat != "" {
			return fmt.Sprintf("%"+col.FloatFormat+"f", value)
		}
	}
	return fmt.Sprint(value)
}

func formatRow(cols []Column, row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = formatValue(cols[i], v)
	}
	return out
}

func formatRows(cols []Column, rows [][]any) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = formatRow(cols, row)
	}
	return out
}
