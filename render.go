package prettytable

import (
	"fmt"
	"sort"
	"strings"
)

// renderConfig clones the table configuration and applies per-call overrides.
// Overrides never persist beyond the render call.
func (t *Table) renderConfig(opts ...Option) (*config, error) {
	cfg := t.config()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// selectRows returns copies of the rows to print, sorted and sliced per the
// configuration.
func (t *Table) selectRows(cfg *config) ([][]any, error) {
	rows := make([][]any, len(t.rows))
	for i, row := range t.rows {
		rows[i] = append([]any(nil), row...)
	}
	if cfg.oldSortSlice {
		s, e := sliceBounds(cfg.start, cfg.end, len(rows))
		rows = rows[s:e]
	}
	if cfg.sortBy != "" {
		idx := cfg.columnIndex(cfg.sortBy)
		if idx < 0 {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidOption, cfg.sortBy)
		}
		sortValue := func(row []any) any {
			if cfg.sortKey != nil {
				return cfg.sortKey(row[idx])
			}
			return row[idx]
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return compareValues(sortValue(rows[i]), sortValue(rows[j])) < 0
		})
		// Reverse the sorted slice rather than flipping the comparator, so a
		// reversed render is the exact reverse of the ascending one.
		if cfg.reverseSort {
			for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
				rows[i], rows[j] = rows[j], rows[i]
			}
		}
	}
	if !cfg.oldSortSlice {
		s, e := sliceBounds(cfg.start, cfg.end, len(rows))
		rows = rows[s:e]
	}
	return rows, nil
}

// compareValues orders scalar cell values: numerically when both sides are
// numeric, by natural string representation otherwise.
func compareValues(a, b any) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// renderLines builds the physical line sequence of the plain-text layout:
// title, header or top rule, row blocks, bottom rule.
func (t *Table) renderLines(cfg *config) ([]string, error) {
	if len(t.rows) == 0 && (!cfg.printEmpty || !cfg.border) {
		return nil, nil
	}
	rows, err := t.selectRows(cfg)
	if err != nil {
		return nil, err
	}
	formatted := formatRows(cfg.cols, rows)
	widths := cfg.computeWidths(formatted)
	hrule := cfg.hruleLine(widths)

	var lines []string
	if cfg.title != "" {
		lines = append(lines, cfg.titleLines(cfg.title, widths, hrule)...)
	}
	if cfg.header {
		lines = append(lines, cfg.headerLines(widths, hrule)...)
	} else if cfg.border && (cfg.hrules == RuleAll || cfg.hrules == RuleFrame) {
		lines = append(lines, hrule)
	}
	for _, row := range formatted {
		lines = append(lines, cfg.rowLines(row, widths, hrule))
	}
	if cfg.border && cfg.hrules == RuleFrame {
		lines = append(lines, hrule)
	}
	return lines, nil
}

// Render returns the plain-text boxed rendering of the table. Options
// override the table's persisted settings for this call only.
func (t *Table) Render(opts ...Option) (string, error) {
	cfg, err := t.renderConfig(opts...)
	if err != nil {
		return "", err
	}
	lines, err := t.renderLines(cfg)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Paginate renders the table in pages of pageLength rows each, joined by a
// form-feed character. Each page is rendered independently.
func (t *Table) Paginate(pageLength int, opts ...Option) (string, error) {
	if pageLength <= 0 {
		return "", fmt.Errorf("%w: page length must be positive, got %d", ErrInvalidOption, pageLength)
	}
	cfg, err := t.renderConfig(opts...)
	if err != nil {
		return "", err
	}
	start := cfg.start
	trueEnd := cfg.end
	if trueEnd < 0 || trueEnd > len(t.rows) {
		trueEnd = len(t.rows)
	}
	var pages []string
	for {
		end := start + pageLength
		if end > trueEnd {
			end = trueEnd
		}
		page := *cfg
		page.start, page.end = start, end
		lines, err := t.renderLines(&page)
		if err != nil {
			return "", err
		}
		pages = append(pages, strings.Join(lines, "\n"))
		if end >= trueEnd {
			break
		}
		start += pageLength
	}
	return strings.Join(pages, "\f"), nil
}
