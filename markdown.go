package prettytable

import (
	"fmt"
	"strings"
)

// RenderMarkdown returns a pipe-delimited Markdown table: the header row, a
// width-matched separator row of dashes, then the data rows.
func (t *Table) RenderMarkdown(opts ...Option) (string, error) {
	cfg, err := t.renderConfig(opts...)
	if err != nil {
		return "", err
	}
	cfg.title = ""
	cfg.header = true
	cfg.border = true
	cfg.junctionChar = "|"
	cfg.hrules = RuleHeader
	lines, err := t.renderLines(cfg)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// FromMarkdown builds a table from a Markdown pipe table: the first line is
// the header, the second line is the alignment separator, the rest are rows.
func FromMarkdown(src string, opts ...Option) (*Table, error) {
	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: markdown table needs a header and separator line", ErrInvalidOption)
	}
	t, err := New(nil)
	if err != nil {
		return nil, err
	}
	if err := t.SetFieldNames(splitMarkdownRow(lines[0])); err != nil {
		return nil, err
	}
	for _, line := range lines[2:] {
		if line == "" {
			continue
		}
		cells := splitMarkdownRow(line)
		row := make([]any, len(cells))
		for i, cell := range cells {
			row[i] = cell
		}
		if err := t.AddRow(row); err != nil {
			return nil, err
		}
	}
	if err := t.Apply(opts...); err != nil {
		return nil, err
	}
	return t, nil
}

func splitMarkdownRow(line string) []string {
	cells := strings.Split(strings.Trim(strings.TrimSpace(line), "|"), "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(strings.Trim(strings.TrimSpace(cell), ":"))
	}
	return cells
}
