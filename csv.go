package prettytable

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
)

// FromCSV builds a table from comma-separated data. The first record supplies
// the field names; every field is whitespace-trimmed.
func FromCSV(r io.Reader, opts ...Option) (*Table, error) {
	return FromDelimited(r, ',', opts...)
}

// FromDelimited is FromCSV with an explicit field delimiter.
func FromDelimited(r io.Reader, comma rune, opts ...Option) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	t, err := New(nil)
	if err != nil {
		return nil, err
	}
	for i, record := range records {
		for j := range record {
			record[j] = strings.TrimSpace(record[j])
		}
		if i == 0 {
			if err := t.SetFieldNames(record); err != nil {
				return nil, err
			}
			continue
		}
		row := make([]any, len(record))
		for j, cell := range record {
			row[j] = cell
		}
		if err := t.AddRow(row); err != nil {
			return nil, err
		}
	}
	// Options apply after the data so field-dependent settings such as
	// sorting can validate against the parsed column names.
	if err := t.Apply(opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// RenderCSV writes the selected rows as CSV, honoring slicing, sorting,
// cell formatting, and field visibility.
func (t *Table) RenderCSV(opts ...Option) (string, error) {
	cfg, err := t.renderConfig(opts...)
	if err != nil {
		return "", err
	}
	rows, err := t.selectRows(cfg)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if cfg.header {
		var names []string
		for _, col := range cfg.cols {
			if cfg.fieldVisible(col.Name) {
				names = append(names, col.Name)
			}
		}
		if err := w.Write(names); err != nil {
			return "", err
		}
	}
	for _, row := range formatRows(cfg.cols, rows) {
		var cells []string
		for i, col := range cfg.cols {
			if cfg.fieldVisible(col.Name) {
				cells = append(cells, row[i])
			}
		}
		if err := w.Write(cells); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}
