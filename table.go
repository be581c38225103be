package prettytable

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrInvalidOption reports configuration rejected at assignment time:
	// out-of-range values, unknown fields, malformed format directives,
	// multi-character border glyphs, duplicate column names.
	ErrInvalidOption = errors.New("invalid option")
	// ErrArityMismatch reports a row whose length does not match the column
	// count, or column data whose length does not match the row count.
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrRowIndex reports indexing or deletion of a nonexistent row.
	ErrRowIndex = errors.New("row index out of range")
	// ErrAmbiguousHTML reports HTML input that does not contain exactly one
	// <table> where one was expected.
	ErrAmbiguousHTML = errors.New("ambiguous html input")
)

// Column holds the configuration of one table column. Columns are identified
// by name; names are unique within a table.
type Column struct {
	Name        string
	Align       Align
	VAlign      VAlign
	MinWidth    int
	MaxWidth    int // zero means no cap
	IntFormat   string
	FloatFormat string
}

// Table owns an ordered list of columns, an ordered list of rows, and
// table-level render settings. Rendering never mutates row or column data;
// concurrent renders are safe as long as no goroutine mutates the table.
type Table struct {
	cols     []Column
	rows     [][]any
	settings settings
}

// New returns a table with the given field names. Options are applied as
// persistent settings, validated eagerly.
func New(fieldNames []string, opts ...Option) (*Table, error) {
	t := &Table{settings: defaultSettings()}
	if len(fieldNames) > 0 {
		if err := t.SetFieldNames(fieldNames); err != nil {
			return nil, err
		}
	}
	if err := t.Apply(opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// Apply validates and persists options on the table. On error, no option
// takes effect.
func (t *Table) Apply(opts ...Option) error {
	cfg := t.config()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return err
		}
	}
	t.cols = cfg.cols
	t.settings = cfg.settings
	return nil
}

// config clones the column list and settings so that option application and
// render passes never share mutable state with the table.
func (t *Table) config() *config {
	cols := make([]Column, len(t.cols))
	copy(cols, t.cols)
	return &config{cols: cols, settings: t.settings}
}

// FieldNames returns the column names in order.
func (t *Table) FieldNames() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.Name
	}
	return names
}

// Columns returns a copy of the column configuration.
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.cols))
	copy(cols, t.cols)
	return cols
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int { return len(t.rows) }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.cols) }

// SetFieldNames renames the columns. Per-column configuration is preserved by
// position. When the table holds rows, the new name list must have the same
// length as the current column list; names must be unique.
func (t *Table) SetFieldNames(names []string) error {
	if err := validFieldNames(names); err != nil {
		return err
	}
	if len(t.rows) > 0 && len(names) != len(t.cols) {
		return fmt.Errorf("%w: field name list has %d values, expected %d", ErrArityMismatch, len(names), len(t.cols))
	}
	cols := make([]Column, len(names))
	for i, name := range names {
		if i < len(t.cols) {
			cols[i] = t.cols[i]
		}
		cols[i].Name = name
	}
	t.cols = cols
	return nil
}

func validFieldNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate field name %q", ErrInvalidOption, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// AddRow appends one data row. The row length must match the column count.
// On a table with no columns, field names "Field 1".."Field n" are created.
func (t *Table) AddRow(row []any) error {
	if len(t.cols) == 0 {
		names := make([]string, len(row))
		for i := range row {
			names[i] = fmt.Sprintf("Field %d", i+1)
		}
		if err := t.SetFieldNames(names); err != nil {
			return err
		}
	}
	if len(row) != len(t.cols) {
		return fmt.Errorf("%w: row has %d values, expected %d", ErrArityMismatch, len(row), len(t.cols))
	}
	t.rows = append(t.rows, append([]any(nil), row...))
	return nil
}

// DeleteRow removes the row at the given index.
func (t *Table) DeleteRow(index int) error {
	if index < 0 || index >= len(t.rows) {
		return fmt.Errorf("%w: cannot delete row %d, table has %d rows", ErrRowIndex, index, len(t.rows))
	}
	t.rows = append(t.rows[:index], t.rows[index+1:]...)
	return nil
}

// AddColumn appends a column of data. The value count must match the current
// row count, unless the table has no rows yet.
func (t *Table) AddColumn(name string, values []any) error {
	if len(t.rows) != 0 && len(t.rows) != len(values) {
		return fmt.Errorf("%w: column has %d values, table has %d rows", ErrArityMismatch, len(values), len(t.rows))
	}
	for _, col := range t.cols {
		if col.Name == name {
			return fmt.Errorf("%w: duplicate field name %q", ErrInvalidOption, name)
		}
	}
	t.cols = append(t.cols, Column{Name: name})
	for i, v := range values {
		if len(t.rows) < i+1 {
			t.rows = append(t.rows, nil)
		}
		t.rows[i] = append(t.rows[i], v)
	}
	return nil
}

// ClearRows removes all rows but keeps the columns.
func (t *Table) ClearRows() { t.rows = nil }

// Clear removes all rows and columns, keeping only styling settings.
func (t *Table) Clear() {
	t.rows = nil
	t.cols = nil
}

// Copy returns a deep copy of the table.
func (t *Table) Copy() *Table {
	c := &Table{settings: t.settings}
	c.cols = append([]Column(nil), t.cols...)
	c.rows = make([][]any, len(t.rows))
	for i, row := range t.rows {
		c.rows[i] = append([]any(nil), row...)
	}
	if t.settings.fields != nil {
		c.settings.fields = append([]string(nil), t.settings.fields...)
	}
	if t.settings.attributes != nil {
		attrs := make(map[string]string, len(t.settings.attributes))
		for k, v := range t.settings.attributes {
			attrs[k] = v
		}
		c.settings.attributes = attrs
	}
	return c
}

// Row returns a new independent table holding only the row at index, with the
// same column configuration and settings.
func (t *Table) Row(index int) (*Table, error) {
	if index < 0 || index >= len(t.rows) {
		return nil, fmt.Errorf("%w: index %d, table has %d rows", ErrRowIndex, index, len(t.rows))
	}
	return t.Slice(index, index+1), nil
}

// Slice returns a new independent table holding the rows in [start, end).
// Bounds are clamped slice-style; the result is a value copy, not a view.
func (t *Table) Slice(start, end int) *Table {
	start, end = sliceBounds(start, end, len(t.rows))
	c := t.Copy()
	c.rows = c.rows[start:end]
	return c
}

func sliceBounds(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end < 0 || end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}
