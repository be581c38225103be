// Package prettytable renders tabular data as fixed-width, Unicode-aware
// text layouts: plain-text boxed tables, HTML, Markdown, and
// reStructuredText.
//
// A [Table] owns an ordered list of named columns and an ordered list of
// rows. Rendering is a pure read operation: each render call snapshots the
// configuration, resolves per-column widths under the configured constraints,
// lays out each cell (word-wrapping and vertically aligning multi-line
// content), and joins the result into a string. Concurrent renders are safe
// as long as no goroutine mutates the table.
//
//	t, _ := prettytable.New([]string{"City", "Population"})
//	t.AddRow([]any{"Adelaide", 1158259})
//	t.AddRow([]any{"Brisbane", 1857594})
//	s, _ := t.Render()
//
// # Options
//
// Configuration uses typed [Option] values. [Table.Apply] persists options on
// the table; the same options passed to a render call override the persisted
// settings for that call only:
//
//	t.Apply(prettytable.WithSortBy("Population"))
//	s, _ := t.Render(prettytable.WithTitle("Australia"), prettytable.WithMaxTableWidth(40))
//
// Options validate eagerly: an invalid value is reported when the option is
// applied, never at render time, so a successfully configured table is
// guaranteed renderable.
//
// # Output formats
//
//   - [Table.Render] — plain-text boxed table
//   - [Table.RenderHTML] — semantic or style-mirroring HTML
//   - [Table.RenderMarkdown] — pipe-delimited Markdown
//   - [Table.RenderRST] — reStructuredText grid table
//   - [Table.RenderCSV], [Table.RenderJSON] — data exports
//   - [Table.Paginate] — fixed-size pages joined by form feeds
//
// # Input adapters
//
// [FromCSV], [FromMarkdown], [FromHTML], and [FromHTMLOne] build tables from
// external data.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidOption] — configuration rejected at assignment time
//   - [ErrArityMismatch] — row/column length mismatch
//   - [ErrRowIndex] — indexing a nonexistent row
//   - [ErrAmbiguousHTML] — HTML input without exactly one <table>
package prettytable
