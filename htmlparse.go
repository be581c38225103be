package prettytable

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML parses HTML source and returns one Table per <table> element.
// Rows containing <th> cells supply field names; duplicate header names are
// disambiguated by appending "'".
func FromHTML(src string, opts ...Option) ([]*Table, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	var tables []*Table
	var walk func(*html.Node) error
	walk = func(n *html.Node) error {
		if n.Type == html.ElementNode && n.DataAtom == atom.Table {
			t, err := tableFromNode(n, opts)
			if err != nil {
				return err
			}
			tables = append(tables, t)
			return nil
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(doc); err != nil {
		return nil, err
	}
	return tables, nil
}

// FromHTMLOne parses HTML expected to contain exactly one <table>.
func FromHTMLOne(src string, opts ...Option) (*Table, error) {
	tables, err := FromHTML(src, opts...)
	if err != nil {
		return nil, err
	}
	if len(tables) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one <table>, found %d", ErrAmbiguousHTML, len(tables))
	}
	return tables[0], nil
}

type htmlRow struct {
	cells  []string
	header bool
}

func tableFromNode(table *html.Node, opts []Option) (*Table, error) {
	var rows []htmlRow
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			var row htmlRow
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type != html.ElementNode || (c.DataAtom != atom.Th && c.DataAtom != atom.Td) {
					continue
				}
				if c.DataAtom == atom.Th {
					row.header = true
				}
				row.cells = append(row.cells, strings.TrimSpace(nodeText(c)))
				for i := 1; i < colspan(c); i++ {
					row.cells = append(row.cells, "")
				}
			}
			rows = append(rows, row)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(table)

	t, err := New(nil)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.header {
			if err := t.SetFieldNames(uniqueNames(row.cells)); err != nil {
				return nil, err
			}
			continue
		}
		vals := make([]any, len(row.cells))
		for i, cell := range row.cells {
			vals[i] = cell
		}
		if err := t.AddRow(vals); err != nil {
			return nil, err
		}
	}
	if err := t.Apply(opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// nodeText flattens a cell's text content, turning <br> into a newline.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			b.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func colspan(n *html.Node) int {
	for _, a := range n.Attr {
		if a.Key == "colspan" {
			if v, err := strconv.Atoi(a.Val); err == nil && v > 1 {
				return v
			}
		}
	}
	return 1
}

func uniqueNames(names []string) []string {
	out := append([]string(nil), names...)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j] == out[i] {
				out[j] += "'"
			}
		}
	}
	return out
}
