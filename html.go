package prettytable

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// RenderHTML returns an HTML rendering of the table. The default is a simple
// semantic <table>/<thead>/<tbody> document; WithHTMLFormat(true) mirrors the
// table's rule styles and per-column alignment as frame/rules attributes and
// inline cell styles.
func (t *Table) RenderHTML(opts ...Option) (string, error) {
	cfg, err := t.renderConfig(opts...)
	if err != nil {
		return "", err
	}
	if cfg.htmlFormat {
		return t.formattedHTML(cfg)
	}
	return t.simpleHTML(cfg)
}

func (c *config) lineBreak() string {
	if c.xhtml {
		return "<br/>"
	}
	return "<br>"
}

func (c *config) openTableTag(styleAttrs string) string {
	var b strings.Builder
	b.WriteString("<table")
	b.WriteString(styleAttrs)
	// Sorted key order keeps attribute emission deterministic.
	keys := make([]string, 0, len(c.attributes))
	for k := range c.attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=\"%s\"", k, c.attributes[k])
	}
	b.WriteString(">")
	return b.String()
}

func (c *config) visibleCount() int {
	if len(c.fields) > 0 {
		return len(c.fields)
	}
	return len(c.cols)
}

func htmlCell(s, br string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", br)
}

func (t *Table) simpleHTML(cfg *config) (string, error) {
	br := cfg.lineBreak()
	lines := []string{cfg.openTableTag("")}

	if cfg.title != "" {
		lines = append(lines,
			"    <tr>",
			fmt.Sprintf("        <td colspan=%d>%s</td>", cfg.visibleCount(), html.EscapeString(cfg.title)),
			"    </tr>")
	}

	if cfg.header {
		lines = append(lines, "    <thead>", "        <tr>")
		for _, col := range cfg.cols {
			if !cfg.fieldVisible(col.Name) {
				continue
			}
			lines = append(lines, fmt.Sprintf("            <th>%s</th>", htmlCell(col.Name, br)))
		}
		lines = append(lines, "        </tr>", "    </thead>")
	}

	lines = append(lines, "    <tbody>")
	rows, err := t.selectRows(cfg)
	if err != nil {
		return "", err
	}
	for _, row := range formatRows(cfg.cols, rows) {
		lines = append(lines, "        <tr>")
		for i, col := range cfg.cols {
			if !cfg.fieldVisible(col.Name) {
				continue
			}
			lines = append(lines, fmt.Sprintf("            <td>%s</td>", htmlCell(row[i], br)))
		}
		lines = append(lines, "        </tr>")
	}
	lines = append(lines, "    </tbody>", "</table>")
	return strings.Join(lines, "\n"), nil
}

// frameRulesAttrs maps rule-style combinations onto the HTML frame/rules
// table attributes, mirroring what the plain-text renderer would draw.
func (c *config) frameRulesAttrs() string {
	if !c.border {
		return ""
	}
	switch {
	case c.hrules == RuleAll && c.vrules == RuleAll:
		return ` frame="box" rules="all"`
	case c.hrules == RuleFrame && c.vrules == RuleFrame:
		return ` frame="box"`
	case c.hrules == RuleFrame && c.vrules == RuleAll:
		return ` frame="box" rules="cols"`
	case c.hrules == RuleFrame:
		return ` frame="hsides"`
	case c.hrules == RuleAll:
		return ` frame="hsides" rules="rows"`
	case c.vrules == RuleFrame:
		return ` frame="vsides"`
	case c.vrules == RuleAll:
		return ` frame="vsides" rules="cols"`
	}
	return ""
}

func (t *Table) formattedHTML(cfg *config) (string, error) {
	br := cfg.lineBreak()
	lpad, rpad := cfg.paddingWidths()
	lines := []string{cfg.openTableTag(cfg.frameRulesAttrs())}

	if cfg.title != "" {
		lines = append(lines,
			"    <tr>",
			fmt.Sprintf("        <td colspan=%d>%s</td>", cfg.visibleCount(), html.EscapeString(cfg.title)),
			"    </tr>")
	}

	if cfg.header {
		lines = append(lines, "    <thead>", "        <tr>")
		for _, col := range cfg.cols {
			if !cfg.fieldVisible(col.Name) {
				continue
			}
			lines = append(lines, fmt.Sprintf(
				"            <th style=\"padding-left: %dem; padding-right: %dem; text-align: center\">%s</th>",
				lpad, rpad, htmlCell(col.Name, br)))
		}
		lines = append(lines, "        </tr>", "    </thead>")
	}

	lines = append(lines, "    <tbody>")
	rows, err := t.selectRows(cfg)
	if err != nil {
		return "", err
	}
	for _, row := range formatRows(cfg.cols, rows) {
		lines = append(lines, "        <tr>")
		for i, col := range cfg.cols {
			if !cfg.fieldVisible(col.Name) {
				continue
			}
			lines = append(lines, fmt.Sprintf(
				"            <td style=\"padding-left: %dem; padding-right: %dem; text-align: %s; vertical-align: %s\">%s</td>",
				lpad, rpad, col.Align, col.VAlign, htmlCell(row[i], br)))
		}
		lines = append(lines, "        </tr>")
	}
	lines = append(lines, "    </tbody>", "</table>")
	return strings.Join(lines, "\n"), nil
}
