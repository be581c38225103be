package prettytable

import "strings"

// RenderRST returns the reStructuredText grid rendering: the plain-text
// layout with a rule after every row, where the rule closing the header has
// its horizontal characters replaced with "=" to mark the body boundary.
func (t *Table) RenderRST(opts ...Option) (string, error) {
	cfg, err := t.renderConfig(opts...)
	if err != nil {
		return "", err
	}
	cfg.title = ""
	cfg.header = true
	cfg.border = true
	cfg.hrules = RuleAll
	lines, err := t.renderLines(cfg)
	if err != nil {
		return "", err
	}
	// Line 0 is the top rule, line 1 the header, line 2 the boundary rule.
	if len(lines) >= 3 {
		lines[2] = strings.ReplaceAll(lines[2], cfg.horizontalChar, "=")
	}
	return strings.Join(lines, "\n"), nil
}
