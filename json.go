package prettytable

import "encoding/json"

// RenderJSON returns a JSON array whose first element is the field-name list,
// followed by one object per row, honoring slicing, sorting, and field
// visibility. Object keys marshal in sorted order, so output is deterministic.
func (t *Table) RenderJSON(opts ...Option) (string, error) {
	cfg, err := t.renderConfig(opts...)
	if err != nil {
		return "", err
	}
	rows, err := t.selectRows(cfg)
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(cfg.cols))
	for _, col := range cfg.cols {
		if cfg.fieldVisible(col.Name) {
			names = append(names, col.Name)
		}
	}
	payload := make([]any, 0, len(rows)+1)
	payload = append(payload, names)
	for _, row := range rows {
		obj := make(map[string]any, len(names))
		for i, col := range cfg.cols {
			if cfg.fieldVisible(col.Name) {
				obj[col.Name] = row[i]
			}
		}
		payload = append(payload, obj)
	}
	b, err := json.MarshalIndent(payload, "", "    ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
