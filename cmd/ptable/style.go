package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/prettytable"
)

// styleConfig is the YAML schema of the --style file. Pointer fields
// distinguish "absent" from a zero value.
type styleConfig struct {
	Title         string  `yaml:"title"`
	Header        *bool   `yaml:"header"`
	Border        *bool   `yaml:"border"`
	HRules        string  `yaml:"hrules"`
	VRules        string  `yaml:"vrules"`
	Align         string  `yaml:"align"`
	Padding       *int    `yaml:"padding"`
	SortBy        string  `yaml:"sortby"`
	ReverseSort   bool    `yaml:"reversesort"`
	MinTableWidth int     `yaml:"min_table_width"`
	MaxTableWidth int     `yaml:"max_table_width"`
	Vertical      *string `yaml:"vertical_char"`
	Horizontal    *string `yaml:"horizontal_char"`
	Junction      *string `yaml:"junction_char"`
}

func loadStyle(path string) ([]prettytable.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc styleConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return sc.options()
}

func (sc styleConfig) options() ([]prettytable.Option, error) {
	var opts []prettytable.Option
	if sc.Title != "" {
		opts = append(opts, prettytable.WithTitle(sc.Title))
	}
	if sc.Header != nil {
		opts = append(opts, prettytable.WithHeader(*sc.Header))
	}
	if sc.Border != nil {
		opts = append(opts, prettytable.WithBorder(*sc.Border))
	}
	if sc.HRules != "" {
		style, err := parseRuleStyle(sc.HRules)
		if err != nil {
			return nil, err
		}
		opts = append(opts, prettytable.WithHRules(style))
	}
	if sc.VRules != "" {
		style, err := parseRuleStyle(sc.VRules)
		if err != nil {
			return nil, err
		}
		opts = append(opts, prettytable.WithVRules(style))
	}
	if sc.Align != "" {
		align, err := parseAlign(sc.Align)
		if err != nil {
			return nil, err
		}
		opts = append(opts, prettytable.WithAlign(align))
	}
	if sc.Padding != nil {
		opts = append(opts, prettytable.WithPaddingWidth(*sc.Padding))
	}
	if sc.SortBy != "" {
		// Field validation needs the parsed columns, so sorting is applied
		// as a render-time setting after the table is built.
		opts = append(opts, prettytable.WithSortBy(sc.SortBy))
	}
	if sc.ReverseSort {
		opts = append(opts, prettytable.WithReverseSort(true))
	}
	if sc.MinTableWidth > 0 {
		opts = append(opts, prettytable.WithMinTableWidth(sc.MinTableWidth))
	}
	if sc.MaxTableWidth > 0 {
		opts = append(opts, prettytable.WithMaxTableWidth(sc.MaxTableWidth))
	}
	if sc.Vertical != nil {
		opts = append(opts, prettytable.WithVerticalChar(*sc.Vertical))
	}
	if sc.Horizontal != nil {
		opts = append(opts, prettytable.WithHorizontalChar(*sc.Horizontal))
	}
	if sc.Junction != nil {
		opts = append(opts, prettytable.WithJunctionChar(*sc.Junction))
	}
	return opts, nil
}

func parseRuleStyle(s string) (prettytable.RuleStyle, error) {
	switch s {
	case "none":
		return prettytable.RuleNone, nil
	case "frame":
		return prettytable.RuleFrame, nil
	case "header":
		return prettytable.RuleHeader, nil
	case "all":
		return prettytable.RuleAll, nil
	default:
		return 0, fmt.Errorf("unknown rule style %q (use none, frame, header or all)", s)
	}
}

func parseAlign(s string) (prettytable.Align, error) {
	switch s {
	case "l", "left":
		return prettytable.AlignLeft, nil
	case "c", "center":
		return prettytable.AlignCenter, nil
	case "r", "right":
		return prettytable.AlignRight, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q (use l, c or r)", s)
	}
}
