// Command ptable reads tabular data and prints it as an ASCII table.
//
//	ptable data.csv
//	cat data.md | ptable --md
//	ptable --tsv --style style.yaml data.tsv -o out.txt
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/prettytable"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ptable:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		md        bool
		tsv       bool
		output    string
		styleFile string
	)
	cmd := &cobra.Command{
		Use:           "ptable [input]",
		Short:         "Represent tabular data in visually appealing ASCII tables",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			var opts []prettytable.Option
			if styleFile != "" {
				var err error
				opts, err = loadStyle(styleFile)
				if err != nil {
					return err
				}
			}

			table, err := readTable(in, md, tsv, opts)
			if err != nil {
				return err
			}
			s, err := table.Render()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			_, err = fmt.Fprintln(out, s)
			return err
		},
	}
	cmd.Flags().BoolVar(&md, "md", false, "read Markdown pipe-table input")
	cmd.Flags().BoolVar(&tsv, "tsv", false, "read tab-separated input")
	cmd.MarkFlagsMutuallyExclusive("md", "tsv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output filename (default is stdout)")
	cmd.Flags().StringVar(&styleFile, "style", "", "YAML file of render settings")
	return cmd
}

func readTable(in io.Reader, md, tsv bool, opts []prettytable.Option) (*prettytable.Table, error) {
	switch {
	case md:
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		return prettytable.FromMarkdown(string(data), opts...)
	case tsv:
		return prettytable.FromDelimited(in, '\t', opts...)
	default:
		return prettytable.FromCSV(in, opts...)
	}
}
