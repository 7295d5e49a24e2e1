package cmd

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/ezerfernandes/mdfence/internal/mdcode"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/list.md
var listHelp string

const defaultSource = "README.md"

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] [filename]",
		Aliases: []string{"ls"},
		Short:   "List the code blocks of a Markdown document",
		Long:    listHelp,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			opts.filter, err = filter(opts.lang, opts.meta)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRun(source(args), opts, cmd.OutOrStdout())
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringSliceVarP(&opts.lang, "lang", "l", nil, "glob patterns of code block languages to list")
	cmd.Flags().StringToStringVarP(&opts.meta, "meta", "m", nil, "glob patterns of code block metadata to match (key=pattern)")

	return cmd
}

func source(args []string) string {
	if len(args) == 0 {
		return defaultSource
	}

	return args[0]
}

func listRun(filename string, opts *options, out io.Writer) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	blocks, err := mdcode.Scan(src)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	tbl := table.New("#", "Kind", "Lang", "Lines", "Meta").
		WithWriter(out).
		WithHeaderFormatter(headerFormatter(newStyles(out, opts.color)))

	shown := 0

	for i, block := range blocks {
		if !opts.filter(block.Lang, block.Meta) {
			continue
		}

		tbl.AddRow(i, block.Kind, block.Lang, fmt.Sprintf("%d-%d", block.StartLine, block.EndLine), block.Meta.String())
		shown++
	}

	if shown == 0 {
		opts.status("No code blocks found in %s\n", filename)

		return nil
	}

	tbl.Print()

	opts.status("%d fenced, %d indented\n", blocks.Count(mdcode.Fenced), blocks.Count(mdcode.Indented))

	return nil
}
