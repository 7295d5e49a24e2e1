// Package cmd implements the mdfence command line interface.
package cmd

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/ezerfernandes/mdfence/internal/config"
	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

var version = "dev" //nolint:gochecknoglobals

type statusFunc func(format string, a ...interface{})

type options struct {
	dryRun    bool
	recursive bool
	quiet     bool
	color     string
	exec      string
	ext       []string
	exclude   []string

	lang []string
	meta map[string]string

	status statusFunc
	styles *styles
	filter filterFunc
}

func (o *options) createStatus(out io.Writer) {
	if o.quiet {
		o.status = func(string, ...interface{}) {}

		return
	}

	o.status = func(format string, a ...interface{}) {
		fmt.Fprintf(out, format, a...)
	}
}

// Execute runs the mdfence command with args and exits the process on error.
func Execute(args []string, stdout, stderr io.Writer) {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root := rootCmd(cfg)

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := fang.Execute(context.Background(), root, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func rootCmd(cfg config.Config) *cobra.Command {
	opts := &options{
		recursive: cfg.Recursive,
		color:     cfg.Color,
		ext:       cfg.Extensions,
		exclude:   cfg.Exclude,
	}

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "mdfence [flags] [directory]",
		Short:   "Convert indented Markdown code blocks to fenced code blocks",
		Long:    rootHelp,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := config.ParseColor(opts.color)
			if err != nil {
				return err
			}

			opts.color = mode
			opts.createStatus(cmd.ErrOrStderr())
			opts.styles = newStyles(cmd.ErrOrStderr(), mode)

			return nil
		},
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if len(opts.exec) == 0 {
				return nil
			}

			_, err := parseScript(opts.exec)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) != 0 {
				dir = args[0]
			}

			return convertRun(cmd.Context(), dir, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},

		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	flags := cmd.Flags()

	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "report what would change without writing files")
	flags.BoolVarP(&opts.recursive, "recursive", "r", opts.recursive, "descend into subdirectories")
	flags.StringSliceVar(&opts.ext, "ext", opts.ext, "markdown file extensions to process")
	flags.StringSliceVarP(&opts.exclude, "exclude", "x", opts.exclude, "glob patterns of files and directories to skip")
	flags.StringVar(&opts.exec, "exec", "", "shell command to run for each rewritten file ({} is the file path)")

	quietFlag(cmd, opts)
	cmd.PersistentFlags().StringVar(&opts.color, "color", opts.color, "colorize output: auto, always or never")

	cmd.AddCommand(listCmd(opts))

	return cmd
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress per-file status messages")
}
