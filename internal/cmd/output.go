package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ezerfernandes/mdfence/internal/config"
	"github.com/ezerfernandes/mdfence/internal/fence"
	"github.com/ezerfernandes/mdfence/internal/files"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rodaine/table"
)

type styles struct {
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
	bold    lipgloss.Style
}

func colorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newStyles(w io.Writer, mode string) *styles {
	r := lipgloss.NewRenderer(w)

	if !colorEnabled(w, mode) {
		plain := r.NewStyle()

		return &styles{success: plain, warning: plain, failure: plain, muted: plain, bold: plain}
	}

	r.SetColorProfile(termenv.ANSI256)

	return &styles{
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		bold:    r.NewStyle().Bold(true),
	}
}

func reportResult(res files.Result, opts *options, stderr io.Writer) {
	st := opts.styles

	switch {
	case res.Err != nil:
		fmt.Fprintf(stderr, "%s %v\n", st.failure.Render("✗"), res.Err)
	case res.Changed && opts.dryRun:
		opts.status("%s %s: %d indented code block(s) at %s\n",
			st.warning.Render("~"), res.Path, len(res.Blocks), lineRanges(res.Blocks))
	case res.Changed:
		opts.status("%s %s: converted %d code block(s)\n", st.success.Render("✓"), res.Path, len(res.Blocks))
	default:
		opts.status("%s %s: no indented code blocks\n", st.muted.Render("-"), res.Path)
	}
}

func lineRanges(blocks []fence.Block) string {
	ranges := make([]string, len(blocks))

	for i, b := range blocks {
		ranges[i] = fmt.Sprintf("L%d-%d", b.Start+1, b.End+1)
	}

	return strings.Join(ranges, ", ")
}

func headerFormatter(st *styles) table.Formatter {
	return func(format string, vals ...interface{}) string {
		return st.bold.Render(fmt.Sprintf(format, vals...))
	}
}

func printSummary(out io.Writer, sum files.Summary, opts *options) {
	modified := "Modified"
	if opts.dryRun {
		modified = "Would modify"
	}

	tbl := table.New("Files", "Count").
		WithWriter(out).
		WithHeaderFormatter(headerFormatter(newStyles(out, opts.color)))

	tbl.AddRow("Total", sum.Total)
	tbl.AddRow(modified, sum.Modified)
	tbl.AddRow("Errors", sum.Errors)
	tbl.AddRow("Unchanged", sum.Unchanged)

	tbl.Print()
}
