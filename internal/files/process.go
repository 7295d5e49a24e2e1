package files

import (
	"io/fs"
	"unicode/utf8"

	"github.com/ezerfernandes/mdfence/internal/fence"
)

// Result is the outcome of processing one file.
type Result struct {
	Path string
	// Blocks are the indented code blocks found in the original content.
	Blocks []fence.Block
	// Changed reports whether the file was (or, in a dry run, would be)
	// rewritten.
	Changed bool
	Err     error
}

// Summary aggregates the results of a run.
type Summary struct {
	Total     int
	Modified  int
	Errors    int
	Unchanged int
	Results   []Result
}

// Processor converts files of FS in place.
type Processor struct {
	FS     FS
	DryRun bool
	// Report, when set, is called with each result as soon as it is known.
	Report func(Result)
}

// Process reads, converts and, unless DryRun is set, writes back one file.
// When the write fails the file is left untouched.
func (p *Processor) Process(name string) Result {
	res := Result{Path: name}

	src, err := fs.ReadFile(p.FS, name)
	if err != nil {
		res.Err = &ReadError{Path: name, Err: err}

		return res
	}

	if !utf8.Valid(src) {
		res.Err = &ReadError{Path: name, Err: ErrDecode}

		return res
	}

	res.Blocks = fence.DetectSource(src)
	if len(res.Blocks) == 0 {
		return res
	}

	out, changed := fence.ConvertSource(src)
	res.Changed = changed

	if !changed || p.DryRun {
		return res
	}

	perm := fs.FileMode(fileMode)
	if info, err := fs.Stat(p.FS, name); err == nil {
		perm = info.Mode().Perm()
	}

	if err := p.FS.WriteFile(name, out, perm); err != nil {
		res.Err = &WriteError{Path: name, Err: err}
	}

	return res
}

// Run processes every path in order and summarizes the outcome.
func (p *Processor) Run(paths []string) Summary {
	sum := Summary{Total: len(paths), Results: make([]Result, 0, len(paths))}

	for _, name := range paths {
		res := p.Process(name)

		switch {
		case res.Err != nil:
			sum.Errors++
		case res.Changed:
			sum.Modified++
		default:
			sum.Unchanged++
		}

		if p.Report != nil {
			p.Report(res)
		}

		sum.Results = append(sum.Results, res)
	}

	return sum
}
