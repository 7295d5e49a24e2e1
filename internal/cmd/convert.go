package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ezerfernandes/mdfence/internal/files"
	"mvdan.cc/sh/v3/syntax"
)

func convertRun(ctx context.Context, dir string, opts *options, stdout, stderr io.Writer) error {
	fsys, err := files.OpenDir(dir)
	if err != nil {
		return err
	}

	paths, err := files.Find(fsys, files.Options{
		Extensions: opts.ext,
		Exclude:    opts.exclude,
		Recursive:  opts.recursive,
	})
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		opts.status("No markdown files found in %s\n", dir)

		return nil
	}

	if opts.dryRun {
		opts.status("Dry run: no files will be modified\n")
	}

	opts.status("Found %d markdown file(s) to process\n", len(paths))

	var hook *syntax.File

	if len(opts.exec) != 0 && !opts.dryRun {
		if hook, err = parseScript(opts.exec); err != nil {
			return err
		}
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	var (
		hookErr      error
		hookFailures int
	)

	proc := &files.Processor{
		FS:     fsys,
		DryRun: opts.dryRun,
		Report: func(res files.Result) {
			reportResult(res, opts, stderr)

			if hook == nil || hookErr != nil || !res.Changed || res.Err != nil {
				return
			}

			path := filepath.Join(absDir, filepath.FromSlash(res.Path))

			code, err := runHook(ctx, hook, absDir, path, stdout, stderr)
			if err != nil {
				hookErr = err

				return
			}

			if code != 0 {
				hookFailures++

				opts.status("warning: --exec exited with %d for %s\n", code, res.Path)
			}
		},
	}

	sum := proc.Run(paths)

	printSummary(stdout, sum, opts)

	switch {
	case hookErr != nil:
		return hookErr
	case sum.Errors > 0:
		return fmt.Errorf("%d file(s) failed", sum.Errors)
	case hookFailures > 0:
		return fmt.Errorf("--exec failed for %d file(s)", hookFailures)
	}

	return nil
}
