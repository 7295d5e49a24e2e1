package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// parseScript parses an --exec command. The {} placeholder becomes "$1".
func parseScript(script string) (*syntax.File, error) {
	script = strings.ReplaceAll(script, "{}", `"$1"`)

	file, err := syntax.NewParser().Parse(strings.NewReader(script), "")
	if err != nil {
		return nil, fmt.Errorf("--exec: %w", err)
	}

	return file, nil
}

// runHook runs file in dir with path as its only positional parameter and
// returns the exit status.
func runHook(ctx context.Context, file *syntax.File, dir, path string, stdout, stderr io.Writer) (int, error) {
	runner, err := interp.New(
		interp.Dir(dir),
		interp.Params("--", path),
		interp.StdIO(os.Stdin, stdout, stderr),
	)
	if err != nil {
		return -1, err
	}

	err = runner.Run(ctx, file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}
