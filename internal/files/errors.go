package files

import (
	"errors"
	"fmt"
)

// ErrDecode is wrapped by a [ReadError] when a file is not valid UTF-8 text.
var ErrDecode = errors.New("not valid UTF-8 text")

// ErrNotDirectory is wrapped by an [InvalidDirectoryError] when the target
// exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// InvalidDirectoryError is returned when the target directory cannot be used.
// It aborts the whole run.
type InvalidDirectoryError struct {
	Path string
	Err  error
}

func (e *InvalidDirectoryError) Error() string {
	return fmt.Sprintf("invalid directory %s: %v", e.Path, e.Err)
}

func (e *InvalidDirectoryError) Unwrap() error {
	return e.Err
}

// ReadError is reported when a file cannot be read or decoded.
// The file is skipped.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError is reported when a converted file cannot be written back.
// The file keeps its original content.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
