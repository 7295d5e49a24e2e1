// Package files finds Markdown documents and rewrites them with package fence.
//
// Every file is handled on its own: a read or write failure is recorded in
// that file's [Result] and never stops the rest of the batch.
package files

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

const fileMode = 0o644

// DefaultExtensions lists the Markdown file extensions processed by default.
var DefaultExtensions = []string{".md", ".markdown", ".mdown", ".mkd"} //nolint:gochecknoglobals

// FS is a file system that can also write files back.
type FS interface {
	fs.FS
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

type dirFS struct {
	fs.FS
	root string
}

// DirFS returns an [FS] rooted at the directory root on the host file system.
func DirFS(root string) FS {
	return &dirFS{FS: os.DirFS(root), root: root}
}

func (d *dirFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrInvalid}
	}

	return os.WriteFile(filepath.Join(d.root, filepath.FromSlash(name)), data, perm)
}

// OpenDir checks that dir is an existing directory and returns it as an [FS].
func OpenDir(dir string) (FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &InvalidDirectoryError{Path: dir, Err: err}
	}

	if !info.IsDir() {
		return nil, &InvalidDirectoryError{Path: dir, Err: ErrNotDirectory}
	}

	return DirFS(dir), nil
}

// Options control which files [Find] returns.
type Options struct {
	// Extensions are matched case-insensitively; the leading dot is optional.
	Extensions []string
	// Exclude holds glob patterns matched against the slash separated
	// relative path and against the base name.
	Exclude []string
	// Recursive descends into subdirectories.
	Recursive bool
}

// Find returns the sorted relative paths of the Markdown files in fsys.
func Find(fsys fs.FS, opts Options) ([]string, error) {
	excludes, err := compileGlobs(opts.Exclude)
	if err != nil {
		return nil, err
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	var found []string

	err = fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if name == "." {
			return nil
		}

		if matchAny(excludes, name) {
			if entry.IsDir() {
				return fs.SkipDir
			}

			return nil
		}

		if entry.IsDir() {
			if !opts.Recursive {
				return fs.SkipDir
			}

			return nil
		}

		if hasExtension(name, exts) {
			found = append(found, name)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(found)

	return found, nil
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(path.Ext(name))
	if len(ext) == 0 {
		return false
	}

	for _, e := range exts {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}

		if strings.EqualFold(ext, e) {
			return true
		}
	}

	return false
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}

		globs = append(globs, g)
	}

	return globs, nil
}

func matchAny(globs []glob.Glob, name string) bool {
	base := path.Base(name)

	for _, g := range globs {
		if g.Match(name) || g.Match(base) {
			return true
		}
	}

	return false
}
