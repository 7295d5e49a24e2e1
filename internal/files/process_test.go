package files_test

import (
	"io/fs"
	"testing"

	"github.com/ezerfernandes/mdfence/internal/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const withBlock = "# Test\n\n    def example():\n        return \"test\"\n"

const withoutBlock = "# Test\n\nRegular markdown.\n\n```python\ndef already_fenced():\n    pass\n```\n"

func TestProcessChanges(t *testing.T) {
	t.Parallel()

	mfs := newFS(t, map[string]string{"test.md": withBlock})
	proc := &files.Processor{FS: mfs}

	res := proc.Process("test.md")
	require.NoError(t, res.Err)
	assert.True(t, res.Changed)
	require.Len(t, res.Blocks, 1)
	assert.Equal(t, 2, res.Blocks[0].Start)

	data, err := fs.ReadFile(mfs, "test.md")
	require.NoError(t, err)
	assert.Equal(t, "# Test\n\n```\ndef example():\n    return \"test\"\n```\n", string(data))
}

func TestProcessNoChanges(t *testing.T) {
	t.Parallel()

	mfs := newFS(t, map[string]string{"test.md": withoutBlock})
	proc := &files.Processor{FS: readOnlyFS{mfs}}

	res := proc.Process("test.md")
	require.NoError(t, res.Err)
	assert.False(t, res.Changed)
	assert.Empty(t, res.Blocks)
}

func TestProcessDryRun(t *testing.T) {
	t.Parallel()

	mfs := newFS(t, map[string]string{"test.md": withBlock})
	proc := &files.Processor{FS: readOnlyFS{mfs}, DryRun: true}

	res := proc.Process("test.md")
	require.NoError(t, res.Err)
	assert.True(t, res.Changed)
	assert.Len(t, res.Blocks, 1)

	data, err := fs.ReadFile(mfs, "test.md")
	require.NoError(t, err)
	assert.Equal(t, withBlock, string(data))
}

func TestProcessWriteError(t *testing.T) {
	t.Parallel()

	mfs := newFS(t, map[string]string{"test.md": withBlock})
	proc := &files.Processor{FS: readOnlyFS{mfs}}

	res := proc.Process("test.md")

	var werr *files.WriteError

	require.ErrorAs(t, res.Err, &werr)
	assert.Equal(t, "test.md", werr.Path)
	assert.ErrorIs(t, res.Err, errDenied)

	data, err := fs.ReadFile(mfs, "test.md")
	require.NoError(t, err)
	assert.Equal(t, withBlock, string(data))
}

func TestProcessReadErrors(t *testing.T) {
	t.Parallel()

	mfs := newFS(t, map[string]string{"latin1.md": "caf\xe9\n\n    code\n"})
	proc := &files.Processor{FS: mfs}

	var rerr *files.ReadError

	res := proc.Process("missing.md")
	require.ErrorAs(t, res.Err, &rerr)
	assert.ErrorIs(t, res.Err, fs.ErrNotExist)

	res = proc.Process("latin1.md")
	require.ErrorAs(t, res.Err, &rerr)
	assert.ErrorIs(t, res.Err, files.ErrDecode)
	assert.False(t, res.Changed)
}

func TestRun(t *testing.T) {
	t.Parallel()

	mfs := newFS(t, map[string]string{
		"test1.md":       "# Test 1\n\n    def code1():\n        pass\n",
		"test2.md":       "# Test 2\n\nRegular content only.\n",
		"test3.markdown": "# Test 3\n\n    print(\"test\")\n",
		"bad.md":         "\xff\xfe",
	})

	var reported []string

	proc := &files.Processor{
		FS:     mfs,
		Report: func(res files.Result) { reported = append(reported, res.Path) },
	}

	paths, err := files.Find(mfs, files.Options{})
	require.NoError(t, err)

	sum := proc.Run(paths)

	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 2, sum.Modified)
	assert.Equal(t, 1, sum.Errors)
	assert.Equal(t, 1, sum.Unchanged)
	assert.Equal(t, paths, reported)
	assert.Len(t, sum.Results, 4)
}

func TestRunEmpty(t *testing.T) {
	t.Parallel()

	sum := (&files.Processor{FS: newFS(t, nil)}).Run(nil)

	assert.Equal(t, files.Summary{Results: []files.Result{}}, sum)
}
