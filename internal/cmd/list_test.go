package cmd

import (
	"path/filepath"
	"testing"

	"github.com/ezerfernandes/mdfence/internal/mdcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listDoc = "# Title\n" +
	"\n" +
	"```go file=main.go\n" +
	"package main\n" +
	"```\n" +
	"\n" +
	"```sh\n" +
	"echo hi\n" +
	"```\n" +
	"\n" +
	"Some text.\n" +
	"\n" +
	"    indented\n"

func TestList(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"README.md": listDoc})

	stdout, stderr, err := execute(t, "list", filepath.Join(dir, "README.md"))
	require.NoError(t, err)

	assert.Regexp(t, `0\s+fenced\s+go\s+3-5\s+file=main.go`, stdout)
	assert.Regexp(t, `1\s+fenced\s+sh\s+7-9`, stdout)
	assert.Regexp(t, `2\s+indented\s+13-13`, stdout)
	assert.Contains(t, stderr, "2 fenced, 1 indented")
}

func TestListAgreesWithDryRun(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"README.md": "+++\ntitle = 1\n\n    nested = 2\n+++\n\nParagraph text\n    indented code\n",
	})

	stdout, stderr, err := execute(t, "list", filepath.Join(dir, "README.md"))
	require.NoError(t, err)

	assert.Regexp(t, `0\s+indented\s+8-8`, stdout)
	assert.NotContains(t, stdout, "4-4")
	assert.Contains(t, stderr, "0 fenced, 1 indented")

	_, stderr, err = execute(t, "--dry-run", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "README.md: 1 indented code block(s) at L8-8")
}

func TestListFilters(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"README.md": listDoc})
	name := filepath.Join(dir, "README.md")

	stdout, _, err := execute(t, "list", "--lang", "g*", name)
	require.NoError(t, err)
	assert.Contains(t, stdout, "main.go")
	assert.NotContains(t, stdout, "sh")
	assert.NotContains(t, stdout, "indented")

	stdout, _, err = execute(t, "ls", "-m", "file=*.go", name)
	require.NoError(t, err)
	assert.Contains(t, stdout, "main.go")
	assert.NotContains(t, stdout, "indented")

	stdout, stderr, err := execute(t, "list", "--lang", "python", name)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No code blocks found")
}

func TestListMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "list", filepath.Join(t.TempDir(), "README.md"))
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	accept, err := filter(nil, nil)
	require.NoError(t, err)
	assert.True(t, accept("", nil))
	assert.True(t, accept("go", nil))

	accept, err = filter([]string{"js", "ts"}, map[string]string{"file": "src/*"})
	require.NoError(t, err)
	assert.True(t, accept("ts", mdcode.Meta{"file": "src/a.ts"}))
	assert.False(t, accept("go", mdcode.Meta{"file": "src/a.ts"}))
	assert.False(t, accept("js", nil))

	_, err = filter([]string{"[a"}, nil)
	assert.Error(t, err)
}
