// Package fence rewrites indented Markdown code blocks into fenced ones.
//
// The rewrite is a single pass over the document lines. YAML (---) and TOML
// (+++) frontmatter at the top of the document and already fenced blocks are
// copied verbatim and never considered for indented block detection.
package fence

import (
	"bytes"
	"strings"
)

// Marker is the line emitted before and after every converted block.
const Marker = "```"

const (
	yamlDelim = "---"
	tomlDelim = "+++"
	indent    = "    "
)

// Block is an indented code block found in a document.
// Start and End are 0-based, inclusive line indices. Lines holds the original,
// still indented lines with trailing blank lines trimmed.
type Block struct {
	Start int
	End   int
	Lines []string
}

// Len returns the number of lines in the block.
func (b Block) Len() int {
	return b.End - b.Start + 1
}

// Frontmatter is the region at the top of a document delimited by Delim.
// It spans lines 0 through End, inclusive.
type Frontmatter struct {
	Delim string
	End   int
}

// DetectFrontmatter reports the frontmatter region of lines. The first line
// must trim to "---" or "+++" and a later line must trim to the same
// delimiter; an unclosed frontmatter is treated as absent.
func DetectFrontmatter(lines []string) (Frontmatter, bool) {
	if len(lines) == 0 {
		return Frontmatter{}, false
	}

	delim := strings.TrimSpace(lines[0])
	if delim != yamlDelim && delim != tomlDelim {
		return Frontmatter{}, false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delim {
			return Frontmatter{Delim: delim, End: i}, true
		}
	}

	return Frontmatter{}, false
}

// Unindent removes one indented code marker from line: four leading spaces,
// or else a single leading tab. Other lines are returned unchanged.
func Unindent(line string) string {
	if strings.HasPrefix(line, indent) {
		return line[len(indent):]
	}

	if strings.HasPrefix(line, "\t") {
		return line[1:]
	}

	return line
}

// Detect returns the indented code blocks of lines in document order.
func Detect(lines []string) []Block {
	var blocks []Block

	scan(lines, func(b Block) { blocks = append(blocks, b) })

	return blocks
}

// Convert replaces every indented code block in lines with a fenced block and
// reports whether anything changed. A block of N lines becomes N+2 lines.
// Fences follow the line ending of the block's first line. The input slice is
// not modified.
func Convert(lines []string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	next := 0
	changed := false

	scan(lines, func(b Block) {
		marker := Marker
		if strings.HasSuffix(b.Lines[0], "\r") {
			marker += "\r"
		}

		out = append(out, lines[next:b.Start]...)
		out = append(out, marker)

		for _, line := range b.Lines {
			out = append(out, Unindent(line))
		}

		out = append(out, marker)
		next = b.End + 1
		changed = true
	})

	if !changed {
		return lines, false
	}

	out = append(out, lines[next:]...)

	return out, true
}

// ConvertSource is Convert over a whole document. Lines are split on '\n' so
// CRLF endings and a trailing newline survive unchanged.
func ConvertSource(src []byte) ([]byte, bool) {
	lines, changed := Convert(split(src))
	if !changed {
		return src, false
	}

	var buf bytes.Buffer

	buf.Grow(len(src) + len(lines)*len(Marker))

	for i, line := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}

		buf.WriteString(line)
	}

	return buf.Bytes(), true
}

// DetectSource is Detect over a whole document.
func DetectSource(src []byte) []Block {
	return Detect(split(src))
}

func split(src []byte) []string {
	return strings.Split(string(src), "\n")
}
