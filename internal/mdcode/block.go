// Package mdcode lists the code blocks of a Markdown document as seen by a
// CommonMark parser.
package mdcode

// Kind tells how a code block is delimited.
type Kind int

const (
	// Fenced blocks are delimited by backtick or tilde fences.
	Fenced Kind = iota
	// Indented blocks are marked by four spaces or a tab.
	Indented
)

func (k Kind) String() string {
	if k == Indented {
		return "indented"
	}

	return "fenced"
}

// Block is a code block. StartLine and EndLine are 1-based; for fenced blocks
// they point at the fence lines.
type Block struct {
	Kind      Kind
	Lang      string
	Meta      Meta
	Code      []byte
	StartLine int
	EndLine   int
}

// Blocks is a list of code blocks in document order.
type Blocks []*Block

// Count returns the number of blocks of the given kind.
func (b Blocks) Count(kind Kind) int {
	n := 0

	for _, block := range b {
		if block.Kind == kind {
			n++
		}
	}

	return n
}
