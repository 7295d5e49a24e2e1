package mdcode

import (
	"bytes"
	"regexp"
	"sort"

	"github.com/ezerfernandes/mdfence/internal/fence"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var reInfo = regexp.MustCompile(`\s*(\w+)\s*(.*)\s*`)

// Scan returns the fenced and indented code blocks of a Markdown document in
// document order. Fenced blocks come from a CommonMark parse; indented blocks
// are the ones [fence.Detect] would convert, so frontmatter is skipped.
func Scan(source []byte) (Blocks, error) {
	parser := goldmark.DefaultParser()
	reader := text.NewReader(source)
	root := parser.Parse(reader).OwnerDocument()

	var blocks Blocks

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			return ast.WalkContinue, nil
		}

		if n, ok := node.(*ast.FencedCodeBlock); ok {
			block, err := fencedBlock(n, source)
			if err != nil {
				return ast.WalkStop, err
			}

			blocks = append(blocks, block)
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	for _, b := range fence.DetectSource(source) {
		blocks = append(blocks, indentedBlock(b))
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartLine < blocks[j].StartLine
	})

	return blocks, nil
}

func fencedBlock(fcb *ast.FencedCodeBlock, source []byte) (*Block, error) {
	lang, meta, err := extractInfo(fcb, source)
	if err != nil {
		return nil, err
	}

	block := &Block{Kind: Fenced, Lang: lang, Meta: meta, Code: extractCode(fcb.Lines(), source)}
	block.StartLine, block.EndLine = fencedLines(fcb, source)

	return block, nil
}

func indentedBlock(b fence.Block) *Block {
	var code bytes.Buffer

	for _, line := range b.Lines {
		code.WriteString(fence.Unindent(line))
		code.WriteByte('\n')
	}

	return &Block{Kind: Indented, Code: code.Bytes(), StartLine: b.Start + 1, EndLine: b.End + 1}
}

func fencedLines(fcb *ast.FencedCodeBlock, source []byte) (int, int) {
	var startLine, endLine int

	lines := fcb.Lines()

	if fcb.Info != nil {
		startLine = lineAt(source, fcb.Info.Segment.Start)
	} else if lines.Len() > 0 {
		startLine = lineAt(source, lines.At(0).Start) - 1
	}

	if lines.Len() > 0 {
		endLine = lineAt(source, lines.At(lines.Len()-1).Stop)
	} else if startLine > 0 {
		endLine = startLine + 1
	}

	return startLine, endLine
}

func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}

	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

func extractCode(lines *text.Segments, source []byte) []byte {
	var buff bytes.Buffer

	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)

		buff.Write(seg.Value(source))
	}

	return buff.Bytes()
}

func extractInfo(fcb *ast.FencedCodeBlock, source []byte) (string, Meta, error) {
	if fcb.Info == nil {
		return "", nil, nil
	}

	return parseInfo(fcb.Info.Text(source))
}

func parseInfo(text []byte) (string, Meta, error) {
	all := reInfo.FindSubmatch(text)
	if all == nil {
		return "", nil, nil
	}

	lang := string(all[1])

	if len(bytes.TrimSpace(all[2])) == 0 {
		return lang, nil, nil
	}

	meta, err := parseMeta(bytes.TrimSpace(all[2]))

	return lang, meta, err
}
