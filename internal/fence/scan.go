package fence

import "strings"

type state int

const (
	statePlain state = iota
	stateFence
	stateIndented
)

type scanner struct {
	lines []string
	state state
	start int
	last  int // last non-blank line of the open block
	emit  func(Block)
}

// scan classifies lines and calls emit for every indented block, in order.
// An unbalanced fence opener makes the rest of the document fenced content.
func scan(lines []string, emit func(Block)) {
	s := &scanner{lines: lines, emit: emit}

	from := 0
	if fm, ok := DetectFrontmatter(lines); ok {
		from = fm.End + 1
	}

	for i := from; i < len(lines); i++ {
		s.step(i)
	}

	s.close()
}

func (s *scanner) step(i int) {
	line := s.lines[i]
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, Marker) {
		s.close()

		if s.state == stateFence {
			s.state = statePlain
		} else {
			s.state = stateFence
		}

		return
	}

	switch s.state {
	case stateFence:
		return

	case stateIndented:
		if len(trimmed) == 0 {
			return
		}

		if isIndented(line) {
			s.last = i

			return
		}

		s.close()

	case statePlain:
		if len(trimmed) != 0 && isIndented(line) {
			s.state = stateIndented
			s.start, s.last = i, i
		}
	}
}

// close ends the open indented block, if any. Trailing blank lines stay
// outside the block.
func (s *scanner) close() {
	if s.state != stateIndented {
		return
	}

	s.emit(Block{
		Start: s.start,
		End:   s.last,
		Lines: s.lines[s.start : s.last+1 : s.last+1],
	})

	s.state = statePlain
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, indent) || strings.HasPrefix(line, "\t")
}
