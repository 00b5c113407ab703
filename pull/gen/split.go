package gen

import (
	"strings"

	"github.com/lguimbarda/opt-pull/pull/core"
)

// Splitter yields the delimiter-separated pieces of a string, one per
// pull. It is deliberately call-style only — use it through
// pull.NewFunc(sp.Scan) — to demonstrate adapting producers that do
// not expose a Next method. The piece boundaries match strings.Split:
// an empty input yields one empty piece, and a trailing delimiter
// yields a trailing empty piece.
type Splitter struct {
	str   string
	delim byte
	pos   int // -1 once exhausted
}

// NewSplitter creates a splitter over str with the given delimiter.
func NewSplitter(str string, delim byte) *Splitter {
	return &Splitter{str: str, delim: delim}
}

// Scan returns the next piece, or None once the string is consumed.
func (s *Splitter) Scan() core.Option[string] {
	if s.pos < 0 {
		return core.None[string]()
	}
	idx := strings.IndexByte(s.str[s.pos:], s.delim)
	if idx < 0 {
		out := s.str[s.pos:]
		s.pos = -1
		return core.Some(out)
	}
	out := s.str[s.pos : s.pos+idx]
	s.pos += idx + 1
	return core.Some(out)
}

// Reset rewinds the splitter to the start of the string.
func (s *Splitter) Reset() { s.pos = 0 }

// Pos returns the current byte offset into the string, or -1 once the
// splitter is exhausted.
func (s *Splitter) Pos() int { return s.pos }
