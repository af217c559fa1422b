package source

import (
	"fmt"
)

// Pos is a token position: Line is 1-based, Col is a 0-based byte offset
// within the line. The position right after a '\n' is {Line + 1, 0}.
type Pos struct {
	Line uint32
	Col  uint32
}

// Before reports whether p is strictly before other.
func (p Pos) Before(other Pos) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// Advance returns p moved n columns to the right on the same line.
func (p Pos) Advance(n uint32) Pos {
	return Pos{Line: p.Line, Col: p.Col + n}
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span is a half-open range of positions inside one file.
type Span struct {
	File  FileID
	Start Pos // включительно
	End   Pos // не включительно
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%s-%s", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start.Before(s.Start) {
		s.Start = other.Start
	}
	if s.End.Before(other.End) {
		s.End = other.End
	}
	return s
}
