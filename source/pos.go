package source

import "fmt"

// Pos holds the line/column data for a single rune in a source code document.
// Both lines and columns are counted from 1
type Pos struct {
	Line int
	Col  int
}

// Before reports whether p comes strictly before q in the document
func (p Pos) Before(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}

	return p.Col < q.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span holds a Start and End position in a source code document. The End
// position is the position of the last rune included in the span
type Span struct {
	Start Pos
	End   Pos
}

// Join returns the smallest span that covers both a and b
func Join(a, b Span) Span {
	out := a

	if b.Start.Before(out.Start) {
		out.Start = b.Start
	}

	if out.End.Before(b.End) {
		out.End = b.End
	}

	return out
}

// Covers reports whether every rune of inner is also part of s
func (s Span) Covers(inner Span) bool {
	return !inner.Start.Before(s.Start) && !s.End.Before(inner.End)
}

func (s Span) String() string {
	return fmt.Sprintf("%s--%s", s.Start, s.End)
}
