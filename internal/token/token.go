package token

import (
	"piyathon/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Text    string
	Start   source.Pos
	End     source.Pos
	Leading Trivia
}

// WithText returns a copy of the token with Text replaced.
func (t Token) WithText(s string) Token {
	t.Text = s
	return t
}

// WithStart returns a copy of the token with Start replaced.
func (t Token) WithStart(p source.Pos) Token {
	t.Start = p
	return t
}

// IsStringLike reports whether the token is a string literal or an f-string boundary.
func (t Token) IsStringLike() bool {
	switch t.Kind {
	case String, FStringStart, FStringEnd:
		return true
	default:
		return false
	}
}

// ClosesLiteral reports whether the token ends a string literal.
func (t Token) ClosesLiteral() bool { return t.Kind == String || t.Kind == FStringEnd }

// OpensLiteral reports whether the token begins a string literal.
func (t Token) OpensLiteral() bool { return t.Kind == String || t.Kind == FStringStart }

// IsName reports whether the token is a NAME.
func (t Token) IsName() bool { return t.Kind == Name }

// IsOp reports whether the token is the operator op.
func (t Token) IsOp(op string) bool { return t.Kind == Op && t.Text == op }

// IsLineEnd reports whether the token ends a physical line.
func (t Token) IsLineEnd() bool { return t.Kind == Newline || t.Kind == NL }

// Span returns the token's extent in file.
func (t Token) Span(file source.FileID) source.Span {
	return source.Span{File: file, Start: t.Start, End: t.End}
}
