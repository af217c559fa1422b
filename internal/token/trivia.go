package token

import (
	"strings"

	"piyathon/internal/source"
)

// Trivia is the inter-token text preceding a token: spaces, tabs, form
// feeds and backslash-newline continuations.
type Trivia struct {
	Text  string
	Start source.Pos
	End   source.Pos
}

// Empty reports whether there is no leading text.
func (tv Trivia) Empty() bool { return tv.Text == "" }

// HasContinuation reports whether the trivia crosses a backslash line continuation.
func (tv Trivia) HasContinuation() bool { return strings.Contains(tv.Text, "\\") }
