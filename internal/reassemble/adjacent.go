package reassemble

import (
	"piyathon/internal/token"
)

// FixAdjacentStrings keeps implicitly concatenated literals apart: when a
// literal opens on the same row where the previous one closed, its start is
// moved one column past the previous end. Only Start changes.
func FixAdjacentStrings(tokens []token.Token) []token.Token {
	out := make([]token.Token, len(tokens))
	copy(out, tokens)
	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1], out[i]
		if !prev.ClosesLiteral() || !cur.OpensLiteral() {
			continue
		}
		if prev.End.Line != cur.Start.Line {
			continue
		}
		out[i] = cur.WithStart(prev.End.Advance(1))
	}
	return out
}
