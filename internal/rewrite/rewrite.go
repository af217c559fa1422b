package rewrite

import (
	"piyathon/internal/keywords"
	"piyathon/internal/token"
)

// Stats counts what Apply did.
type Stats struct {
	Tokens   int
	Renamed  int
	Combined int
}

// Apply returns a copy of tokens with table names rewritten in direction dir.
// Non-NAME tokens and unknown names are passed through unchanged.
func Apply(tokens []token.Token, table *keywords.Table, dir keywords.Direction) []token.Token {
	out, _ := ApplyStats(tokens, table, dir)
	return out
}

// ApplyStats is Apply plus counters for tracing.
func ApplyStats(tokens []token.Token, table *keywords.Table, dir keywords.Direction) ([]token.Token, Stats) {
	out := make([]token.Token, 0, len(tokens))
	st := Stats{Tokens: len(tokens)}
	for i := 0; i < len(tokens); {
		d := Decide(tokens, i, table, dir)
		if d.Kind == Combined {
			st.Combined++
		}
		for k, tok := range d.Tokens {
			if i+k < len(tokens) && tok.Text != tokens[i+k].Text {
				st.Renamed++
			}
		}
		out = append(out, d.Tokens...)
		if d.Next <= i {
			// курсор обязан двигаться вперёд
			d.Next = i + 1
		}
		i = d.Next
	}
	return out, st
}
