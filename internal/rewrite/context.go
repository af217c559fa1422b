package rewrite

import (
	"piyathon/internal/keywords"
	"piyathon/internal/token"
)

// DecisionKind tags a Decision.
type DecisionKind uint8

const (
	// Simple: one input token produced one output token.
	Simple DecisionKind = iota
	// Combined: a multi-token idiom was decided as a unit.
	Combined
)

func (k DecisionKind) String() string {
	if k == Combined {
		return "combined"
	}
	return "simple"
}

// Decision is the result of deciding the token at a cursor position.
// Next is the index of the first token not covered by the decision.
type Decision struct {
	Kind   DecisionKind
	Tokens []token.Token
	Next   int
}

// Decide rewrites the token at tokens[i] and, when it starts a combined
// idiom, the tokens that belong to it.
func Decide(tokens []token.Token, i int, table *keywords.Table, dir keywords.Direction) Decision {
	tok := tokens[i]
	if tok.Kind != token.Name {
		return Decision{Kind: Simple, Tokens: []token.Token{tok}, Next: i + 1}
	}

	if d, ok := decideElseIf(tokens, i, table, dir); ok {
		return d
	}
	if table.Is(dir, tok.Text, "for") {
		if d, ok := decideForIn(tokens, i, table, dir); ok {
			return d
		}
	}
	return Decision{Kind: Simple, Tokens: []token.Token{mapName(tok, table, dir)}, Next: i + 1}
}

// decideElseIf: "else" + "if" (соседние NAME) -> один токен "elif".
func decideElseIf(tokens []token.Token, i int, table *keywords.Table, dir keywords.Direction) (Decision, bool) {
	first := tokens[i]
	if i+1 >= len(tokens) || !table.StartsCombined(dir, first.Text) {
		return Decision{}, false
	}
	second := tokens[i+1]
	if second.Kind != token.Name {
		return Decision{}, false
	}
	kw, ok := table.Combine(dir, first.Text, second.Text)
	if !ok {
		return Decision{}, false
	}
	merged := first.WithText(kw)
	merged.End = second.End
	return Decision{Kind: Combined, Tokens: []token.Token{merged}, Next: i + 2}, true
}

// decideForIn ищет первый "in" на нулевой глубине скобок до конца логической строки.
func decideForIn(tokens []token.Token, i int, table *keywords.Table, dir keywords.Direction) (Decision, bool) {
	depth := 0
	for j := i + 1; j < len(tokens); j++ {
		tok := tokens[j]
		switch tok.Kind {
		case token.Newline, token.EndMarker:
			return Decision{}, false
		case token.Op:
			switch tok.Text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				depth--
				if depth < 0 {
					// вышли из скобок, в которых стоял for
					return Decision{}, false
				}
			}
		case token.Name:
			if depth == 0 && table.Is(dir, tok.Text, "in") {
				out := make([]token.Token, 0, j-i+1)
				for k := i; k <= j; k++ {
					out = append(out, mapName(tokens[k], table, dir))
				}
				return Decision{Kind: Combined, Tokens: out, Next: j + 1}, true
			}
		}
	}
	return Decision{}, false
}

func mapName(tok token.Token, table *keywords.Table, dir keywords.Direction) token.Token {
	if tok.Kind != token.Name {
		return tok
	}
	if v, ok := table.Lookup(dir, tok.Text); ok {
		return tok.WithText(v)
	}
	return tok
}
