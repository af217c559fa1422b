package reassemble

import (
	"errors"
	"fmt"
	"strings"

	"piyathon/internal/source"
	"piyathon/internal/token"
)

// ErrNonMonotonic is wrapped by PositionError.
var ErrNonMonotonic = errors.New("token positions are not monotonic")

// PositionError reports a token that starts before the previous one ended.
type PositionError struct {
	Index int
	Token token.Token
	Prev  source.Pos
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("token %d %s %q starts at %s, before previous end %s",
		e.Index, e.Token.Kind, e.Token.Text, e.Token.Start, e.Prev)
}

func (e *PositionError) Unwrap() error { return ErrNonMonotonic }

// Untokenize concatenates tokens into source text. Leading trivia is copied
// verbatim when it still joins the previous token to this one; otherwise the
// gap is rebuilt from positions. DEDENT tokens produce no text.
func Untokenize(tokens []token.Token) (string, error) {
	var sb strings.Builder
	prev := source.Pos{Line: 1, Col: 0}
	for i, tok := range tokens {
		if tok.Kind == token.Dedent {
			continue
		}
		if tok.Start.Before(prev) {
			return "", &PositionError{Index: i, Token: tok, Prev: prev}
		}
		lead := tok.Leading
		if lead.Start == prev && lead.End == tok.Start {
			sb.WriteString(lead.Text)
		} else {
			addWhitespace(&sb, prev, tok.Start)
		}
		sb.WriteString(tok.Text)
		prev = tok.End
	}
	return sb.String(), nil
}

// addWhitespace заполняет разрыв между from и to.
func addWhitespace(sb *strings.Builder, from, to source.Pos) {
	col := from.Col
	if rows := to.Line - from.Line; rows > 0 {
		sb.WriteString(strings.Repeat("\\\n", int(rows)))
		col = 0
	}
	if to.Col > col {
		sb.WriteString(strings.Repeat(" ", int(to.Col-col)))
	}
}
