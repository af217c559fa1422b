package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"piyathon/internal/token"
)

// TokenOutput is the serialized form of a token. Columns are 0-based bytes,
// as the lexer records them.
type TokenOutput struct {
	Kind    string    `json:"kind" msgpack:"kind"`
	Text    string    `json:"text" msgpack:"text"`
	Start   [2]uint32 `json:"start" msgpack:"start"`
	End     [2]uint32 `json:"end" msgpack:"end"`
	Leading string    `json:"leading,omitempty" msgpack:"leading,omitempty"`
}

func tokenOutputs(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Start:   [2]uint32{tok.Start.Line, tok.Start.Col},
			End:     [2]uint32{tok.End.Line, tok.End.Col},
			Leading: tok.Leading.Text,
		})
		if tok.Kind == token.EndMarker {
			break
		}
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате,
// по строке на токен, как python -m tokenize
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for _, tok := range tokens {
		pos := fmt.Sprintf("%d,%d-%d,%d:", tok.Start.Line, tok.Start.Col, tok.End.Line, tok.End.Col)
		if _, err := fmt.Fprintf(w, "%-20s%-15s%q\n", pos, tok.Kind.String(), tok.Text); err != nil {
			return err
		}
		if tok.Kind == token.EndMarker {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(tokenOutputs(tokens))
}

// FormatTokensMsgpack пишет токены одним msgpack-массивом
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(tokenOutputs(tokens))
}

// DecodeTokensMsgpack читает то, что записал FormatTokensMsgpack
func DecodeTokensMsgpack(r io.Reader) ([]TokenOutput, error) {
	var out []TokenOutput
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
