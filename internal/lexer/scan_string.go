package lexer

import (
	"fmt"

	"piyathon/internal/diag"
	"piyathon/internal/token"
)

// scanString читает обычный или байтовый литерал начиная с префикса длиной prefix.
// Экранирование учитывается только для поиска конца: '\' съедает следующий байт
// (в raw-строках тоже: так делает токенизатор CPython).
func (lx *Lexer) scanString(start, prefix uint32) {
	lx.cursor.Off = start + prefix
	q := lx.cursor.Bump()
	triple := lx.eatTripleRest(q)

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			if size, ok := lx.cursor.AtNewline(); ok {
				lx.cursor.BumpN(size)
			} else {
				lx.cursor.Bump()
			}
		case b == q:
			if !triple {
				lx.cursor.Bump()
				lx.emit(token.String, start, lx.cursor.Off)
				return
			}
			if lx.atTriple(q) {
				lx.cursor.BumpN(3)
				lx.emit(token.String, start, lx.cursor.Off)
				return
			}
			lx.cursor.Bump()
		case b == '\n' && !triple:
			lx.errLex(diag.LexUnterminatedString, start, lx.cursor.Off,
				fmt.Sprintf("unterminated string literal (detected at line %d)", lx.posAt(start).Line))
			lx.emit(token.ErrorToken, start, lx.cursor.Off)
			return
		default:
			lx.cursor.Bump()
		}
	}

	if triple {
		lx.errLex(diag.LexUnterminatedTriple, start, lx.cursor.Off,
			fmt.Sprintf("unterminated triple-quoted string literal (detected at line %d)", lx.posAt(lx.cursor.Off).Line))
	} else {
		lx.errLex(diag.LexUnterminatedString, start, lx.cursor.Off,
			fmt.Sprintf("unterminated string literal (detected at line %d)", lx.posAt(start).Line))
	}
	lx.emit(token.ErrorToken, start, lx.cursor.Off)
}

// eatTripleRest съедает ещё две кавычки q, если они есть.
func (lx *Lexer) eatTripleRest(q byte) bool {
	if lx.cursor.Peek() == q && lx.cursor.PeekAt(1) == q {
		lx.cursor.BumpN(2)
		return true
	}
	return false
}

func (lx *Lexer) atTriple(q byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	return ok && b0 == q && b1 == q && b2 == q
}
