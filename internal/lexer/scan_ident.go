package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"piyathon/internal/diag"
	"piyathon/internal/token"
)

// допустимые префиксы строк (в нижнем регистре)
var stringPrefixes = map[string]struct{}{
	"r": {}, "u": {}, "b": {}, "f": {},
	"br": {}, "rb": {}, "fr": {}, "rf": {},
}

// scanNameOrString читает идентификатор; если это префикс строки,
// за которым сразу идёт кавычка: читает строку или f-строку.
func (lx *Lexer) scanNameOrString() {
	start := lx.cursor.Off

	if n, isF := lx.stringPrefix(); n > 0 {
		if isF {
			lx.scanFStringStart(start, n)
		} else {
			lx.scanString(start, n)
		}
		return
	}

	r, size := lx.peekRune()
	if !isIdentStartRune(r) {
		lx.cursor.BumpN(max(size, 1))
		lx.errLex(diag.LexUnknownChar, start, lx.cursor.Off, invalidCharMsg(r))
		lx.emit(token.ErrorToken, start, lx.cursor.Off)
		return
	}
	lx.cursor.BumpN(size)

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, size := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.cursor.BumpN(size)
	}
	lx.emit(token.Name, start, lx.cursor.Off)
}

// stringPrefix возвращает длину префикса строки под курсором (0: не строка)
// и признак f-строки.
func (lx *Lexer) stringPrefix() (n uint32, isF bool) {
	for i := uint32(0); i < 3; i++ {
		b := lx.cursor.PeekAt(i)
		if b == '\'' || b == '"' {
			if i == 0 {
				return 0, false
			}
			p := strings.ToLower(lx.text(lx.cursor.Off, lx.cursor.Off+i))
			if _, ok := stringPrefixes[p]; !ok {
				return 0, false
			}
			return i, strings.Contains(p, "f")
		}
		if !isIdentStartByte(b) {
			return 0, false
		}
	}
	return 0, false
}

func invalidCharMsg(r rune) string {
	if r == utf8.RuneError {
		return "invalid character in source"
	}
	return fmt.Sprintf("invalid character '%c' (U+%04X)", r, r)
}
