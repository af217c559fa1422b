package lexer

import (
	"piyathon/internal/token"
)

// Поддержка: 0x.., 0o.., 0b.., 123, 1_000, 1.5, .5, 1., 1e-3, 1.0e+10, 3j.
// Форма проверяется мягко: текст уходит в токен как есть, парсер Python разберётся.
func (lx *Lexer) scanNumber() {
	start := lx.cursor.Off

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			lx.cursor.BumpN(2)
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			lx.emit(token.Number, start, lx.cursor.Off)
			return
		}
	}

	lx.digits()
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.digits()
	}

	// экспонента только если за ней действительно цифры
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		b1 := lx.cursor.PeekAt(1)
		switch {
		case isDec(b1):
			lx.cursor.Bump()
			lx.digits()
		case (b1 == '+' || b1 == '-') && isDec(lx.cursor.PeekAt(2)):
			lx.cursor.BumpN(2)
			lx.digits()
		}
	}

	if b := lx.cursor.Peek(); b == 'j' || b == 'J' {
		lx.cursor.Bump()
	}
	lx.emit(token.Number, start, lx.cursor.Off)
}

func (lx *Lexer) digits() {
	for isDec(lx.cursor.Peek()) || (lx.cursor.Peek() == '_' && isDec(lx.cursor.PeekAt(1))) {
		lx.cursor.Bump()
	}
}
