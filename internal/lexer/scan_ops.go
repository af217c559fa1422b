package lexer

import (
	"fmt"
	"strings"

	"piyathon/internal/diag"
	"piyathon/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
var (
	ops3 = []string{"**=", "//=", ">>=", "<<=", "..."}
	ops2 = []string{
		"!=", "%=", "&=", "**", "*=", "+=", "-=", "->", "//", "/=",
		":=", "<<", "<=", "==", ">=", ">>", "@=", "^=", "|=",
	}
)

const ops1 = "!%&()*+,-./:;<=>@[]^{|}~"

var closerFor = map[byte]byte{')': '(', ']': '[', '}': '{'}

func (lx *Lexer) scanOperator() {
	start := lx.cursor.Off
	ch := lx.cursor.Peek()

	// ':' на уровне поля f-строки: начало спецификации формата (даже если дальше '=')
	if ch == ':' && lx.atFieldLevel() {
		lx.cursor.Bump()
		lx.emit(token.Op, start, lx.cursor.Off)
		lx.modes = append(lx.modes, mode{kind: modeSpec})
		return
	}
	if ch == '}' && lx.atFieldLevel() {
		lx.closeField()
		return
	}

	n := lx.matchOp()
	if n == 0 {
		r, size := lx.peekRune()
		lx.cursor.BumpN(max(size, 1))
		msg := invalidCharMsg(r)
		if ch == '\\' {
			msg = "unexpected character after line continuation character"
		}
		lx.errLex(diag.LexUnknownChar, start, lx.cursor.Off, msg)
		lx.emit(token.ErrorToken, start, lx.cursor.Off)
		return
	}
	lx.cursor.BumpN(n)

	switch ch {
	case '(', '[', '{':
		lx.brackets = append(lx.brackets, bracket{ch: ch, off: start})
	case ')', ']', '}':
		lx.closeBracket(ch, start)
	}
	lx.emit(token.Op, start, lx.cursor.Off)
}

func (lx *Lexer) matchOp() uint32 {
	rest := lx.file.Content[lx.cursor.Off:lx.cursor.Limit]
	if len(rest) >= 3 {
		head := string(rest[:3])
		for _, op := range ops3 {
			if head == op {
				return 3
			}
		}
	}
	if len(rest) >= 2 {
		head := string(rest[:2])
		for _, op := range ops2 {
			if head == op {
				return 2
			}
		}
	}
	if len(rest) >= 1 && strings.IndexByte(ops1, rest[0]) >= 0 {
		return 1
	}
	return 0
}

func (lx *Lexer) closeBracket(ch byte, off uint32) {
	if len(lx.brackets) <= lx.fieldFloor() {
		lx.errLex(diag.LexUnmatchedBracket, off, off+1, fmt.Sprintf("unmatched '%c'", ch))
		return
	}
	open := lx.brackets[len(lx.brackets)-1]
	lx.brackets = lx.brackets[:len(lx.brackets)-1]
	if open.ch != closerFor[ch] {
		lx.errLex(diag.LexMismatchedBracket, off, off+1,
			fmt.Sprintf("closing parenthesis '%c' does not match opening parenthesis '%c'", ch, open.ch))
	}
}

// fieldFloor: глубина скобок, ниже которой закрывать нельзя внутри поля f-строки.
func (lx *Lexer) fieldFloor() int {
	if m := lx.topMode(); m != nil && m.kind == modeField {
		return m.brackets
	}
	return 0
}
