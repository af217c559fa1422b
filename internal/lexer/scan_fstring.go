package lexer

import (
	"fmt"
	"strings"

	"piyathon/internal/diag"
	"piyathon/internal/token"
)

type modeKind uint8

const (
	// литеральная часть f-строки
	modeFString modeKind = iota
	// выражение внутри {...}
	modeField
	// спецификация формата после ':'
	modeSpec
)

// mode: элемент стека вложенности f-строк (PEP 701).
type mode struct {
	kind     modeKind
	quote    byte
	triple   bool
	raw      bool
	start    uint32 // смещение FSTRING_START
	brackets int    // modeFString: глубина скобок на входе; modeField: глубина после '{'
}

func (lx *Lexer) topMode() *mode {
	if len(lx.modes) == 0 {
		return nil
	}
	return &lx.modes[len(lx.modes)-1]
}

// enclosingFString возвращает индекс ближайшей f-строки в стеке.
func (lx *Lexer) enclosingFString() int {
	for i := len(lx.modes) - 1; i >= 0; i-- {
		if lx.modes[i].kind == modeFString {
			return i
		}
	}
	return -1
}

// atFieldLevel: курсор внутри поля подстановки, вне вложенных скобок.
func (lx *Lexer) atFieldLevel() bool {
	m := lx.topMode()
	return m != nil && m.kind == modeField && len(lx.brackets) == m.brackets
}

func (lx *Lexer) scanFStringStart(start, prefix uint32) {
	p := lx.text(start, start+prefix)
	lx.cursor.Off = start + prefix
	q := lx.cursor.Bump()
	triple := lx.eatTripleRest(q)
	lx.emit(token.FStringStart, start, lx.cursor.Off)
	lx.modes = append(lx.modes, mode{
		kind:     modeFString,
		quote:    q,
		triple:   triple,
		raw:      strings.ContainsAny(p, "rR"),
		start:    start,
		brackets: len(lx.brackets),
	})
}

// scanFStringMiddle читает литеральный текст f-строки (или спецификации
// формата) до '{', '}' или закрывающей кавычки.
func (lx *Lexer) scanFStringMiddle() {
	fi := lx.enclosingFString()
	fs := lx.modes[fi]
	spec := lx.topMode().kind == modeSpec
	start := lx.cursor.Off

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '{':
			if !spec && lx.cursor.PeekAt(1) == '{' {
				lx.cursor.BumpN(2)
				continue
			}
			lx.emitMiddle(start)
			lx.openField()
			return

		case b == '}':
			if spec {
				// '}' закрывает поле: это сделает scanOperator
				lx.emitMiddle(start)
				lx.modes = lx.modes[:len(lx.modes)-1]
				return
			}
			if lx.cursor.PeekAt(1) == '}' {
				lx.cursor.BumpN(2)
				continue
			}
			lx.errLex(diag.LexFStringBadField, lx.cursor.Off, lx.cursor.Off+1, "f-string: single '}' is not allowed")
			lx.cursor.Bump()

		case b == '\\':
			lx.cursor.Bump()
			next := lx.cursor.Peek()
			switch {
			case next == '{' || next == '}':
				// фигурные скобки после '\' всё равно открывают/закрывают поле
			case fs.raw && next != fs.quote && next != '\\':
			default:
				if size, ok := lx.cursor.AtNewline(); ok {
					lx.cursor.BumpN(size)
				} else {
					lx.cursor.Bump()
				}
			}

		case b == fs.quote && (!fs.triple || lx.atTriple(fs.quote)):
			if spec {
				lx.errLex(diag.LexFStringBadField, lx.cursor.Off, lx.cursor.Off+1, "f-string: expecting '}'")
			}
			lx.emitMiddle(start)
			lx.dropFields(fi)
			qstart := lx.cursor.Off
			if fs.triple {
				lx.cursor.BumpN(3)
			} else {
				lx.cursor.Bump()
			}
			lx.emit(token.FStringEnd, qstart, lx.cursor.Off)
			lx.modes = lx.modes[:fi]
			return

		case b == '\n' && !fs.triple:
			lx.errLex(diag.LexUnterminatedFString, fs.start, lx.cursor.Off, unterminatedFStringMsg(fs, lx.posAt(fs.start).Line))
			lx.emitMiddle(start)
			lx.dropFString(fi)
			return

		default:
			lx.cursor.Bump()
		}
	}

	lx.errLex(diag.LexUnterminatedFString, fs.start, lx.cursor.Off, unterminatedFStringMsg(fs, lx.posAt(lx.cursor.Off).Line))
	lx.emitMiddle(start)
	lx.dropFString(fi)
}

func (lx *Lexer) emitMiddle(start uint32) {
	if lx.cursor.Off > start {
		lx.emit(token.FStringMiddle, start, lx.cursor.Off)
	}
}

// openField: '{' начинает поле подстановки.
func (lx *Lexer) openField() {
	start := lx.cursor.Off
	lx.cursor.Bump()
	lx.brackets = append(lx.brackets, bracket{ch: '{', off: start})
	lx.emit(token.Op, start, lx.cursor.Off)
	lx.modes = append(lx.modes, mode{kind: modeField, brackets: len(lx.brackets)})
}

// closeField: '}' на уровне поля возвращает в литеральную часть.
func (lx *Lexer) closeField() {
	start := lx.cursor.Off
	lx.cursor.Bump()
	lx.brackets = lx.brackets[:len(lx.brackets)-1]
	lx.emit(token.Op, start, lx.cursor.Off)
	lx.modes = lx.modes[:len(lx.modes)-1]
}

// dropFields убирает незакрытые поля над f-строкой fi (восстановление после ошибки).
func (lx *Lexer) dropFields(fi int) {
	lx.brackets = lx.brackets[:lx.modes[fi].brackets]
	lx.modes = lx.modes[:fi+1]
}

// dropFString бросает f-строку fi вместе со всем, что вложено в неё.
func (lx *Lexer) dropFString(fi int) {
	lx.brackets = lx.brackets[:lx.modes[fi].brackets]
	lx.modes = lx.modes[:fi]
}

func unterminatedFStringMsg(m mode, line uint32) string {
	if m.triple {
		return fmt.Sprintf("unterminated triple-quoted f-string literal (detected at line %d)", line)
	}
	return fmt.Sprintf("unterminated f-string literal (detected at line %d)", line)
}
