package lexer

import (
	"piyathon/internal/diag"
	"piyathon/internal/token"
)

// handleIndentation меряет отступ физической строки и ставит в очередь
// INDENT/DEDENT. Пустые строки и строки-комментарии отступ не меняют.
func (lx *Lexer) handleIndentation() {
	content := lx.file.Content
	lineStart := lx.cursor.Off
	off := lineStart
	col, altcol := 0, 0
	tab := lx.opts.TabSize

scan:
	for off < lx.cursor.Limit {
		switch content[off] {
		case ' ':
			col++
			altcol++
		case '\t':
			col = (col/tab + 1) * tab
			altcol++ // альтернативный размер табуляции = 1
		case '\f':
			col, altcol = 0, 0
		default:
			break scan
		}
		off++
	}

	if off >= lx.cursor.Limit {
		return
	}
	switch content[off] {
	case '#', '\n':
		return
	case '\r':
		if off+1 < lx.cursor.Limit && content[off+1] == '\n' {
			return
		}
	}

	top := len(lx.indents) - 1
	switch {
	case col == lx.indents[top]:
		if altcol != lx.altIndents[top] {
			lx.errLex(diag.LexInconsistentTabs, lineStart, off, "inconsistent use of tabs and spaces in indentation")
		}

	case col > lx.indents[top]:
		if len(lx.indents) >= maxIndentDepth {
			lx.errLex(diag.LexTooDeepIndent, lineStart, off, "too many levels of indentation")
			return
		}
		if altcol <= lx.altIndents[top] {
			lx.errLex(diag.LexInconsistentTabs, lineStart, off, "inconsistent use of tabs and spaces in indentation")
		}
		lx.indents = append(lx.indents, col)
		lx.altIndents = append(lx.altIndents, altcol)
		lx.cursor.Off = off
		lx.emit(token.Indent, lineStart, off)

	default:
		for len(lx.indents) > 1 && col < lx.indents[len(lx.indents)-1] {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.altIndents = lx.altIndents[:len(lx.altIndents)-1]
			lx.emitZeroWidth(token.Dedent, off)
		}
		top = len(lx.indents) - 1
		switch {
		case col != lx.indents[top]:
			lx.errLex(diag.LexUnindentMismatch, lineStart, off, "unindent does not match any outer indentation level")
		case altcol != lx.altIndents[top]:
			lx.errLex(diag.LexInconsistentTabs, lineStart, off, "inconsistent use of tabs and spaces in indentation")
		}
	}
}

// scanNewline: NEWLINE в конце логической строки, иначе NL.
func (lx *Lexer) scanNewline() {
	start := lx.cursor.Off
	size, _ := lx.cursor.AtNewline()
	lx.cursor.BumpN(size)

	kind := token.NL
	if len(lx.brackets) == 0 && lx.lineHasCode {
		kind = token.Newline
	}
	lx.emit(kind, start, lx.cursor.Off)

	if len(lx.brackets) == 0 {
		lx.atLineStart = true
		lx.lineHasCode = false
	}
}

func (lx *Lexer) scanComment() {
	start := lx.cursor.Off
	for !lx.cursor.EOF() {
		if _, ok := lx.cursor.AtNewline(); ok {
			break
		}
		lx.cursor.Bump()
	}
	lx.emit(token.Comment, start, lx.cursor.Off)
}

// collectTrivia пропускает пробелы, табы, form feed и продолжения строки "\\\n".
// Сам текст попадёт в Leading следующего токена.
func (lx *Lexer) collectTrivia() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\f':
			lx.cursor.Bump()
		case '\r':
			if lx.cursor.PeekAt(1) == '\n' {
				return
			}
			lx.cursor.Bump()
		case '\\':
			start := lx.cursor.Off
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				lx.errLex(diag.LexEOFAfterContinuation, start, lx.cursor.Off, "unexpected EOF after line continuation character")
				return
			}
			size, ok := lx.cursor.AtNewline()
			if !ok {
				// не продолжение строки: пусть scanOperator сообщит об ошибке
				lx.cursor.Off = start
				return
			}
			lx.cursor.BumpN(size)
			if lx.cursor.EOF() {
				lx.errLex(diag.LexEOFAfterContinuation, start, lx.cursor.Off, "unexpected EOF after line continuation character")
				return
			}
		default:
			return
		}
	}
}
