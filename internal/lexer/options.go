package lexer

import (
	"piyathon/internal/diag"
)

type Options struct {
	Reporter diag.Reporter // может быть nil: тогда ошибки игнорируем (но продолжаем лексить)
	// TabSize is the tab stop used for indentation columns; 0 means 8.
	TabSize int
}

func (lx *Lexer) errLex(code diag.Code, start, end uint32, msg string) {
	lx.errors++
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportError(lx.opts.Reporter, code, lx.span(start, end), msg).Emit()
}
