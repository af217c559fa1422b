package lexer

import (
	"piyathon/internal/diag"
	"piyathon/internal/source"
	"piyathon/internal/token"
)

const (
	defaultTabSize = 8
	maxIndentDepth = 100
)

type bracket struct {
	ch  byte
	off uint32
}

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	queue []token.Token // готовые, но ещё не отданные токены
	look  *token.Token  // 1 элементный буфер для Peek

	triviaStart uint32 // конец последнего токена, отсюда начинается Leading
	lastEnd     uint32
	lastKind    token.Kind
	atLineStart bool
	lineHasCode bool // на логической строке уже был значимый токен

	indents    []int
	altIndents []int
	brackets   []bracket
	modes      []mode

	errors int
	done   bool
	end    token.Token
}

func New(file *source.File, opts Options) *Lexer {
	if opts.TabSize <= 0 {
		opts.TabSize = defaultTabSize
	}
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts,
		atLineStart: true,
		lastKind:    token.NL,
		indents:     []int{0},
		altIndents:  []int{0},
	}
}

// Tokenize runs the lexer over the whole file and returns every token up to
// and including ENDMARKER.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	out := make([]token.Token, 0, len(file.Content)/3+8)
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EndMarker {
			return out
		}
	}
}

// Next возвращает следующий токен с уже собранным Leading.
// После ENDMARKER всегда возвращает ENDMARKER.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	for len(lx.queue) == 0 {
		lx.step()
	}
	tok := lx.queue[0]
	lx.queue = lx.queue[1:]
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// ErrorCount returns the number of lexical errors seen so far.
func (lx *Lexer) ErrorCount() int { return lx.errors }

// step производит как минимум один токен в очередь.
func (lx *Lexer) step() {
	if lx.done {
		lx.queue = append(lx.queue, lx.end)
		return
	}

	// внутри литеральной части f-строки пробелы значимы
	if m := lx.topMode(); m != nil && m.kind != modeField {
		lx.scanFStringMiddle()
		return
	}

	if lx.atLineStart {
		lx.atLineStart = false
		lx.handleIndentation()
	}

	lx.collectTrivia()
	if lx.cursor.EOF() {
		lx.finish()
		return
	}

	if _, ok := lx.cursor.AtNewline(); ok {
		lx.scanNewline()
		return
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '#':
		lx.scanComment()
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		lx.scanNameOrString()
	case isDec(ch) || (ch == '.' && lx.isNumberAfterDot()):
		lx.scanNumber()
	case ch == '\'' || ch == '"':
		lx.scanString(lx.cursor.Off, 0)
	default:
		lx.scanOperator()
	}
}

// finish закрывает поток: NEWLINE для незавершённой строки, DEDENT, ENDMARKER.
func (lx *Lexer) finish() {
	eof := lx.cursor.Off

	if len(lx.modes) > 0 {
		outer := lx.modes[0]
		lx.errLex(diag.LexUnterminatedFString, outer.start, eof, unterminatedFStringMsg(outer, lx.posAt(eof).Line))
		lx.brackets = lx.brackets[:outer.brackets]
		lx.modes = nil
	}
	if len(lx.brackets) > 0 {
		open := lx.brackets[0]
		lx.errLex(diag.LexEOFInStatement, open.off, open.off+1, "unexpected EOF in multi-line statement")
		lx.brackets = nil
	}

	switch {
	case lx.lineHasCode:
		lx.emitZeroWidth(token.Newline, lx.lastEnd)
	case lx.lastKind == token.Comment:
		lx.emitZeroWidth(token.NL, lx.lastEnd)
	}
	lx.lineHasCode = false

	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.altIndents = lx.altIndents[:len(lx.altIndents)-1]
		lx.emitZeroWidth(token.Dedent, eof)
	}

	lx.emit(token.EndMarker, eof, eof)
	lx.end = lx.queue[len(lx.queue)-1]
	lx.done = true
}
