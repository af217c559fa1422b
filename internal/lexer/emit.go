package lexer

import (
	"fmt"
	"sort"

	"piyathon/internal/source"
	"piyathon/internal/token"

	"fortio.org/safecast"
)

// posAt переводит смещение в байтах в позицию строка/колонка.
func (lx *Lexer) posAt(off uint32) source.Pos {
	idx := lx.file.LineIdx
	// количество '\n' строго до off
	n := sort.Search(len(idx), func(i int) bool { return idx[i] >= off })
	var lineStart uint32
	if n > 0 {
		lineStart = idx[n-1] + 1
	}
	line, err := safecast.Conv[uint32](n + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return source.Pos{Line: line, Col: off - lineStart}
}

func (lx *Lexer) span(start, end uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: lx.posAt(start), End: lx.posAt(end)}
}

func (lx *Lexer) text(start, end uint32) string {
	return string(lx.file.Content[start:end])
}

// emit кладёт токен [start, end) в очередь; Leading: всё от конца
// предыдущего токена до start.
func (lx *Lexer) emit(kind token.Kind, start, end uint32) {
	tok := token.Token{
		Kind:  kind,
		Text:  lx.text(start, end),
		Start: lx.posAt(start),
		End:   lx.posAt(end),
		Leading: token.Trivia{
			Text:  lx.text(lx.triviaStart, start),
			Start: lx.posAt(lx.triviaStart),
			End:   lx.posAt(start),
		},
	}
	lx.queue = append(lx.queue, tok)
	lx.triviaStart = end
	lx.lastEnd = end
	lx.lastKind = kind
	if isCode(kind) {
		lx.lineHasCode = true
	}
}

// emitZeroWidth кладёт пустой токен в позицию off, не трогая накопленные trivia.
func (lx *Lexer) emitZeroWidth(kind token.Kind, off uint32) {
	p := lx.posAt(off)
	lx.queue = append(lx.queue, token.Token{
		Kind:    kind,
		Start:   p,
		End:     p,
		Leading: token.Trivia{Start: p, End: p},
	})
}

func isCode(kind token.Kind) bool {
	switch kind {
	case token.Name, token.Number, token.String, token.Op,
		token.FStringStart, token.FStringMiddle, token.FStringEnd, token.ErrorToken:
		return true
	default:
		return false
	}
}
