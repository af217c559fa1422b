package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"piyathon/internal/diag"
	"piyathon/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	PrettyDiagnostics(w, bag.Items(), fs, opts)
}

// PrettyDiagnostics is Pretty over a plain slice.
func PrettyDiagnostics(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range diags {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	f := fileOf(fs, d.Primary)
	located := f != nil && d.Primary.Start.Line > 0

	if located {
		fmt.Fprintf(w, "%s:%d:%d: ", displayPath(fs, f, opts.PathMode), d.Primary.Start.Line, d.Primary.Start.Col+1)
	}
	fmt.Fprintf(w, "%s %s: %s\n",
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Message)

	if located {
		writeSnippet(w, f, d.Primary, opts.Context, p)
	}

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := fileOf(fs, n.Span)
		if nf != nil && n.Span.Start.Line > 0 {
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
				displayPath(fs, nf, opts.PathMode), n.Span.Start.Line, n.Span.Start.Col+1, n.Msg)
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), n.Msg)
	}
}

// writeSnippet печатает строки контекста и подчёркивание под span.
func writeSnippet(w io.Writer, f *source.File, span source.Span, context int, p palette) {
	line := span.Start.Line
	first := line
	for k := 0; k < context && first > 1; k++ {
		first--
	}
	width := len(fmt.Sprint(line))

	for n := first; n <= line; n++ {
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", width, n), f.GetLine(n))
	}

	text := f.GetLine(line)
	start := min(int(span.Start.Col), len(text))
	end := len(text)
	if span.End.Line == line {
		end = min(max(int(span.End.Col), start), len(text))
	}
	marks := "^"
	if under := runewidth.StringWidth(text[start:end]); under > 1 {
		marks += strings.Repeat("~", under-1)
	}
	fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", width, ""), caretPad(text[:start]), p.caret.Sprint(marks))
}

// caretPad повторяет отступ строки: табы остаются табами, остальное
// заменяется пробелами по ширине на экране. Ширину считаем по кластерам
// графем: тайские диакритики не занимают колонку.
func caretPad(prefix string) string {
	var sb strings.Builder
	for i, seg := range strings.Split(prefix, "\t") {
		if i > 0 {
			sb.WriteByte('\t')
		}
		sb.WriteString(strings.Repeat(" ", runewidth.StringWidth(seg)))
	}
	return sb.String()
}
