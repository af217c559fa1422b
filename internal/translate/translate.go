package translate

import (
	"context"
	"strconv"

	"piyathon/internal/diag"
	"piyathon/internal/keywords"
	"piyathon/internal/lexer"
	"piyathon/internal/observ"
	"piyathon/internal/reassemble"
	"piyathon/internal/rewrite"
	"piyathon/internal/source"
	"piyathon/internal/trace"
)

const (
	defaultMaxDiags = 64
	inputName       = "<input>"
)

// Translator converts sources between canonical and local syntax using one
// mapping table.
type Translator struct {
	table       *keywords.Table
	syntaxCheck bool
	tabSize     int
	maxDiags    int
}

// New creates a Translator bound to table.
func New(table *keywords.Table, opts ...Option) *Translator {
	tr := &Translator{table: table, maxDiags: defaultMaxDiags}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

// Table returns the mapping table the translator was created with.
func (tr *Translator) Table() *keywords.Table { return tr.table }

// ChecksSyntax reports whether canonical input is parsed before translation.
func (tr *Translator) ChecksSyntax() bool { return tr.syntaxCheck }

// ToLocal translates canonical source into local syntax.
func (tr *Translator) ToLocal(src string) (string, error) {
	return tr.Translate(keywords.ToLocal, src)
}

// ToCanonical translates local source into canonical syntax.
func (tr *Translator) ToCanonical(src string) (string, error) {
	return tr.Translate(keywords.ToCanonical, src)
}

// Translate translates src in direction dir.
func (tr *Translator) Translate(dir keywords.Direction, src string) (string, error) {
	return tr.TranslateContext(context.Background(), dir, src)
}

// TranslateTimed is Translate with every phase recorded in timer.
func (tr *Translator) TranslateTimed(dir keywords.Direction, src string, timer *observ.Timer) (string, error) {
	return tr.runString(context.Background(), dir, src, timer, true)
}

// TranslateContext is Translate with phase spans sent to the tracer in ctx.
func (tr *Translator) TranslateContext(ctx context.Context, dir keywords.Direction, src string) (string, error) {
	return tr.runString(ctx, dir, src, nil, true)
}

// TranslateFile translates a file that already lives in a FileSet, so that
// diagnostics point at its real path.
func (tr *Translator) TranslateFile(ctx context.Context, dir keywords.Direction, file *source.File, timer *observ.Timer) (string, error) {
	return tr.run(ctx, dir, file, timer, true)
}

// Normalize tokenizes and reassembles src without renaming anything, applying
// the same adjacent-literal fix as a translation.
func (tr *Translator) Normalize(src string) (string, error) {
	return tr.runString(context.Background(), keywords.ToLocal, src, nil, false)
}

// runString translates text given as a string. A leading BOM is not part of
// the token stream; it is put back in front of the output.
func (tr *Translator) runString(ctx context.Context, dir keywords.Direction, src string, timer *observ.Timer, rename bool) (string, error) {
	content, hadBOM := source.StripBOM([]byte(src))
	out, err := tr.run(ctx, dir, source.NewVirtualFile(inputName, content), timer, rename)
	if err != nil || !hadBOM {
		return out, err
	}
	return string(source.WithBOM([]byte(out), true)), nil
}

func (tr *Translator) run(ctx context.Context, dir keywords.Direction, file *source.File, timer *observ.Timer, rename bool) (string, error) {
	ph := phases{ctx: ctx, timer: timer}

	if rename && tr.syntaxCheck && dir == keywords.ToLocal {
		done := ph.begin("check")
		if err := CheckSyntax(string(file.Content)); err != nil {
			done("invalid")
			return "", err
		}
		done("")
	}

	done := ph.begin("lex")
	bag := diag.NewBag(tr.maxDiags)
	tokens := lexer.Tokenize(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
		TabSize:  tr.tabSize,
	})
	if first, ok := bag.FirstError(); ok {
		done(strconv.Itoa(bag.Len()) + " errors")
		return "", &LexicalError{File: file, Diagnostic: first, All: bag.Items()}
	}
	done(strconv.Itoa(len(tokens)) + " tokens")

	if rename {
		done = ph.begin("rewrite")
		var st rewrite.Stats
		tokens, st = rewrite.ApplyStats(tokens, tr.table, dir)
		done(strconv.Itoa(st.Renamed) + " renamed")
	}

	done = ph.begin("reassemble")
	out, err := reassemble.Untokenize(reassemble.FixAdjacentStrings(tokens))
	if err != nil {
		done("failed")
		return "", &ReassemblyError{Err: err}
	}
	done("")
	return out, nil
}

// phases records one pipeline step both as a trace span and a timer phase.
type phases struct {
	ctx   context.Context
	timer *observ.Timer
}

func (p phases) begin(name string) func(note string) {
	_, span := trace.StartSpan(p.ctx, trace.ScopePass, name, "")
	end := p.timer.Begin(name)
	return func(note string) {
		end(note)
		span.End(note)
	}
}
