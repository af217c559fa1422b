package translate

// Option configures a Translator.
type Option func(*Translator)

// WithSyntaxCheck enables parsing canonical input before it is translated.
func WithSyntaxCheck(on bool) Option {
	return func(tr *Translator) { tr.syntaxCheck = on }
}

// WithTabSize sets the tab width the tokenizer uses when comparing indentation.
func WithTabSize(n int) Option {
	return func(tr *Translator) { tr.tabSize = n }
}

// WithMaxDiagnostics caps how many lexical diagnostics are kept per call.
func WithMaxDiagnostics(n int) Option {
	return func(tr *Translator) {
		if n > 0 {
			tr.maxDiags = n
		}
	}
}
