// Package translate is the translation facade: it tokenizes a source, rewrites
// mapped names in one direction and reassembles the text.
//
//	tr := translate.New(keywords.Thai())
//	pi, err := tr.ToLocal("if x > 0:\n    return True\n")
//
// A Translator is bound to one mapping table and holds no mutable state, so a
// single value may be shared between goroutines.
package translate
