package driver

import (
	"piyathon/internal/diag"
	"piyathon/internal/lexer"
	"piyathon/internal/source"
	"piyathon/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize reads path and runs the lexer over it. Lexical errors end up in
// Bag; the token stream is returned either way.
func Tokenize(path string, maxDiagnostics, tabSize int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	file, err := ReadSource(fs, path)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.Tokenize(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
		TabSize:  tabSize,
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
