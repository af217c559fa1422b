package translate

import (
	"errors"
	"fmt"

	"piyathon/internal/diag"
	"piyathon/internal/source"
)

var (
	ErrLexical    = errors.New("lexical error")
	ErrSyntax     = errors.New("syntax error")
	ErrReassembly = errors.New("reassembly error")
)

// LexicalError is returned when the input cannot be tokenized. Diagnostic is
// the first error; All holds every diagnostic collected for the input.
type LexicalError struct {
	File       *source.File
	Diagnostic diag.Diagnostic
	All        []diag.Diagnostic
}

func (e *LexicalError) Error() string {
	d := e.Diagnostic
	return fmt.Sprintf("%s at line %d, column %d: %s",
		d.Code.ID(), d.Primary.Start.Line, d.Primary.Start.Col+1, d.Message)
}

func (e *LexicalError) Unwrap() error { return ErrLexical }

// SyntaxValidationError wraps the parser error for canonical input that
// failed the syntax pre-check.
type SyntaxValidationError struct {
	Err error
}

func (e *SyntaxValidationError) Error() string {
	return fmt.Sprintf("invalid Python syntax: %v", e.Err)
}

func (e *SyntaxValidationError) Unwrap() []error { return []error{ErrSyntax, e.Err} }

// ReassemblyError wraps a failure to turn the rewritten tokens back into text.
type ReassemblyError struct {
	Err error
}

func (e *ReassemblyError) Error() string {
	return fmt.Sprintf("reassembly failed: %v", e.Err)
}

func (e *ReassemblyError) Unwrap() []error { return []error{ErrReassembly, e.Err} }
