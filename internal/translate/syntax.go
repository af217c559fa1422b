package translate

import (
	"strings"

	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"
)

// CheckSyntax parses src as a Python module and reports whether it is valid.
// The embedded parser follows an older grammar than current CPython, so
// newer constructs such as f-strings may be rejected.
func CheckSyntax(src string) error {
	if _, err := parser.Parse(strings.NewReader(src), "<string>", py.ExecMode); err != nil {
		return &SyntaxValidationError{Err: err}
	}
	return nil
}
