package driver

import (
	"errors"
	"fmt"

	"piyathon/internal/diag"
	"piyathon/internal/source"
	"piyathon/internal/translate"
)

// FailureDiagnostics converts an error returned by ConvertFile, ConvertDir
// or the translator into diagnostics. Lexical errors keep their own; every
// other failure becomes one diagnostic attached to file when it is known.
func FailureDiagnostics(path string, file *source.File, err error) []diag.Diagnostic {
	if err == nil {
		return nil
	}
	var lexErr *translate.LexicalError
	if errors.As(err, &lexErr) && len(lexErr.All) > 0 {
		return lexErr.All
	}

	var span source.Span
	if file != nil {
		span.File = file.ID
	}
	msg := fmt.Sprintf("%s: %v", path, err)

	var (
		extErr  *ExtensionError
		fileErr *FileAccessError
	)
	code := diag.UnknownCode
	switch {
	case errors.Is(err, translate.ErrSyntax):
		code = diag.SynInvalidSyntax
	case errors.Is(err, translate.ErrReassembly):
		code = diag.TrnReassembly
	case errors.As(err, &extErr):
		code = diag.TrnExtensionInvalid
	case errors.As(err, &fileErr) && fileErr.Op == OpWrite:
		code = diag.IOWriteFileError
	case errors.As(err, &fileErr):
		code = diag.IOLoadFileError
	}
	return []diag.Diagnostic{diag.NewError(code, span, msg)}
}
