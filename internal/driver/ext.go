package driver

import (
	"errors"
	"path/filepath"
	"strings"

	"piyathon/internal/keywords"
)

const (
	ExtCanonical = ".py"
	ExtLocal     = ".pi"
)

var (
	ErrSameExtension    = errors.New("source and destination files must have different extensions (.py or .pi)")
	ErrUnknownExtension = errors.New("both files must have either .py or .pi extensions")
	ErrNotLocalSource   = errors.New("the source file must have a .pi extension")
)

// ExtensionError reports a source/destination pair rejected by the
// extension rules.
type ExtensionError struct {
	Source string
	Dest   string
	Err    error
}

func (e *ExtensionError) Error() string { return e.Err.Error() }

func (e *ExtensionError) Unwrap() error { return e.Err }

// DirectionFor picks the translation direction from the file extensions.
// Extensions are compared as written: "A.PY" is not a Python file.
func DirectionFor(src, dst string) (keywords.Direction, error) {
	srcExt, dstExt := filepath.Ext(src), filepath.Ext(dst)
	if srcExt == dstExt {
		return 0, &ExtensionError{Source: src, Dest: dst, Err: ErrSameExtension}
	}
	if !known(srcExt) || !known(dstExt) {
		return 0, &ExtensionError{Source: src, Dest: dst, Err: ErrUnknownExtension}
	}
	if srcExt == ExtCanonical {
		return keywords.ToLocal, nil
	}
	return keywords.ToCanonical, nil
}

// CheckRunnable accepts only local sources.
func CheckRunnable(path string) error {
	if !strings.HasSuffix(path, ExtLocal) {
		return &ExtensionError{Source: path, Err: ErrNotLocalSource}
	}
	return nil
}

// SourceExt is the extension of files read in direction dir.
func SourceExt(dir keywords.Direction) string {
	if dir == keywords.ToCanonical {
		return ExtLocal
	}
	return ExtCanonical
}

// TargetExt is the extension of files written in direction dir.
func TargetExt(dir keywords.Direction) string {
	return SourceExt(dir.Reverse())
}

// SwapExt replaces the source extension of path with the target one.
func SwapExt(path string, dir keywords.Direction) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + TargetExt(dir)
}

// DescribeDirection is the human name of a translation direction.
func DescribeDirection(dir keywords.Direction) string {
	if dir == keywords.ToCanonical {
		return "Piyathon to Python"
	}
	return "Python to Piyathon"
}

func known(ext string) bool { return ext == ExtCanonical || ext == ExtLocal }
