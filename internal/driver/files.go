package driver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"piyathon/internal/source"
)

var (
	ErrNotFound   = errors.New("file not found")
	ErrUnreadable = errors.New("unable to read file")
	ErrUnwritable = errors.New("unable to write file")
)

const (
	OpRead  = "read"
	OpWrite = "write"
)

// FileAccessError reports a source that could not be read or a destination
// that could not be written.
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() []error {
	return []error{e.kind(), e.Err}
}

func (e *FileAccessError) kind() error {
	switch {
	case e.Op == OpWrite:
		return ErrUnwritable
	case errors.Is(e.Err, fs.ErrNotExist):
		return ErrNotFound
	default:
		return ErrUnreadable
	}
}

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// ReadSource loads path into fileSet. The BOM is stripped and remembered in
// the file flags.
func ReadSource(fileSet *source.FileSet, path string) (*source.File, error) {
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: OpRead, Err: err}
	}
	file := fileSet.Get(id)
	if !utf8.Valid(file.Content) {
		return nil, &FileAccessError{Path: path, Op: OpRead, Err: errInvalidUTF8}
	}
	return file, nil
}

// WriteOutput writes text to path, restoring the BOM when the source had one.
func WriteOutput(path, text string, bom bool) error {
	data := source.WithBOM([]byte(text), bom)
	// #nosec G306 -- translated sources are ordinary user files
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &FileAccessError{Path: path, Op: OpWrite, Err: err}
	}
	return nil
}
