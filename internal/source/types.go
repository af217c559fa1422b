package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	// FileHadBOM marks a file whose UTF-8 byte order mark was stripped on load.
	FileHadBOM
)

// File captures metadata and content for a single source file.
// Content is kept byte-for-byte (CRLF is not normalized): the translator
// must be able to reproduce it exactly.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n' bytes
	Hash    [32]byte
	Flags   FileFlags
}

// HadBOM reports whether the file started with a UTF-8 BOM on disk.
func (f *File) HadBOM() bool {
	return f.Flags&FileHadBOM != 0
}
