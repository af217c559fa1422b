package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo                 Code = 1000
	LexUnknownChar          Code = 1001
	LexUnterminatedString   Code = 1002
	LexUnterminatedTriple   Code = 1003
	LexUnterminatedFString  Code = 1004
	LexUnindentMismatch     Code = 1005
	LexInconsistentTabs     Code = 1006
	LexEOFInStatement       Code = 1007
	LexUnmatchedBracket     Code = 1008
	LexMismatchedBracket    Code = 1009
	LexEOFAfterContinuation Code = 1010
	LexTooDeepIndent        Code = 1011
	LexFStringBadField      Code = 1012

	// Синтаксическая проверка (gpython)
	SynInfo          Code = 2000
	SynInvalidSyntax Code = 2001

	// Трансляция
	TrnInfo             Code = 3000
	TrnReassembly       Code = 3001
	TrnExtensionInvalid Code = 3002

	// Ввод-вывод
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:             "Unknown error",
		LexInfo:                 "Lexical information",
		LexUnknownChar:          "invalid character in source",
		LexUnterminatedString:   "unterminated string literal",
		LexUnterminatedTriple:   "unterminated triple-quoted string literal",
		LexUnterminatedFString:  "unterminated f-string literal",
		LexUnindentMismatch:     "unindent does not match any outer indentation level",
		LexInconsistentTabs:     "inconsistent use of tabs and spaces in indentation",
		LexEOFInStatement:       "unexpected EOF in multi-line statement",
		LexUnmatchedBracket:     "unmatched closing bracket",
		LexMismatchedBracket:    "closing bracket does not match opening bracket",
		LexEOFAfterContinuation: "unexpected EOF after line continuation character",
		LexTooDeepIndent:        "too many levels of indentation",
		LexFStringBadField:      "malformed f-string replacement field",
		SynInfo:                 "Syntax information",
		SynInvalidSyntax:        "invalid syntax",
		TrnInfo:                 "Translation information",
		TrnReassembly:           "token stream cannot be reassembled",
		TrnExtensionInvalid:     "unsupported file extension",
		IOLoadFileError:         "I/O load file error",
		IOWriteFileError:        "I/O write file error",
		ObsInfo:                 "Observability information",
		ObsTimings:              "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TRN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
