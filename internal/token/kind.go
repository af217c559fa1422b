package token

// Kind represents the category of a source token.
// The set mirrors the token types of CPython's tokenize module.
type Kind uint8

const (
	// EndMarker marks the end of the source input.
	EndMarker Kind = iota
	// Name represents an identifier or keyword.
	Name
	// Number represents a numeric literal.
	Number
	// String represents a complete string or bytes literal, prefix included.
	String
	// Newline terminates a logical line.
	Newline
	// Indent opens a deeper indentation level.
	Indent
	// Dedent closes an indentation level.
	Dedent
	// Op represents an operator or delimiter.
	Op
	// Comment represents a '#' comment up to the end of the line.
	Comment
	// NL represents a non-logical line break (blank line, comment line, inside brackets).
	NL
	// FStringStart is the prefix and opening quote of an f-string.
	FStringStart
	// FStringMiddle is literal text inside an f-string or its format spec.
	FStringMiddle
	// FStringEnd is the closing quote of an f-string.
	FStringEnd
	// ErrorToken covers input the tokenizer could not classify; a diagnostic is always reported with it.
	ErrorToken
)

var kindNames = [...]string{
	EndMarker:     "ENDMARKER",
	Name:          "NAME",
	Number:        "NUMBER",
	String:        "STRING",
	Newline:       "NEWLINE",
	Indent:        "INDENT",
	Dedent:        "DEDENT",
	Op:            "OP",
	Comment:       "COMMENT",
	NL:            "NL",
	FStringStart:  "FSTRING_START",
	FStringMiddle: "FSTRING_MIDDLE",
	FStringEnd:    "FSTRING_END",
	ErrorToken:    "ERRORTOKEN",
}

// String returns the CPython spelling of the kind (NAME, FSTRING_START, ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}
