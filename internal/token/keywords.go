package token

// Python hard keywords (3.12).
var keywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {}, "finally": {},
	"for": {}, "from": {}, "global": {}, "if": {}, "import": {}, "in": {},
	"is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {},
	"raise": {}, "return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
}

var softKeywords = map[string]struct{}{
	"_": {}, "case": {}, "match": {}, "type": {},
}

// IsKeyword reports whether name is a Python hard keyword.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

// IsSoftKeyword reports whether name is a Python soft keyword.
func IsSoftKeyword(name string) bool {
	_, ok := softKeywords[name]
	return ok
}

// KeywordCount returns the number of hard keywords.
func KeywordCount() int { return len(keywords) }
