package trace

import "time"

// Kind says what an event marks.
type Kind uint8

const (
	KindBegin Kind = iota + 1 // a span starts
	KindEnd                   // a span ends, Detail carries the outcome
	KindPoint                 // an instant, e.g. a cache hit
)

var kindNames = [...]string{KindBegin: "begin", KindEnd: "end", KindPoint: "point"}

func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Scope is the granularity of an event. Coarser scopes have lower values,
// so a level emits every scope up to its limit.
type Scope uint8

const (
	// ScopeCommand covers one command: convert, convert-dir, execute.
	ScopeCommand Scope = iota + 1
	// ScopePass covers one translation step: check, lex, rewrite, reassemble.
	ScopePass
	// ScopeFile covers one file of a batch and its cache lookups.
	ScopeFile
	ScopeToken
)

var scopeNames = [...]string{ScopeCommand: "command", ScopePass: "pass", ScopeFile: "file", ScopeToken: "token"}

func (s Scope) String() string {
	if s == 0 || int(s) >= len(scopeNames) {
		return "unknown"
	}
	return scopeNames[s]
}

// Event is one record of the trace.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for a root span
	Path     string // source file the event concerns, if any
	Name     string // "lex", "file:src/a.py", ...
	Detail   string
	Extra    map[string]string
}
