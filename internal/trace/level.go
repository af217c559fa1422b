package trace

import (
	"fmt"
	"strings"
)

// Level selects how much of a run is traced.
type Level uint8

const (
	LevelOff   Level = iota
	LevelPhase       // commands and translation steps
	LevelFile        // plus one span per file of a batch
	LevelDebug       // everything
)

var levels = []struct {
	name  string
	limit Scope // самый мелкий scope, который ещё пишется
}{
	LevelOff:   {"off", 0},
	LevelPhase: {"phase", ScopePass},
	LevelFile:  {"file", ScopeFile},
	LevelDebug: {"debug", ScopeToken},
}

func (l Level) String() string {
	if int(l) >= len(levels) {
		return "unknown"
	}
	return levels[l].name
}

// ParseLevel reads a --trace-level value. The empty string means off.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelOff, nil
	}
	for l, entry := range levels {
		if entry.name == s {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|phase|file|debug)", s)
}

// ShouldEmit reports whether events of scope are recorded at level l.
func (l Level) ShouldEmit(scope Scope) bool {
	return int(l) < len(levels) && scope != 0 && scope <= levels[l].limit
}
