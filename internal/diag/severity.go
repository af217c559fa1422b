package diag

// Severity orders diagnostics: a Bag sorts higher severities first.
type Severity uint8

const (
	SevInfo    Severity = iota // notes from the tool itself, e.g. timings
	SevWarning                 // translation still succeeds
	SevError                   // the file is not translated
)

type severityNames struct {
	upper, label, sarif string
}

var severityTable = [...]severityNames{
	SevInfo:    {"INFO", "info", "note"},
	SevWarning: {"WARNING", "warning", "warning"},
	SevError:   {"ERROR", "error", "error"},
}

func (s Severity) names() (severityNames, bool) {
	if int(s) >= len(severityTable) {
		return severityNames{}, false
	}
	return severityTable[s], true
}

func (s Severity) String() string {
	if n, ok := s.names(); ok {
		return n.upper
	}
	return "UNKNOWN"
}

// Label is the lowercase spelling used by the short one-line format.
func (s Severity) Label() string {
	if n, ok := s.names(); ok {
		return n.label
	}
	return "info"
}

// SarifLevel maps s onto a SARIF result level.
func (s Severity) SarifLevel() string {
	if n, ok := s.names(); ok {
		return n.sarif
	}
	return "note"
}
