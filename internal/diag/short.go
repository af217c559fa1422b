package diag

import (
	"fmt"
	"path/filepath"
	"strings"

	"piyathon/internal/source"
)

// FormatShort renders one diagnostic as "severity CODE path:line:col message".
// Columns are printed 1-based.
func FormatShort(d Diagnostic, fs *source.FileSet) string {
	path := "<input>"
	if fs != nil && int(d.Primary.File) < fs.Len() {
		path = filepath.ToSlash(fs.Get(d.Primary.File).Path)
	}
	return fmt.Sprintf("%s %s %s:%d:%d %s",
		d.Severity.Label(), d.Code.ID(), path,
		d.Primary.Start.Line, d.Primary.Start.Col+1, sanitizeMessage(d.Message))
}

// FormatShortDiagnostics renders diagnostics one per line in bag order.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet) string {
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, FormatShort(d, fs))
	}
	return strings.Join(lines, "\n")
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
