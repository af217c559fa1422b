package keywords

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// exported mirrors python_mappings.json of the original tooling.
type exported struct {
	PiToPy map[string]string `json:"PI_TO_PY" yaml:"PI_TO_PY" toml:"PI_TO_PY"`
	PyToPi map[string]string `json:"PY_TO_PI" yaml:"PY_TO_PI" toml:"PY_TO_PI"`
}

// Export writes both directions of t to w in the given format.
func Export(w io.Writer, t *Table, format string) error {
	doc := exported{PiToPy: t.LocalToCanonical(), PyToPi: t.CanonicalToLocal()}
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("unknown export format %q (want json, yaml or toml)", format)
}
