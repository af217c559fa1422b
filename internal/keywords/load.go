package keywords

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// tableFile is the TOML layout of an alternate table:
//
//	name = "thai-short"
//	[keywords]
//	if = "ถ้า"
//	[builtins]
//	print = "พิมพ์"
//	[dunders]
//	__init__ = "__เริ่มต้น__"
//	[[combined]]
//	parts = ["else", "if"]
//	keyword = "elif"
type tableFile struct {
	Name     string            `toml:"name"`
	Keywords map[string]string `toml:"keywords"`
	Builtins map[string]string `toml:"builtins"`
	Dunders  map[string]string `toml:"dunders"`
	Combined []combinedFile    `toml:"combined"`
}

type combinedFile struct {
	Parts   []string `toml:"parts"`
	Keyword string   `toml:"keyword"`
}

// LoadFile reads a table from a TOML file.
func LoadFile(path string) (*Table, error) {
	var f tableFile
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return fromFile(path, f, meta)
}

// Parse reads a table from TOML text.
func Parse(name, text string) (*Table, error) {
	var f tableFile
	meta, err := toml.Decode(text, &f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	return fromFile(name, f, meta)
}

func fromFile(path string, f tableFile, meta toml.MetaData) (*Table, error) {
	if !meta.IsDefined("name") || strings.TrimSpace(f.Name) == "" {
		return nil, fmt.Errorf("%w: %s: missing name", ErrInvalidTable, path)
	}
	if !meta.IsDefined("keywords") {
		return nil, fmt.Errorf("%w: %s: missing [keywords]", ErrInvalidTable, path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidTable, path, undecoded[0].String())
	}

	combined := make([]Combined, 0, len(f.Combined))
	for i, c := range f.Combined {
		if len(c.Parts) != 2 || c.Keyword == "" {
			return nil, fmt.Errorf("%w: %s: combined[%d] needs two parts and a keyword", ErrInvalidTable, path, i)
		}
		combined = append(combined, Combined{Parts: [2]string{c.Parts[0], c.Parts[1]}, Keyword: c.Keyword})
	}

	return New(f.Name, map[Class]map[string]string{
		ClassKeyword: f.Keywords,
		ClassBuiltin: f.Builtins,
		ClassDunder:  f.Dunders,
	}, combined)
}
