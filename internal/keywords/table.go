package keywords

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"maps"
	"sort"

	"golang.org/x/text/unicode/norm"

	"piyathon/internal/token"
)

// ErrInvalidTable is wrapped by every validation failure of New and LoadFile.
var ErrInvalidTable = errors.New("invalid mapping table")

// Entry is one canonical <-> local pair.
type Entry struct {
	Canonical string
	Local     string
	Class     Class
}

// Combined describes a two-word canonical idiom that collapses into one
// keyword, e.g. "else" + "if" -> "elif".
type Combined struct {
	Parts   [2]string
	Keyword string
}

type pair [2]string

// Table is an immutable bidirectional name mapping. Safe for concurrent reads.
type Table struct {
	name     string
	entries  []Entry
	toLocal  map[string]string
	toCanon  map[string]string
	classOf  map[string]Class
	combined []Combined

	// пара слов во входном написании -> итоговое слово
	combinedIdx [2]map[pair]string
}

// New validates classes and combined constructs and builds a table.
func New(name string, classes map[Class]map[string]string, combined []Combined) (*Table, error) {
	t := &Table{
		name:    name,
		toLocal: make(map[string]string),
		toCanon: make(map[string]string),
		classOf: make(map[string]Class),
	}

	for _, class := range Classes() {
		for canonical, local := range classes[class] {
			if canonical == "" || local == "" {
				return nil, fmt.Errorf("%w: %s: empty name in %s entry %q -> %q", ErrInvalidTable, name, class, canonical, local)
			}
			if prev, dup := t.classOf[canonical]; dup {
				return nil, fmt.Errorf("%w: %s: %q is listed as both %s and %s", ErrInvalidTable, name, canonical, prev, class)
			}
			if other, dup := t.toCanon[local]; dup {
				return nil, fmt.Errorf("%w: %s: %q and %q share the local name %q", ErrInvalidTable, name, other, canonical, local)
			}
			t.toLocal[canonical] = local
			t.toCanon[local] = canonical
			t.classOf[canonical] = class
			t.entries = append(t.entries, Entry{Canonical: canonical, Local: local, Class: class})
		}
	}

	// локальное имя не должно затенять другое каноническое
	for local, canonical := range t.toCanon {
		if _, shadow := t.toLocal[local]; shadow && local != canonical {
			return nil, fmt.Errorf("%w: %s: local name %q of %q is also a canonical name", ErrInvalidTable, name, local, canonical)
		}
		if (token.IsKeyword(local) || token.IsSoftKeyword(local)) && local != canonical {
			return nil, fmt.Errorf("%w: %s: local name %q of %q is a Python keyword", ErrInvalidTable, name, local, canonical)
		}
	}

	if err := checkFolding(name, t.toCanon); err != nil {
		return nil, err
	}

	t.combinedIdx[ToLocal] = make(map[pair]string)
	t.combinedIdx[ToCanonical] = make(map[pair]string)
	for _, c := range combined {
		for _, w := range []string{c.Parts[0], c.Parts[1], c.Keyword} {
			if _, ok := t.toLocal[w]; !ok {
				return nil, fmt.Errorf("%w: %s: combined construct %s %s -> %s uses unmapped name %q",
					ErrInvalidTable, name, c.Parts[0], c.Parts[1], c.Keyword, w)
			}
		}
		t.combined = append(t.combined, c)
		t.combinedIdx[ToLocal][pair{c.Parts[0], c.Parts[1]}] = t.toLocal[c.Keyword]
		t.combinedIdx[ToCanonical][pair{t.toLocal[c.Parts[0]], t.toLocal[c.Parts[1]]}] = c.Keyword
	}

	sort.Slice(t.entries, func(i, j int) bool {
		if t.entries[i].Class != t.entries[j].Class {
			return t.entries[i].Class < t.entries[j].Class
		}
		return t.entries[i].Canonical < t.entries[j].Canonical
	})
	return t, nil
}

// Name returns the table's name.
func (t *Table) Name() string { return t.name }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns the entries ordered by class, then canonical name.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// CombinedConstructs returns the combined keyword idioms.
func (t *Table) CombinedConstructs() []Combined {
	out := make([]Combined, len(t.combined))
	copy(out, t.combined)
	return out
}

// Lookup maps name in direction dir. Only exact spellings match: a name that
// merely folds to a key is a user identifier and stays as written.
func (t *Table) Lookup(dir Direction, name string) (string, bool) {
	from := t.toLocal
	if dir == ToCanonical {
		from = t.toCanon
	}
	v, ok := from[name]
	return v, ok
}

// Contains reports whether name is an input-side key in direction dir.
func (t *Table) Contains(dir Direction, name string) bool {
	_, ok := t.Lookup(dir, name)
	return ok
}

// ClassOf reports the class of a canonical name.
func (t *Table) ClassOf(canonical string) (Class, bool) {
	c, ok := t.classOf[canonical]
	return c, ok
}

// Spelling returns how the canonical word is written on the input side of dir.
func (t *Table) Spelling(dir Direction, canonical string) string {
	if dir == ToCanonical {
		if local, ok := t.toLocal[canonical]; ok {
			return local
		}
	}
	return canonical
}

// Is reports whether name, read in direction dir, spells the canonical word.
func (t *Table) Is(dir Direction, name, canonical string) bool {
	if dir == ToLocal {
		return name == canonical
	}
	c, ok := t.Lookup(ToCanonical, name)
	return ok && c == canonical
}

// Combine returns the output spelling of the combined keyword formed by first
// and second (input spellings of dir), if they form one.
func (t *Table) Combine(dir Direction, first, second string) (string, bool) {
	idx := t.combinedIdx[dir]
	if len(idx) == 0 {
		return "", false
	}
	if v, ok := idx[pair{first, second}]; ok {
		return v, true
	}
	// нормализуем оба слова через таблицу
	a, okA := t.canonicalOf(dir, first)
	b, okB := t.canonicalOf(dir, second)
	if !okA || !okB {
		return "", false
	}
	for _, c := range t.combined {
		if c.Parts[0] == a && c.Parts[1] == b {
			if dir == ToLocal {
				return t.toLocal[c.Keyword], true
			}
			return c.Keyword, true
		}
	}
	return "", false
}

// StartsCombined reports whether name is the first word of a combined idiom in dir.
func (t *Table) StartsCombined(dir Direction, name string) bool {
	a, ok := t.canonicalOf(dir, name)
	if !ok {
		return false
	}
	for _, c := range t.combined {
		if c.Parts[0] == a {
			return true
		}
	}
	return false
}

func (t *Table) canonicalOf(dir Direction, name string) (string, bool) {
	if dir == ToCanonical {
		return t.Lookup(ToCanonical, name)
	}
	if _, ok := t.toLocal[name]; ok {
		return name, true
	}
	return "", false
}

// checkFolding rejects tables whose names Python could not tell apart:
// identifiers are compared after NFKC, so two local names with the same
// NFKC form are one identifier, and a local name folding to another
// canonical name would be read as that name.
func checkFolding(name string, toCanon map[string]string) error {
	folded := make(map[string]string, len(toCanon))
	locals := make([]string, 0, len(toCanon))
	for local := range toCanon {
		locals = append(locals, local)
	}
	sort.Strings(locals)
	for _, local := range locals {
		f := norm.NFKC.String(local)
		if other, dup := folded[f]; dup {
			return fmt.Errorf("%w: %s: local names %q and %q are the same identifier after NFKC", ErrInvalidTable, name, other, local)
		}
		folded[f] = local
	}
	canonicals := make(map[string]bool, len(toCanon))
	for _, c := range toCanon {
		canonicals[c] = true
	}
	for _, local := range locals {
		f := norm.NFKC.String(local)
		if f != local && f != toCanon[local] && canonicals[f] {
			return fmt.Errorf("%w: %s: local name %q of %q folds to the canonical name %q", ErrInvalidTable, name, local, toCanon[local], f)
		}
	}
	return nil
}

// CanonicalToLocal returns a copy of the forward map.
func (t *Table) CanonicalToLocal() map[string]string {
	return maps.Clone(t.toLocal)
}

// LocalToCanonical returns a copy of the inverse map.
func (t *Table) LocalToCanonical() map[string]string {
	return maps.Clone(t.toCanon)
}

// Fingerprint is a digest of the table contents, stable across processes.
func (t *Table) Fingerprint() [sha256.Size]byte {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00", t.name)
	for _, e := range t.entries {
		fmt.Fprintf(h, "%d\x00%s\x00%s\x00", e.Class, e.Canonical, e.Local)
	}
	for _, c := range t.combined {
		fmt.Fprintf(h, "+%s\x00%s\x00%s\x00", c.Parts[0], c.Parts[1], c.Keyword)
	}
	var out [sha256.Size]byte
	copy(out[:], h.Sum(nil))
	return out
}
