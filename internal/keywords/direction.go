package keywords

// Direction selects which side of the table is the input spelling.
type Direction uint8

const (
	// ToLocal rewrites canonical Python names into local spellings.
	ToLocal Direction = iota
	// ToCanonical rewrites local spellings back into Python.
	ToCanonical
)

func (d Direction) String() string {
	switch d {
	case ToLocal:
		return "to-local"
	case ToCanonical:
		return "to-canonical"
	}
	return "unknown"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == ToLocal {
		return ToCanonical
	}
	return ToLocal
}

// ParseDirection accepts "local"/"to-local" and "canonical"/"to-canonical".
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "local", "to-local", "pi":
		return ToLocal, true
	case "canonical", "to-canonical", "py":
		return ToCanonical, true
	}
	return 0, false
}

// Class groups table entries.
type Class uint8

const (
	ClassKeyword Class = iota
	ClassBuiltin
	ClassDunder
)

func (c Class) String() string {
	switch c {
	case ClassKeyword:
		return "keyword"
	case ClassBuiltin:
		return "builtin"
	case ClassDunder:
		return "dunder"
	}
	return "unknown"
}

// Classes lists every class in table order.
func Classes() []Class { return []Class{ClassKeyword, ClassBuiltin, ClassDunder} }
