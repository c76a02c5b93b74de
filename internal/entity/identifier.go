package entity

import "strconv"

// Identifier is a reference-data lookup key decided once at request-parsing
// time: absent, a numeric primary key, or a human-readable name. Numeric
// input always means ID, never a minutes or ticker value.
type Identifier struct {
	raw     string
	id      int64
	numeric bool
}

func ParseIdentifier(raw string) Identifier {
	if raw == "" {
		return Identifier{}
	}

	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Identifier{raw: raw, id: id, numeric: true}
	}

	return Identifier{raw: raw}
}

// IsZero reports whether the input was never supplied.
func (i Identifier) IsZero() bool {
	return i.raw == ""
}

// Numeric returns the primary key when the input was numeric.
func (i Identifier) Numeric() (int64, bool) {
	return i.id, i.numeric
}

// Value returns the raw string form.
func (i Identifier) Value() string {
	return i.raw
}
