package gridcrawl

import "strings"

// Field holds an extracted value that may be missing. Extractors return
// Fields so that "pattern not found" is an ordinary value rather than an
// error; conversion to the Sentinel string happens only when a record is
// assembled for serialization.
type Field struct {
	value   string
	present bool
}

// NewField returns a present Field holding the trimmed value.
// A value that trims to the empty string is missing.
func NewField(value string) Field {
	v := strings.TrimSpace(value)
	if v == "" {
		return Field{}
	}
	return Field{value: v, present: true}
}

// MissingField returns a Field with no value.
func MissingField() Field {
	return Field{}
}

// Present reports whether the field holds a value.
func (f Field) Present() bool { return f.present }

// Value returns the held value, or the empty string if missing.
func (f Field) Value() string { return f.value }

// OrSentinel returns the held value, or Sentinel if missing.
// This is the serialization-boundary conversion.
func (f Field) OrSentinel() string {
	if !f.present {
		return Sentinel
	}
	return f.value
}
