// Package patch builds sparse change sets from partially supplied input.
//
// A field of a PATCH body is in one of three states: absent (key not sent),
// explicitly null, or carrying a value. Optional keeps those states apart so a
// Rule can decide whether the field takes part in an update.
package patch

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional is a field that may be absent, null, or set.
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

// Null returns a present Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true, Null: true}
}

// Absent returns the zero Optional.
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present and non-null.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Present && !o.Null
}

// UnmarshalJSON is only invoked for keys that exist in the document,
// so an absent key leaves Present false.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON writes null for absent and null states.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present || o.Null {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}
