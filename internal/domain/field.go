package domain

import (
	"bytes"
	"encoding/json"
)

// Field is a patch slot for a nullable attribute.
// Set reports whether the caller supplied the attribute at all; a nil Value with Set clears it.
type Field[T any] struct {
	Set   bool
	Value *T
}

// Value returns a Field that sets the attribute to v
func Value[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

// Null returns a Field that clears the attribute
func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

// UnmarshalJSON marks the field as supplied; a JSON null clears it
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

func (f Field[T]) assign(dst **T) {
	if !f.Set {
		return
	}
	*dst = clonePtr(f.Value)
}
