package optional

import "encoding/json"

// Field distinguishes "not supplied" from "supplied". For nullable columns
// use a pointer T: Set with a nil Value means "set to NULL".
type Field[T any] struct {
	Set   bool
	Value T
}

// Of returns a supplied field.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a supplied-as-null field for a nullable column.
func Null[T any]() Field[*T] {
	return Field[*T]{Set: true}
}

// UnmarshalJSON only runs when the key is present, which is exactly the
// "supplied" signal.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON writes the value; unset fields should be tagged omitzero.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

// IsZero lets encoding/json omit unset fields with `omitzero`.
func (f Field[T]) IsZero() bool {
	return !f.Set
}
