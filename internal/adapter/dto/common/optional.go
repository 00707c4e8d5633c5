package common

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes an absent JSON field from an explicit null and from a value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON is only invoked for keys present in the document
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Ptr returns nil when the field was absent, a pointer to the zero value
// for an explicit null, and a pointer to the value otherwise.
func (o Optional[T]) Ptr() *T {
	if !o.Set {
		return nil
	}
	if o.Null {
		var zero T
		return &zero
	}
	v := o.Value
	return &v
}
