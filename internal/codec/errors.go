// Package codec converts between wire JSON and domain records.
//
// Decoding is tolerant: numeric fields may arrive as numbers or numeric
// strings, and timestamps in several formats. Encoding always produces a
// single canonical form.
package codec

import (
	"errors"
	"fmt"
)

// Decoding errors.
var (
	ErrMalformedField  = errors.New("malformed field")
	ErrInvalidEnum     = errors.New("invalid enum value")
	ErrMalformedRecord = errors.New("malformed record")
)

// FieldError reports which field failed to decode and why.
// It matches ErrMalformedField or ErrInvalidEnum through errors.Is.
type FieldError struct {
	Field string
	Value string // raw wire value, empty when absent
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("field %q: %v: %s", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func malformed(field, raw string) error {
	return &FieldError{Field: field, Value: raw, Err: ErrMalformedField}
}

// withIndex prefixes a field error with the position of the record in a list.
func withIndex(err error, index int) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{Field: fmt.Sprintf("[%d].%s", index, fe.Field), Value: fe.Value, Err: fe.Err}
	}
	return fmt.Errorf("record %d: %w", index, err)
}

// withPrefix nests a field error under a parent object key.
func withPrefix(err error, parent string) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{Field: parent + "." + fe.Field, Value: fe.Value, Err: fe.Err}
	}
	return err
}
