package trip

import (
	"errors"
	"fmt"
)

// Sentinel errors for normalization failures.
var (
	ErrMissingField = errors.New("missing required field")
	ErrOutOfRange   = errors.New("value out of range")
)

// MissingFieldError reports a required field that is blank or unusable.
type MissingFieldError struct {
	Field Field
	Value string
}

func (e *MissingFieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", ErrMissingField, e.Field.Label())
	}
	return fmt.Sprintf("%s: %s (value=%q)", ErrMissingField, e.Field.Label(), e.Value)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// RangeError reports a value (usually derived) outside its domain.
type RangeError struct {
	Field  Field
	Value  string
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s %s (value=%q)", ErrOutOfRange, e.Field.Label(), e.Reason, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func missing(f Field, value string) error {
	return &MissingFieldError{Field: f, Value: value}
}

func outOfRange(f Field, value, reason string) error {
	return &RangeError{Field: f, Value: value, Reason: reason}
}
