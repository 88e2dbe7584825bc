package serialization

import (
	"errors"
	"fmt"
)

// ErrMalformedFrame indicates bytes that do not contain a readable
// field-map at all. Wrapped with the underlying reader failure.
var ErrMalformedFrame = errors.New("malformed message frame")

// UnknownVariantTagError reports a discriminant tag with no registered
// decoder. Recoverable: it signals version skew between peers, not a
// corrupt stream.
type UnknownVariantTagError struct {
	Tag string
}

func (e UnknownVariantTagError) Error() string {
	return fmt.Sprintf("unknown variant tag: %q", e.Tag)
}

// MissingRequiredFieldError reports a field that is mandatory for the
// decoded variant but absent from the payload.
type MissingRequiredFieldError struct {
	Field   string
	Variant string
}

func (e MissingRequiredFieldError) Error() string {
	if e.Variant == "" {
		return fmt.Sprintf("missing required field %q", e.Field)
	}
	return fmt.Sprintf("missing required field %q for %s", e.Field, e.Variant)
}

// MalformedValueError reports a field whose wire encoding cannot be parsed
// into its target primitive type. Err holds the primitive failure and is
// reachable through errors.As.
type MalformedValueError struct {
	Field string
	Value string
	Err   error
}

func (e MalformedValueError) Error() string {
	return fmt.Sprintf("malformed value %q for field %q: %v", e.Value, e.Field, e.Err)
}

func (e MalformedValueError) Unwrap() error {
	return e.Err
}
