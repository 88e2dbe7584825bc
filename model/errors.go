package model

import "fmt"

// UnknownEnumValueError reports a wire string with no matching enum constant.
// It names the enum so version-skewed peers can be diagnosed per field.
type UnknownEnumValueError struct {
	Enum  string
	Value string
}

func (e UnknownEnumValueError) Error() string {
	return fmt.Sprintf("unknown %s value: %q", e.Enum, e.Value)
}

// MalformedIdentifierError reports an identifier string that does not match
// the expected shape for its kind.
type MalformedIdentifierError struct {
	Kind  string
	Value string
}

func (e MalformedIdentifierError) Error() string {
	return fmt.Sprintf("malformed %s: %q", e.Kind, e.Value)
}

// NegativeQuantityError reports a wire integer that cannot be a lot size.
type NegativeQuantityError struct {
	Value int64
}

func (e NegativeQuantityError) Error() string {
	return fmt.Sprintf("quantity cannot be negative: %d", e.Value)
}
