package docfrag

import "fmt"

// InvalidArgumentError reports an argument that violates a builder's
// contract: mismatched sequence lengths, an unrecognized named value, an
// out-of-range index.
type InvalidArgumentError struct {
	Arg     string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("invalid argument %q: %s", e.Arg, e.Message)
	}
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

// NewInvalidArgumentError creates an invalid argument error for the named
// argument.
func NewInvalidArgumentError(arg, message string) error {
	return &InvalidArgumentError{Arg: arg, Message: message}
}

// TypeMismatchError reports a value whose dynamic type is accepted nowhere in
// the API, e.g. a font-size specifier that is neither numeric nor a string.
type TypeMismatchError struct {
	Arg   string
	Value interface{}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch for %q: %T is neither numeric nor string", e.Arg, e.Value)
}

// NewTypeMismatchError creates a type mismatch error for the named argument.
func NewTypeMismatchError(arg string, value interface{}) error {
	return &TypeMismatchError{Arg: arg, Value: value}
}
