package scrub

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnknownAttribute indicates Set was called with a name that is neither
	// a stored column nor a registered virtual attribute.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrStoredAttribute indicates a virtual setter was registered for a name
	// that is already a stored column.
	ErrStoredAttribute = errors.New("attribute is stored")

	// ErrReceiver indicates a virtual setter was called with a model of the wrong type.
	ErrReceiver = errors.New("receiver type mismatch")

	// ErrInvalidTag indicates a scrub struct tag names an unknown scrubber.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrNoColumns indicates a column source found no columns for a table.
	ErrNoColumns = errors.New("no columns")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// AttributeError reports a write against an attribute the class cannot route.
type AttributeError struct {
	Err       error  // Underlying sentinel error (ErrUnknownAttribute, ErrStoredAttribute, ErrReceiver)
	Class     string // Class name, empty when the receiver has no class
	Attribute string // Attribute name that triggered the error
}

func (e *AttributeError) Error() string {
	if e.Class != "" {
		return fmt.Sprintf("%s %q on %s", e.Err.Error(), e.Attribute, e.Class)
	}
	return fmt.Sprintf("%s %q", e.Err.Error(), e.Attribute)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}

// ConfigError represents a declaration error found while reading struct tags.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrInvalidTag)
	Class string // Class being declared
	Field string // Struct field carrying the tag
	Value string // Offending tag value
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s %q (field %s of %s)", e.Err.Error(), e.Value, e.Field, e.Class)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s of %s)", e.Err.Error(), e.Field, e.Class)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Class)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents an unmarshal error during Receive.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func newAttributeError(sentinel error, class, attribute string) error {
	return &AttributeError{
		Err:       sentinel,
		Class:     class,
		Attribute: attribute,
	}
}

func newConfigError(sentinel error, class, field, value string) error {
	return &ConfigError{
		Err:   sentinel,
		Class: class,
		Field: field,
		Value: value,
	}
}

func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
