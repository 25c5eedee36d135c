package scrub

import (
	"bytes"
	"strings"
)

// Scrubber cleans an incoming attribute value before it is written.
type Scrubber interface {
	// Scrub returns the value to store in place of value.
	// The value is a duplicate of the caller's, so mutations are safe.
	Scrub(value any) (any, error)
}

// Func adapts a one-argument function to Scrubber.
type Func func(value any) (any, error)

// Scrub calls f(value).
func (f Func) Scrub(value any) (any, error) {
	return f(value)
}

// Const adapts a zero-argument function to Scrubber.
// The incoming value is discarded and the function's result is stored unconditionally.
type Const func() (any, error)

// Scrub calls f() and ignores value.
func (f Const) Scrub(_ any) (any, error) {
	return f()
}

// defaultScrubber strips strings and turns blank ones into nil.
type defaultScrubber struct{}

// DefaultScrubber returns the built-in scrubber used when a declaration
// supplies none: strings are trimmed and blank strings become nil.
// Values of any other type are returned unchanged.
func DefaultScrubber() Scrubber {
	return defaultScrubber{}
}

func (defaultScrubber) Scrub(value any) (any, error) {
	switch v := value.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		return s, nil
	case []byte:
		b := bytes.TrimSpace(v)
		if len(b) == 0 {
			return nil, nil
		}
		return bytes.Clone(b), nil
	case *string:
		if v == nil {
			return nil, nil
		}
		s := strings.TrimSpace(*v)
		if s == "" {
			return nil, nil
		}
		return &s, nil
	default:
		return value, nil
	}
}

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// dup returns a copy of value that a scrubber may mutate without touching
// the caller's reference. Strings are immutable and returned as is; slices
// and maps are copied one level deep.
func dup(value any) any {
	switch v := value.(type) {
	case nil, string:
		return v
	case []byte:
		if v == nil {
			return v
		}
		return bytes.Clone(v)
	case []string:
		if v == nil {
			return v
		}
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		if v == nil {
			return v
		}
		out := make([]any, len(v))
		copy(out, v)
		return out
	case map[string]any:
		if v == nil {
			return v
		}
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = val
		}
		return out
	case map[string]string:
		if v == nil {
			return v
		}
		out := make(map[string]string, len(v))
		for k, val := range v {
			out[k] = val
		}
		return out
	default:
		return value
	}
}
