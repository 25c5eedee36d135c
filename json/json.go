// Package json decodes JSON payloads into attribute maps for scrub.Receive.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/zoobzio/scrub"
)

// errTrailingData reports content after the top-level object.
var errTrailingData = errors.New("trailing data after object")

// jsonCodec implements scrub.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
//
// Numbers decode as json.Number so integer ids keep their exact digits and
// pass through string scrubbers untouched.
func New() scrub.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Decode reads a single JSON object. A bare null yields an empty map.
func (c *jsonCodec) Decode(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var attrs map[string]any
	if err := dec.Decode(&attrs); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	if attrs == nil {
		attrs = map[string]any{}
	}
	return attrs, nil
}
