// Package msgpack decodes MessagePack payloads into attribute maps for scrub.Receive.
package msgpack

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/scrub"
)

// errNotMap reports a payload whose top-level value is not a map.
var errNotMap = errors.New("payload is not a map")

// msgpackCodec implements scrub.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() scrub.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Decode reads a MessagePack map. Maps are decoded untyped so integer and
// binary keys are accepted; every key is re-keyed with its string form.
func (c *msgpackCodec) Decode(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetMapDecoder(func(d *msgpack.Decoder) (any, error) {
		return d.DecodeUntypedMap()
	})

	v, err := dec.DecodeInterface()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return map[string]any{}, nil
	}
	attrs, ok := normalize(v).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %T", errNotMap, v)
	}
	return attrs, nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if b, ok := k.([]byte); ok {
				k = string(b)
			}
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}
