// Package bson decodes BSON documents into attribute maps for scrub.Receive.
package bson

import (
	"github.com/zoobzio/scrub"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// bsonCodec implements scrub.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() scrub.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Decode reads a BSON document. Embedded documents become map[string]any,
// arrays []any, and generic binary values []byte.
func (c *bsonCodec) Decode(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var attrs map[string]any
	if err := bson.Unmarshal(data, &attrs); err != nil {
		return nil, err
	}
	if attrs == nil {
		return map[string]any{}, nil
	}
	for k, v := range attrs {
		attrs[k] = normalize(v)
	}
	return attrs, nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = normalize(e.Value)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case bson.A:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	case primitive.Binary:
		if t.Subtype == bson.TypeBinaryGeneric || t.Subtype == bson.TypeBinaryBinaryOld {
			return t.Data
		}
		return t
	default:
		return v
	}
}
