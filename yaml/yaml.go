// Package yaml decodes YAML documents into attribute maps for scrub.Receive.
package yaml

import (
	"fmt"

	"github.com/zoobzio/scrub"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements scrub.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() scrub.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Decode reads a YAML mapping. Nested mappings with non-string keys are
// re-keyed with their string form.
func (c *yamlCodec) Decode(data []byte) (map[string]any, error) {
	var attrs map[string]any
	if err := yaml.Unmarshal(data, &attrs); err != nil {
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
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}
