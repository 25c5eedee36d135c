package scrub

// Codec decodes incoming payloads into attribute maps for Receive.
type Codec interface {
	// ContentType returns the MIME type this codec reads (e.g., "application/json").
	ContentType() string

	// Decode parses data into an attribute map. Nested documents come back
	// as map[string]any and arrays as []any, whatever the wire format, so
	// scrubbers see the same shapes from every codec. Empty input yields an
	// empty map.
	Decode(data []byte) (map[string]any, error)
}
