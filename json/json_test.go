package json

import (
	"encoding/json"
	"testing"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/json")
	}
}

func TestDecode_AttributeMap(t *testing.T) {
	c := New()

	attrs, err := c.Decode([]byte(`{"first_name":" Steve ","last_name":"Richert","tags":["a"," b "]}`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if attrs["first_name"] != " Steve " {
		t.Errorf("first_name = %v, want %q (codecs must not scrub)", attrs["first_name"], " Steve ")
	}
	if attrs["last_name"] != "Richert" {
		t.Errorf("last_name = %v, want %q", attrs["last_name"], "Richert")
	}
	if tags, ok := attrs["tags"].([]any); !ok || len(tags) != 2 {
		t.Errorf("tags = %#v, want []any of 2", attrs["tags"])
	}
}

func TestDecode_NumbersKeepDigits(t *testing.T) {
	c := New()

	attrs, err := c.Decode([]byte(`{"id":9007199254740993}`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	n, ok := attrs["id"].(json.Number)
	if !ok || n.String() != "9007199254740993" {
		t.Errorf("id = %#v, want json.Number with exact digits", attrs["id"])
	}
}

func TestDecode_Empty(t *testing.T) {
	c := New()

	for _, in := range []string{"", "  ", "null"} {
		attrs, err := c.Decode([]byte(in))
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", in, err)
		}
		if attrs == nil || len(attrs) != 0 {
			t.Errorf("Decode(%q) = %#v, want empty map", in, attrs)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	c := New()

	for _, in := range []string{"{invalid", `["not","an","object"]`, `{"a":1} {"b":2}`} {
		if _, err := c.Decode([]byte(in)); err == nil {
			t.Errorf("Decode(%q) should return error", in)
		}
	}
}
