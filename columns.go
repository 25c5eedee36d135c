package scrub

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register tags with sentinel
	sentinel.Tag("db")
	sentinel.Tag("scrub")
}

// modelField describes one exported struct field of a model type.
type modelField struct {
	name   string // Go field name
	column string // storage column name
	scrub  string // scrub tag value
	tagged bool   // true if the field carries a scrub tag
}

// StructColumns returns the stored column names of model struct type T.
//
// Each exported field maps to its `db` tag, or to the snake_case field name
// when untagged. Fields tagged `db:"-"` are skipped. Embedded structs are
// flattened.
func StructColumns[T any]() []string {
	fields := modelFields[T]()
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, f.column)
	}
	return cols
}

// modelFields scans T with sentinel and resolves column names and scrub tags.
func modelFields[T any]() []modelField {
	rt := indirect(reflect.TypeFor[T]())
	if rt.Kind() != reflect.Struct {
		return nil
	}

	var tags map[string]map[string]string
	if reflect.TypeFor[T]().Kind() == reflect.Struct {
		// sentinel scans struct types only
		meta := sentinel.Scan[T]()
		tags = make(map[string]map[string]string, len(meta.Fields))
		for _, field := range meta.Fields {
			tags[field.Name] = field.Tags
		}
	}

	return appendFields(nil, make(map[string]bool), structFields(rt, tags))
}

// structFields walks rt, flattening embedded structs. tags holds the
// sentinel-parsed tags of rt's own fields, keyed by field name.
func structFields(rt reflect.Type, tags map[string]map[string]string) []modelField {
	var out []modelField
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.Anonymous {
			if et := indirect(sf.Type); et.Kind() == reflect.Struct {
				out = append(out, structFields(et, nil)...)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if f, ok := newModelField(sf.Name, tags[sf.Name], sf.Tag); ok {
			out = append(out, f)
		}
	}
	return out
}

func newModelField(name string, tags map[string]string, st reflect.StructTag) (modelField, bool) {
	column, ok := tagValue(tags, st, "db")
	if ok {
		// db:"name,opts" keeps only the name
		column, _, _ = strings.Cut(column, ",")
	}
	if column == "-" {
		return modelField{}, false
	}
	if column == "" {
		column = snakeCase(name)
	}

	f := modelField{name: name, column: column}
	f.scrub, f.tagged = tagValue(tags, st, "scrub")
	return f, true
}

func appendFields(out []modelField, seen map[string]bool, fields []modelField) []modelField {
	for _, f := range fields {
		if seen[f.column] {
			continue
		}
		seen[f.column] = true
		out = append(out, f)
	}
	return out
}

// tagValue reports the key's value from sentinel's parsed tags, falling back
// to the raw struct tag. Presence is decided by the struct tag.
func tagValue(tags map[string]string, st reflect.StructTag, key string) (string, bool) {
	raw, ok := st.Lookup(key)
	if !ok {
		return "", false
	}
	if v, parsed := tags[key]; parsed {
		return v, true
	}
	return raw, true
}

func indirect(rt reflect.Type) reflect.Type {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	return rt
}

// snakeCase converts a Go identifier to snake_case: FirstName -> first_name,
// UserID -> user_id, HTTPServer -> http_server.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
