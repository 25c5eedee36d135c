// Package testing provides test utilities for scrub.
package testing

import (
	"maps"

	"github.com/zoobzio/scrub"
)

// UserColumns mirrors a single-table users schema shared by User and Admin.
var UserColumns = []string{"id", "type", "first_name", "last_name", "created_at", "updated_at"}

// Hierarchy returns fresh User and Admin classes; Admin extends User and
// shares its columns.
func Hierarchy() (users, admins *scrub.Class) {
	users = scrub.NewClass("User", scrub.WithColumns(UserColumns...))
	admins = users.Extend("Admin")
	return users, admins
}

// Record is a map-backed model for exercising scrub against a fake storage layer.
type Record struct {
	class    *scrub.Class
	attrs    map[string]any
	virtuals map[string]any
	writes   int
}

// NewRecord returns an empty record of class c.
func NewRecord(c *scrub.Class) *Record {
	return &Record{
		class:    c,
		attrs:    make(map[string]any),
		virtuals: make(map[string]any),
	}
}

// WriteAttribute implements scrub.Writer. It stores value untouched.
func (r *Record) WriteAttribute(name string, value any) error {
	r.attrs[name] = value
	r.writes++
	return nil
}

// ScrubClass implements scrub.Classed.
func (r *Record) ScrubClass() *scrub.Class {
	return r.class
}

// Attribute returns the stored value of name.
func (r *Record) Attribute(name string) any {
	return r.attrs[name]
}

// Attributes returns a copy of all stored values.
func (r *Record) Attributes() map[string]any {
	return maps.Clone(r.attrs)
}

// Virtual returns the value of a virtual attribute.
func (r *Record) Virtual(name string) any {
	return r.virtuals[name]
}

// Writes returns how many times WriteAttribute was called.
func (r *Record) Writes() int {
	return r.writes
}

// VirtualField registers name on c as a virtual attribute kept on the Record.
func VirtualField(c *scrub.Class, name string) error {
	return scrub.Virtual(c, name, func(r *Record, value any) error {
		r.virtuals[name] = value
		return nil
	})
}

// Failing returns a scrubber that always fails with err.
func Failing(err error) scrub.Scrubber {
	return scrub.Func(func(any) (any, error) { return nil, err })
}
