package scrub

import (
	"context"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
)

// Class holds the scrubbers declared for one model class.
//
// A class created with Extend sees its parent's scrubbers live until its own
// first declaration. At that point the visible table is copied and later
// edits on either side stay on their own side.
//
// Declarations are serialized per class; lookups are lock-free.
type Class struct {
	name   string
	parent *Class

	// Stored column names; nil inherits the parent's.
	columns map[string]struct{}

	// Default scrubber for Scrub; nil inherits the parent's.
	fallback Scrubber

	// Own snapshot, nil until the first declaration on this class.
	table atomic.Pointer[table]
	mu    sync.Mutex

	// Virtual attribute setters, and the names whose wrapper install was announced.
	setterMu sync.RWMutex
	setters  map[string]Setter
	wrapped  map[string]bool
}

// table is an immutable attribute-to-scrubber snapshot.
type table struct {
	entries map[string]Scrubber
}

// Option configures a Class.
type Option func(*Class)

// WithColumns sets the attribute names backed by real storage.
// Without it a class uses its parent's columns; a root class with no
// columns treats every attribute without a virtual setter as stored.
func WithColumns(names ...string) Option {
	return func(c *Class) {
		c.columns = make(map[string]struct{}, len(names))
		for _, n := range names {
			c.columns[n] = struct{}{}
		}
	}
}

// WithDefault sets the scrubber used by Scrub when none is given.
// Subclasses inherit it unless they set their own.
func WithDefault(s Scrubber) Option {
	return func(c *Class) {
		c.fallback = s
	}
}

// WithParent makes the class a subclass of parent.
func WithParent(parent *Class) Option {
	return func(c *Class) {
		c.parent = parent
	}
}

// NewClass creates a class named name.
func NewClass(name string, opts ...Option) *Class {
	c := &Class{
		name:    name,
		setters: make(map[string]Setter),
		wrapped: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Extend creates a subclass of c.
func (c *Class) Extend(name string, opts ...Option) *Class {
	return NewClass(name, append([]Option{WithParent(c)}, opts...)...)
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Parent returns the superclass, or nil for a root class.
func (c *Class) Parent() *Class { return c.parent }

// Scrub declares the default scrubber for each of names.
// Returns the class for chaining.
func (c *Class) Scrub(names ...string) *Class {
	return c.ScrubWith(nil, names...)
}

// ScrubWith declares s for each of names. A nil s means the class default.
// All names share the same scrubber. Re-declaring a name replaces this
// class's entry only; ancestors and siblings are never touched.
// With no names nothing is declared. Returns the class for chaining.
func (c *Class) ScrubWith(s Scrubber, names ...string) *Class {
	if len(names) == 0 {
		return c
	}
	if s == nil {
		s = c.defaultScrubber()
	}

	c.mu.Lock()
	next := make(map[string]Scrubber, len(names))
	maps.Copy(next, c.entries())
	for _, n := range names {
		next[n] = s
	}
	c.table.Store(&table{entries: next})
	c.mu.Unlock()

	emitDeclared(context.Background(), c.name, len(names))

	for _, n := range names {
		if !c.IsStored(n) {
			c.install(n)
		}
	}
	return c
}

// Forget removes this class's own entries for names.
// Entries visible through an ancestor are unaffected once the class has
// its own table; this is meant for test teardown.
func (c *Class) Forget(names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := maps.Clone(c.entries())
	if next == nil {
		next = make(map[string]Scrubber)
	}
	for _, n := range names {
		delete(next, n)
	}
	c.table.Store(&table{entries: next})
}

// Reset drops the class's own table so it delegates to its parent again.
// Virtual setters keep working and pass values through when no scrubber
// resolves.
func (c *Class) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table.Store(nil)
}

// Lookup resolves the scrubber visible to c for name.
func (c *Class) Lookup(name string) (Scrubber, bool) {
	s, ok := c.entries()[name]
	return s, ok
}

// Attributes returns the sorted names with a visible scrubber.
func (c *Class) Attributes() []string {
	return slices.Sorted(maps.Keys(c.entries()))
}

// entries returns the nearest table walking up from c.
func (c *Class) entries() map[string]Scrubber {
	for k := c; k != nil; k = k.parent {
		if t := k.table.Load(); t != nil {
			return t.entries
		}
	}
	return nil
}

func (c *Class) defaultScrubber() Scrubber {
	for k := c; k != nil; k = k.parent {
		if k.fallback != nil {
			return k.fallback
		}
	}
	return DefaultScrubber()
}

// Columns returns the sorted stored column names, or nil when none are known.
func (c *Class) Columns() []string {
	cols := c.columnSet()
	if cols == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(cols))
}

func (c *Class) columnSet() map[string]struct{} {
	for k := c; k != nil; k = k.parent {
		if k.columns != nil {
			return k.columns
		}
	}
	return nil
}

// IsStored reports whether name is written through the generic storage path.
// With no known columns, any name without a virtual setter counts as stored.
func (c *Class) IsStored(name string) bool {
	if cols := c.columnSet(); cols != nil {
		_, ok := cols[name]
		return ok
	}
	_, ok := c.setter(name)
	return !ok
}

// Intercepts reports whether writes to name pass through scrubbing.
// Stored attributes are always intercepted; virtual ones once a scrubber
// for name is visible to c.
func (c *Class) Intercepts(name string) bool {
	if c.IsStored(name) {
		return true
	}
	_, ok := c.Lookup(name)
	return ok
}

// apply scrubs value for name using the scrubber visible to c.
// Errors from the scrubber are returned unchanged.
func (c *Class) apply(name string, value any) (any, error) {
	s, ok := c.Lookup(name)
	if !ok {
		return value, nil
	}
	out, err := s.Scrub(dup(value))
	if err != nil {
		return nil, err
	}
	emitScrubbed(context.Background(), c.name, name)
	return out, nil
}
