package scrub

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]*Class)
	registryMu sync.RWMutex
)

// Register associates c with model type T and *T, so models that do not
// implement Classed still resolve their class in Write and Set.
func Register[T any](c *Class) {
	typ := reflect.TypeFor[T]()

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[typ] = c
	if typ.Kind() != reflect.Pointer {
		registry[reflect.PointerTo(typ)] = c
	}
}

// ClassFor returns the class registered for T.
func ClassFor[T any]() (*Class, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[reflect.TypeFor[T]()]
	return c, ok
}

// Unregister removes the class registered for T and *T.
func Unregister[T any]() {
	typ := reflect.TypeFor[T]()

	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, typ)
	if typ.Kind() != reflect.Pointer {
		delete(registry, reflect.PointerTo(typ))
	}
}

// Reset clears the type registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]*Class)
}

// For builds a class for model type T and registers it.
//
// Stored columns come from StructColumns[T] unless opts set WithColumns;
// fields tagged `scrub:"..."` are declared with the named scrubber.
func For[T any](name string, opts ...Option) (*Class, error) {
	base := []Option{WithColumns(StructColumns[T]()...)}
	c := NewClass(name, append(base, opts...)...)

	if err := DeclareTags[T](c); err != nil {
		return nil, err
	}

	Register[T](c)
	return c, nil
}

func lookupType(m any) *Class {
	if m == nil {
		return nil
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[reflect.TypeOf(m)]
}
