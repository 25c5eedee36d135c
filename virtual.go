package scrub

import (
	"context"
	"reflect"
	"unsafe"
)

// Setter writes a virtual attribute on a model.
type Setter func(m any, value any) error

// Virtual registers set as the setter for the virtual attribute name on c.
// Virtual attributes are model state the storage layer does not know about;
// they are written through set rather than WriteAttribute.
//
// Subclasses inherit the setter. A subclass model type that embeds M (by
// value or pointer, at any depth) is accepted: set receives the embedded
// model. Writes through the setter are scrubbed whenever a scrubber for name
// is visible to the model's runtime class.
func Virtual[M any](c *Class, name string, set func(M, any) error) error {
	if cols := c.columnSet(); cols != nil {
		if _, ok := cols[name]; ok {
			return newAttributeError(ErrStoredAttribute, c.name, name)
		}
	}

	setter := func(m any, value any) error {
		typed, ok := m.(M)
		if !ok {
			typed, ok = embedded[M](m)
		}
		if !ok {
			return newAttributeError(ErrReceiver, c.name, name)
		}
		return set(typed, value)
	}

	c.setterMu.Lock()
	c.setters[name] = setter
	c.setterMu.Unlock()

	if _, ok := c.Lookup(name); ok {
		c.install(name)
	}
	return nil
}

// setter finds the virtual setter for name, walking up from c.
func (c *Class) setter(name string) (Setter, bool) {
	for k := c; k != nil; k = k.parent {
		k.setterMu.RLock()
		set, ok := k.setters[name]
		k.setterMu.RUnlock()
		if ok {
			return set, true
		}
	}
	return nil, false
}

// embedded finds the model of type M embedded in m, so a setter declared for
// a parent model type serves subclass models built by embedding.
func embedded[M any](m any) (M, bool) {
	var zero M
	want := reflect.TypeFor[M]()

	v := reflect.ValueOf(m)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return zero, false
	}
	found, ok := findEmbedded(v.Elem(), want)
	if !ok {
		return zero, false
	}
	typed, ok := found.Interface().(M)
	return typed, ok
}

// findEmbedded walks the embedded fields of the addressable struct v
// breadth first. It returns a pointer to the embedded struct when want is a
// pointer type, or a copy of it otherwise.
func findEmbedded(v reflect.Value, want reflect.Type) (reflect.Value, bool) {
	queue := []reflect.Value{v}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if s.Kind() != reflect.Struct {
			continue
		}
		for i := 0; i < s.NumField(); i++ {
			if !s.Type().Field(i).Anonymous {
				continue
			}
			f := s.Field(i)
			if f.Kind() == reflect.Pointer {
				if f.IsNil() {
					continue
				}
				f = f.Elem()
			}
			if !f.CanAddr() {
				continue
			}
			// unexported embedded types are readable only through their address
			ptr := reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr()))
			switch want {
			case ptr.Type():
				return ptr, true
			case f.Type():
				return ptr.Elem(), true
			}
			queue = append(queue, ptr.Elem())
		}
	}
	return reflect.Value{}, false
}

// hasWrapper reports whether c or an ancestor installed a wrapper for name.
func (c *Class) hasWrapper(name string) bool {
	for k := c; k != nil; k = k.parent {
		k.setterMu.RLock()
		ok := k.wrapped[name]
		k.setterMu.RUnlock()
		if ok {
			return true
		}
	}
	return false
}

// install marks the scrubbing wrapper for name as installed and emits
// SignalSetterInstalled. It is a no-op when c or an ancestor already has one.
func (c *Class) install(name string) {
	if c.hasWrapper(name) {
		return
	}
	c.setterMu.Lock()
	if c.wrapped[name] {
		c.setterMu.Unlock()
		return
	}
	c.wrapped[name] = true
	c.setterMu.Unlock()

	emitSetterInstalled(context.Background(), c.name, name)
}
