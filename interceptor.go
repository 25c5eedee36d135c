package scrub

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"
)

// Writer is the host model's generic write primitive for stored attributes.
type Writer interface {
	// WriteAttribute stores value under name without any scrubbing.
	WriteAttribute(name string, value any) error
}

// Classed lets a model report its runtime class.
//
// A model type embedding another model must define its own ScrubClass,
// otherwise it reports the embedded model's class.
type Classed interface {
	ScrubClass() *Class
}

// ClassOf returns the class of m: ScrubClass when m implements Classed,
// otherwise the class registered for m's dynamic type. It returns nil when
// neither applies.
func ClassOf(m any) *Class {
	if c, ok := m.(Classed); ok {
		return c.ScrubClass()
	}
	return lookupType(m)
}

// Write scrubs value with the scrubber the runtime class of m holds for name,
// then passes the result to m.WriteAttribute. Without a class or scrubber the
// value is written unchanged.
func Write(m Writer, name string, value any) error {
	c := ClassOf(m)
	if c == nil {
		return m.WriteAttribute(name, value)
	}
	return c.write(m, name, value)
}

func (c *Class) write(m Writer, name string, value any) error {
	value, err := c.apply(name, value)
	if err != nil {
		return err
	}
	return m.WriteAttribute(name, value)
}

// Set assigns value to the attribute name on m.
//
// Virtual attributes go to their registered setter, scrubbed first when a
// scrubber for name is visible to the runtime class. Stored attributes go through Write. Any
// other name yields an *AttributeError wrapping ErrUnknownAttribute.
func Set(m Writer, name string, value any) error {
	c := ClassOf(m)
	if c == nil {
		return m.WriteAttribute(name, value)
	}

	if set, ok := c.setter(name); ok {
		if _, declared := c.Lookup(name); declared {
			c.install(name)
		}
		scrubbed, err := c.apply(name, value)
		if err != nil {
			return err
		}
		return set(m, scrubbed)
	}

	if !c.IsStored(name) {
		return newAttributeError(ErrUnknownAttribute, c.name, name)
	}
	return c.write(m, name, value)
}

// Assign sets every attribute in attrs on m, in name order, stopping at the
// first error.
func Assign(ctx context.Context, m Writer, attrs map[string]any) error {
	className := ""
	if c := ClassOf(m); c != nil {
		className = c.name
	}

	start := time.Now()
	emitAssignStart(ctx, className, len(attrs))

	var retErr error
	defer func() {
		emitAssignComplete(ctx, className, len(attrs), time.Since(start), retErr)
	}()

	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		if err := Set(m, name, attrs[name]); err != nil {
			retErr = fmt.Errorf("assign %s: %w", name, err)
			return retErr
		}
	}
	return nil
}

// Receive decodes data with codec into an attribute map and assigns it to m.
// Use for payloads coming from external sources (API requests, events).
func Receive(ctx context.Context, m Writer, codec Codec, data []byte) error {
	start := time.Now()

	var retErr error
	defer func() {
		emitReceiveComplete(ctx, codec.ContentType(), len(data), time.Since(start), retErr)
	}()

	attrs, err := codec.Decode(data)
	if err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return retErr
	}

	retErr = Assign(ctx, m, attrs)
	return retErr
}
