package scrub

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for scrub events.
var (
	SignalClassDeclared     = capitan.NewSignal("scrub.class.declared", "Scrubbers declared on a class")
	SignalSetterInstalled   = capitan.NewSignal("scrub.setter.installed", "Virtual setter wrapper installed")
	SignalAttributeScrubbed = capitan.NewSignal("scrub.attribute.scrubbed", "Attribute value scrubbed before write")
	SignalAssignStart       = capitan.NewSignal("scrub.assign.start", "Mass assignment beginning")
	SignalAssignComplete    = capitan.NewSignal("scrub.assign.complete", "Mass assignment finished")
	SignalReceiveComplete   = capitan.NewSignal("scrub.receive.complete", "Payload received and assigned")
)

// Keys for typed event data.
var (
	KeyClass          = capitan.NewStringKey("class")
	KeyAttribute      = capitan.NewStringKey("attribute")
	KeyAttributeCount = capitan.NewIntKey("attribute_count")
	KeyContentType    = capitan.NewStringKey("content_type")
	KeySize           = capitan.NewIntKey("size")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
)

// emitDeclared emits an event when scrubbers are declared on a class.
func emitDeclared(ctx context.Context, class string, count int) {
	capitan.Emit(ctx, SignalClassDeclared,
		KeyClass.Field(class),
		KeyAttributeCount.Field(count),
	)
}

// emitSetterInstalled emits an event when a virtual attribute gets its wrapper.
func emitSetterInstalled(ctx context.Context, class, attribute string) {
	capitan.Emit(ctx, SignalSetterInstalled,
		KeyClass.Field(class),
		KeyAttribute.Field(attribute),
	)
}

// emitScrubbed emits an event when a value is transformed.
func emitScrubbed(ctx context.Context, class, attribute string) {
	capitan.Emit(ctx, SignalAttributeScrubbed,
		KeyClass.Field(class),
		KeyAttribute.Field(attribute),
	)
}

// emitAssignStart emits an event when mass assignment begins.
func emitAssignStart(ctx context.Context, class string, count int) {
	capitan.Emit(ctx, SignalAssignStart,
		KeyClass.Field(class),
		KeyAttributeCount.Field(count),
	)
}

// emitAssignComplete emits an event when mass assignment finishes.
func emitAssignComplete(ctx context.Context, class string, count int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyClass.Field(class),
		KeyAttributeCount.Field(count),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalAssignComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalAssignComplete, fields...)
	}
}

// emitReceiveComplete emits an event when a payload has been received.
func emitReceiveComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReceiveComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalReceiveComplete, fields...)
	}
}
