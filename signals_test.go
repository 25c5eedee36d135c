package scrub

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitDeclared(_ *testing.T) {
	// Should not panic
	emitDeclared(context.Background(), "User", 2)
}

func TestEmitSetterInstalled(_ *testing.T) {
	emitSetterInstalled(context.Background(), "User", "middle_name")
}

func TestEmitScrubbed(_ *testing.T) {
	emitScrubbed(context.Background(), "User", "first_name")
}

func TestEmitAssignStart(_ *testing.T) {
	emitAssignStart(context.Background(), "User", 3)
}

func TestEmitAssignComplete_Success(_ *testing.T) {
	emitAssignComplete(context.Background(), "User", 3, 100*time.Millisecond, nil)
}

func TestEmitAssignComplete_Error(_ *testing.T) {
	emitAssignComplete(context.Background(), "User", 3, 100*time.Millisecond, errors.New("test error"))
}

func TestEmitReceiveComplete_Success(_ *testing.T) {
	emitReceiveComplete(context.Background(), "application/json", 64, 100*time.Millisecond, nil)
}

func TestEmitReceiveComplete_Error(_ *testing.T) {
	emitReceiveComplete(context.Background(), "application/json", 0, 100*time.Millisecond, errors.New("test error"))
}
