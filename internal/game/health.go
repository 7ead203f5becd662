package game

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
)

// Health is the render goroutine's liveness flag. The zero value is
// healthy.
type Health struct {
	failed atomic.Bool
}

// Healthy reports whether the render goroutine is still running normally.
func (h *Health) Healthy() bool {
	return !h.failed.Load()
}

// MarkFailed flips the flag. It never flips back.
func (h *Health) MarkFailed() {
	h.failed.Store(true)
}

// PanicError carries a panic recovered from the render goroutine.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Guard runs fn and turns a panic into a *PanicError.
func Guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}

// Watchdog waits for the render goroutine to finish. A failure is logged,
// marks health as failed and calls wake so the event loop notices. The
// result is returned unchanged.
func Watchdog(done <-chan error, health *Health, logger *slog.Logger, wake func()) error {
	err, ok := <-done
	if !ok || err == nil {
		return nil
	}

	attrs := []any{"err", err}
	var pe *PanicError
	if errors.As(err, &pe) {
		attrs = append(attrs, "stack", string(pe.Stack))
	}
	logger.Error("render goroutine crashed", attrs...)

	health.MarkFailed()
	if wake != nil {
		wake()
	}
	return err
}
