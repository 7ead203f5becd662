package game

import "time"

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	limit int
	next  time.Time
}

// NewFPSLimiter creates a limiter for limit frames per second. A limit of
// zero or less disables it.
func NewFPSLimiter(limit int) *FPSLimiter {
	return &FPSLimiter{limit: limit}
}

// Wait blocks until the next frame is due.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait() {
	if f == nil || f.limit <= 0 {
		return
	}
	target := time.Second / time.Duration(f.limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
	}

	// resync after a hitch instead of racing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
