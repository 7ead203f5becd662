package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFPSLimiterDisabled(t *testing.T) {
	NewFPSLimiter(0).Wait()
	NewFPSLimiter(-5).Wait()
	var nilLimiter *FPSLimiter
	nilLimiter.Wait()
}

func TestFPSLimiterPacesFrames(t *testing.T) {
	f := NewFPSLimiter(100)
	start := time.Now()
	for i := 0; i < 5; i++ {
		f.Wait()
	}
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
}

func TestFPSLimiterResyncsAfterHitch(t *testing.T) {
	f := NewFPSLimiter(100)
	f.Wait()
	time.Sleep(50 * time.Millisecond)
	f.Wait()

	// a late frame schedules the next one a full period out
	assert.Greater(t, time.Until(f.next), 5*time.Millisecond)
}
