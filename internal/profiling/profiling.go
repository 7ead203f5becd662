// Package profiling is a lightweight per-frame CPU profiler. Stages of the
// frame loop record their durations by name; the loop reads the totals to
// report slow frames.
package profiling

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
)

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("scene.Propagate")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of the current frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return maps.Clone(frameTotals)
}

// SumWithPrefix adds up every total whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n slowest stages of the current frame, slowest first.
// Example: "scene.Draw:4.2ms, glfw.SwapBuffers:2.1ms"
func TopN(n int) string {
	ss := Snapshot()
	names := slices.Collect(maps.Keys(ss))
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(ss[b], ss[a]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	if n > len(names) {
		n = len(names)
	}
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", name, float64(ss[name].Microseconds())/1000.0))
	}
	return strings.Join(parts, ", ")
}

// Counter counts frames and reports the rate once per interval.
type Counter struct {
	Interval time.Duration

	frames int
	since  time.Time
}

// Frame records one frame at now. When an interval has passed it returns
// the frames per second over that interval and true.
func (c *Counter) Frame(now time.Time) (float64, bool) {
	if c.since.IsZero() {
		c.since = now
	}
	c.frames++
	elapsed := now.Sub(c.since)
	if elapsed < c.Interval || elapsed <= 0 {
		return 0, false
	}
	fps := float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.since = now
	return fps, true
}
