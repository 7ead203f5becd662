// Package game runs the frame loop on the render goroutine and watches it
// from the outside.
package game

import (
	"context"
	"log/slog"
	"time"

	"mini-scene/internal/animation"
	"mini-scene/internal/assets"
	"mini-scene/internal/camera"
	"mini-scene/internal/config"
	"mini-scene/internal/input"
	"mini-scene/internal/profiling"
	"mini-scene/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Presenter shows the finished frame.
type Presenter interface {
	Present()
}

// Renderer draws frames for the loop.
type Renderer interface {
	scene.Drawer
	BeginFrame(elapsed float32)
	ReloadShaders() error
	CaptureFrame(now time.Time) (string, error)
}

// InputSource hands the loop a snapshot of the input state without
// blocking. *input.Manager implements it.
type InputSource interface {
	TrySnapshot() (input.Snapshot, bool)
}

// SlowFrame is the processing time above which a frame is logged at debug
// level with its slowest stages.
const SlowFrame = 16 * time.Millisecond

// Loop advances and draws the scene once per tick.
type Loop struct {
	Graph      *scene.Graph
	Root       scene.NodeID
	Animations animation.Table
	Camera     *camera.FreeFly
	Projection mgl32.Mat4
	// translation applied after the camera transform
	Offset mgl32.Vec3

	Input     InputSource
	Renderer  Renderer
	Presenter Presenter
	Logger    *slog.Logger
	Limiter   *FPSLimiter
	// file change notifications that trigger a shader reload
	Reloads <-chan string

	now     func() time.Time
	start   time.Time
	last    time.Time
	fps     profiling.Counter
	capture bool
}

// Run ticks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	if l.now == nil {
		l.now = time.Now
	}
	if l.fps.Interval == 0 {
		l.fps.Interval = time.Second
	}
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		l.tick(l.now())
		l.Limiter.Wait()
	}
}

func (l *Loop) tick(now time.Time) {
	profiling.ResetFrame()
	begin := time.Now()

	if l.start.IsZero() {
		l.start, l.last = now, now
	}
	elapsed := float32(now.Sub(l.start).Seconds())
	dt := float32(now.Sub(l.last).Seconds())
	l.last = now

	l.handleInput(dt)
	l.reloadShaders()

	stop := profiling.Track("animation.Apply")
	l.Animations.Apply(l.Graph, elapsed)
	stop()

	stop = profiling.Track("scene.Propagate")
	l.Graph.Propagate(l.Root, mgl32.Ident4())
	stop()

	vp := l.Camera.ViewProjection(l.Projection, l.Offset)

	stop = profiling.Track("scene.Draw")
	l.Renderer.BeginFrame(elapsed)
	calls := l.Graph.Draw(l.Root, vp, l.Renderer)
	stop()

	if l.capture {
		l.capture = false
		l.captureFrame(now)
	}

	stop = profiling.Track("present")
	l.Presenter.Present()
	stop()

	l.report(now, calls, time.Since(begin))
}

func (l *Loop) handleInput(dt float32) {
	defer profiling.Track("input")()

	snap, ok := l.Input.TrySnapshot()
	if !ok {
		return
	}
	for _, act := range snap.Held {
		l.Camera.Apply(act, dt)
	}
	l.Camera.Look(snap.MouseDX, snap.MouseDY)

	if input.Has(snap.JustPressed, input.ActionToggleWireframe) {
		on := config.ToggleWireframeMode()
		l.Logger.Info("wireframe", "enabled", on)
	}
	if input.Has(snap.JustPressed, input.ActionCapture) {
		l.capture = true
	}
}

func (l *Loop) reloadShaders() {
	if l.Reloads == nil || !assets.Pending(l.Reloads) {
		return
	}
	defer profiling.Track("shader.Reload")()
	if err := l.Renderer.ReloadShaders(); err != nil {
		l.Logger.Warn("shader reload failed, keeping previous program", "err", err)
		return
	}
	l.Logger.Info("shaders reloaded")
}

func (l *Loop) captureFrame(now time.Time) {
	defer profiling.Track("capture")()
	path, err := l.Renderer.CaptureFrame(now)
	if err != nil {
		l.Logger.Warn("frame capture failed", "err", err)
		return
	}
	l.Logger.Info("frame captured", "path", path)
}

func (l *Loop) report(now time.Time, calls int, took time.Duration) {
	if took > SlowFrame {
		l.Logger.Debug("slow frame",
			"took", took,
			"scene", profiling.SumWithPrefix("scene."),
			"top", profiling.TopN(5))
	}
	if fps, ok := l.fps.Frame(now); ok {
		l.Logger.Info("frame stats",
			"fps", int(fps+0.5),
			"draw_calls", calls,
			"top", profiling.TopN(3))
	}
}
