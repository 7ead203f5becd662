package game

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"mini-scene/internal/animation"
	"mini-scene/internal/camera"
	"mini-scene/internal/config"
	"mini-scene/internal/input"
	"mini-scene/internal/profiling"
	"mini-scene/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events    []string
	draws     int
	elapsed   []float32
	reloadErr error
	reloads   int
	captures  int
}

func (r *recorder) BeginFrame(elapsed float32) {
	r.events = append(r.events, "begin")
	r.elapsed = append(r.elapsed, elapsed)
}

func (r *recorder) DrawGeometry(scene.Geometry, mgl32.Mat4, mgl32.Mat4) {
	r.events = append(r.events, "draw")
	r.draws++
}

func (r *recorder) ReloadShaders() error {
	r.events = append(r.events, "reload")
	r.reloads++
	return r.reloadErr
}

func (r *recorder) CaptureFrame(time.Time) (string, error) {
	r.events = append(r.events, "capture")
	r.captures++
	return "capture.bmp", nil
}

func (r *recorder) Present() {
	r.events = append(r.events, "present")
}

type stubInput struct {
	snap input.Snapshot
	ok   bool
}

func (s *stubInput) TrySnapshot() (input.Snapshot, bool) {
	snap := s.snap
	s.snap.JustPressed = nil
	return snap, s.ok
}

func newTestLoop(t *testing.T, in InputSource) (*Loop, *recorder) {
	t.Helper()
	g := scene.New()
	root := g.Create()
	a := g.CreateWithGeometry(scene.Geometry{VAO: 1, IndexCount: 3})
	b := g.CreateWithGeometry(scene.Geometry{VAO: 2, IndexCount: 3})
	require.NoError(t, g.AddChild(root, a))
	require.NoError(t, g.AddChild(a, b))

	rec := &recorder{}
	return &Loop{
		Graph:      g,
		Root:       root,
		Animations: animation.Table{}.Add(a, animation.Spin(animation.AxisY, 1)),
		Camera:     camera.NewFreeFly(40, 0.03),
		Projection: mgl32.Ident4(),
		Input:      in,
		Renderer:   rec,
		Presenter:  rec,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, rec
}

func TestTickDrawsAndPresents(t *testing.T) {
	l, rec := newTestLoop(t, &stubInput{ok: true})
	start := time.Unix(10, 0)

	l.tick(start)
	l.tick(start.Add(500 * time.Millisecond))

	assert.Equal(t, 4, rec.draws)
	assert.Equal(t, []string{"begin", "draw", "draw", "present", "begin", "draw", "draw", "present"}, rec.events)
	assert.Equal(t, []float32{0, 0.5}, rec.elapsed)

	a := l.Graph.Children(l.Root)[0]
	assert.InDelta(t, 0.5, l.Graph.Node(a).Rotation.Y(), 1e-6)
	assert.InDelta(t, math.Cos(0.5), l.Graph.Node(a).World.At(0, 0), 1e-6)
}

func TestTickMovesCameraByHeldKeys(t *testing.T) {
	in := &stubInput{ok: true, snap: input.Snapshot{Held: []input.Action{input.ActionMoveLeft}}}
	l, _ := newTestLoop(t, in)
	start := time.Unix(0, 0)

	l.tick(start)
	l.tick(start.Add(100 * time.Millisecond))

	assert.InDelta(t, 4, l.Camera.Transform.Col(3).X(), 1e-4)
}

func TestRotationIsPerFrame(t *testing.T) {
	in := &stubInput{ok: true, snap: input.Snapshot{Held: []input.Action{input.ActionYawRight}}}
	l, _ := newTestLoop(t, in)
	start := time.Unix(0, 0)

	l.tick(start)
	after1 := l.Camera.Transform
	l.tick(start.Add(time.Second))
	l.Camera.Transform = after1
	l.tick(start.Add(time.Second + time.Millisecond))

	want := mgl32.HomogRotate3D(0.03, mgl32.Vec3{0, 1, 0}).Mul4(after1)
	assert.True(t, l.Camera.Transform.ApproxEqualThreshold(want, 1e-6))
}

func TestTickSkipsInputWhenLocked(t *testing.T) {
	in := &stubInput{ok: false, snap: input.Snapshot{Held: []input.Action{input.ActionMoveUp}}}
	l, rec := newTestLoop(t, in)

	l.tick(time.Unix(0, 0))
	l.tick(time.Unix(1, 0))

	assert.Equal(t, mgl32.Ident4(), l.Camera.Transform)
	assert.Equal(t, 4, rec.draws, "frame still drawn without input")
}

func TestCaptureHappensBeforePresentOnce(t *testing.T) {
	in := &stubInput{ok: true, snap: input.Snapshot{JustPressed: []input.Action{input.ActionCapture}}}
	l, rec := newTestLoop(t, in)

	l.tick(time.Unix(0, 0))
	l.tick(time.Unix(1, 0))

	assert.Equal(t, 1, rec.captures)
	assert.Equal(t, []string{"begin", "draw", "draw", "capture", "present"}, rec.events[:5])
}

func TestWireframeToggle(t *testing.T) {
	config.SetWireframeMode(false)
	t.Cleanup(func() { config.SetWireframeMode(false) })

	in := &stubInput{ok: true, snap: input.Snapshot{JustPressed: []input.Action{input.ActionToggleWireframe}}}
	l, _ := newTestLoop(t, in)

	l.tick(time.Unix(0, 0))
	assert.True(t, config.IsWireframeMode())
	l.tick(time.Unix(1, 0))
	assert.True(t, config.IsWireframeMode(), "toggle only on the press")
}

func TestPendingChangesReloadOnce(t *testing.T) {
	l, rec := newTestLoop(t, &stubInput{ok: true})
	reloads := make(chan string, 4)
	l.Reloads = reloads

	l.tick(time.Unix(0, 0))
	assert.Equal(t, 0, rec.reloads)

	reloads <- "simple.vert"
	reloads <- "simple.frag"
	l.tick(time.Unix(1, 0))
	assert.Equal(t, 1, rec.reloads)

	rec.reloadErr = errors.New("syntax error")
	reloads <- "simple.frag"
	l.tick(time.Unix(2, 0))
	assert.Equal(t, 2, rec.reloads)
	assert.Equal(t, 6, rec.draws, "failed reload keeps drawing")
}

func TestRunStopsWhenCancelled(t *testing.T) {
	l, rec := newTestLoop(t, &stubInput{ok: true})
	ctx, cancel := context.WithCancel(context.Background())

	frames := 0
	l.Presenter = presentFunc(func() {
		frames++
		if frames == 3 {
			cancel()
		}
	})

	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.Equal(t, 3, frames)
	assert.Equal(t, 6, rec.draws)
}

type presentFunc func()

func (f presentFunc) Present() { f() }

func TestSlowFrameReportsSceneTime(t *testing.T) {
	l, _ := newTestLoop(t, &stubInput{ok: true})
	var buf bytes.Buffer
	l.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	profiling.ResetFrame()
	t.Cleanup(profiling.ResetFrame)
	stop := profiling.Track("scene.Draw")
	time.Sleep(2 * time.Millisecond)
	stop()

	l.report(time.Unix(10, 0), 2, SlowFrame/2)
	assert.Empty(t, buf.String())

	l.report(time.Unix(10, 0), 2, 2*SlowFrame)
	out := buf.String()
	assert.Contains(t, out, "slow frame")
	assert.Contains(t, out, "scene=")
	assert.NotContains(t, out, "scene=0s")
	assert.Contains(t, out, "top=scene.Draw:")
}
