package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"mini-scene/internal/assets"
	"mini-scene/internal/camera"
	"mini-scene/internal/config"
	"mini-scene/internal/game"
	"mini-scene/internal/graphics/renderables/scenegraph"
	"mini-scene/internal/graphics/renderer"
	"mini-scene/internal/input"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := pflag.StringP("config", "c", "config.toml", "path to the TOML configuration file")
	logLevel := pflag.String("log-level", "", "log level: debug, info, warn or error (overrides the config file)")
	pflag.Parse()

	// the default config file is optional, an explicit one is not
	cfg, err := config.Load(*configPath, !pflag.CommandLine.Changed("config"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	logger := newLogger(cfg.Log.Level)
	if err := run(cfg, logger); err != nil {
		closer.Fatalln(err)
	}
	closer.Close()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// run owns the main thread: window creation, the event loop and teardown.
// Rendering happens on its own goroutine with the GL context moved there.
func run(cfg config.Config, logger *slog.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		return fmt.Errorf("could not create window: %w", err)
	}
	defer window.Destroy()

	in := input.NewManager()
	bindDefaultKeys(in)
	size := &framebufferSize{}
	size.Set(window.GetFramebufferSize())
	installCallbacks(window, in, size)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		done <- game.Guard(func() error {
			return render(ctx, window, cfg, logger, in, size)
		})
	}()
	// on SIGINT/SIGTERM let the render goroutine release GL objects first
	closer.Bind(func() {
		cancel()
		<-stopped
	})

	var health game.Health
	result := make(chan error, 1)
	go func() {
		result <- game.Watchdog(done, &health, logger, glfw.PostEmptyEvent)
	}()

	for !window.ShouldClose() && health.Healthy() {
		glfw.WaitEvents()
	}
	logger.Debug("event loop finished", "healthy", health.Healthy())

	cancel()
	<-stopped
	return <-result
}

func render(ctx context.Context, window *glfw.Window, cfg config.Config, logger *slog.Logger, in *input.Manager, size *framebufferSize) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window.MakeContextCurrent()
	defer glfw.DetachCurrentContext()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("could not initialize OpenGL: %w", err)
	}
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	sc, err := scenegraph.Load(cfg)
	if err != nil {
		return err
	}
	r, err := renderer.New(cfg, logger, sc)
	if err != nil {
		return err
	}
	defer r.Dispose()

	var reloads <-chan string
	if cfg.Assets.WatchShaders {
		w, err := assets.Watch(logger, cfg.Assets.VertexShader, cfg.Assets.FragmentShader)
		if err != nil {
			logger.Warn("shader hot reload disabled", "err", err)
		} else {
			defer w.Close()
			reloads = w.Changed()
		}
	}

	proj := camera.Projection{
		FOV:    cfg.Camera.FOV,
		Aspect: cfg.Camera.Aspect,
		Near:   cfg.Camera.Near,
		Far:    cfg.Camera.Far,
	}
	loop := &game.Loop{
		Graph:      sc.Graph,
		Root:       sc.Root,
		Animations: sc.Animations,
		Camera:     camera.NewFreeFly(cfg.Controls.MoveSpeed, cfg.Controls.TurnStep),
		Projection: proj.Matrix(),
		Offset:     mgl32.Vec3(cfg.Camera.Offset),
		Input:      in,
		Renderer:   resizingRenderer{Renderer: r, size: size},
		Presenter:  windowPresenter{window: window},
		Logger:     logger,
		Limiter:    game.NewFPSLimiter(cfg.Render.FPSLimit),
		Reloads:    reloads,
	}
	logger.Info("scene ready", "nodes", sc.Graph.Len(), "helicopters", cfg.Scene.Helicopters)
	loop.Run(ctx)
	return nil
}
