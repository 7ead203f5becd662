// Package config holds startup configuration loaded from TOML and the few
// render settings that can change while the program runs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full startup configuration.
type Config struct {
	Window   Window   `toml:"window"`
	Camera   Camera   `toml:"camera"`
	Controls Controls `toml:"controls"`
	Scene    Scene    `toml:"scene"`
	Assets   Assets   `toml:"assets"`
	Render   Render   `toml:"render"`
	Log      Log      `toml:"log"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
	// OpenGL context version; explicit uniform locations need 4.3
	GLMajor int `toml:"gl_major"`
	GLMinor int `toml:"gl_minor"`
}

type Camera struct {
	FOV    float32    `toml:"fov"` // radians
	Aspect float32    `toml:"aspect"`
	Near   float32    `toml:"near"`
	Far    float32    `toml:"far"`
	Offset [3]float32 `toml:"offset"`
}

type Controls struct {
	MoveSpeed float32 `toml:"move_speed"` // units per second
	TurnStep  float32 `toml:"turn_step"`  // radians per frame
}

type Scene struct {
	Helicopters    int     `toml:"helicopters"`
	HeadingSpacing float32 `toml:"heading_spacing"` // seconds between helicopters on the path
	RotorSpeed     float32 `toml:"rotor_speed"`     // radians per second
}

type Assets struct {
	VertexShader   string `toml:"vertex_shader"`
	FragmentShader string `toml:"fragment_shader"`
	Terrain        string `toml:"terrain"`
	Helicopter     string `toml:"helicopter"`
	WatchShaders   bool   `toml:"watch_shaders"`
	CaptureDir     string `toml:"capture_dir"`
}

type Render struct {
	FPSLimit   int        `toml:"fps_limit"` // 0 disables the limiter
	ClearColor [4]float32 `toml:"clear_color"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:   800,
			Height:  600,
			Title:   "mini-scene",
			VSync:   true,
			GLMajor: 4,
			GLMinor: 3,
		},
		Camera: Camera{
			FOV:    math.Pi / 2,
			Aspect: 16.0 / 9.0,
			Near:   1,
			Far:    1000,
			Offset: [3]float32{-10, 0, -10},
		},
		Controls: Controls{
			MoveSpeed: 40,
			TurnStep:  0.03,
		},
		Scene: Scene{
			Helicopters:    1,
			HeadingSpacing: 0.75,
			RotorSpeed:     5,
		},
		Assets: Assets{
			VertexShader:   "shaders/simple.vert",
			FragmentShader: "shaders/simple.frag",
			Terrain:        "resources/lunarsurface.obj",
			Helicopter:     "resources/helicopter.obj",
			WatchShaders:   true,
			CaptureDir:     ".",
		},
		Render: Render{
			ClearColor: [4]float32{0.4, 0.71372549, 0.94901961, 1.0},
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path on top of the defaults. A missing file is not an error
// when allowMissing is set; unknown keys always are.
func Load(path string, allowMissing bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("could not read config file: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("config %s: %s", path, strict.String())
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the renderer cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= math.Pi {
		errs = append(errs, fmt.Errorf("camera fov %v outside (0, pi)", c.Camera.FOV))
	}
	if c.Camera.Aspect <= 0 {
		errs = append(errs, fmt.Errorf("camera aspect %v", c.Camera.Aspect))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Scene.Helicopters < 0 {
		errs = append(errs, fmt.Errorf("scene helicopters %d", c.Scene.Helicopters))
	}
	if c.Render.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("render fps_limit %d", c.Render.FPSLimit))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}
