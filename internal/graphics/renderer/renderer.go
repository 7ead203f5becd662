// Package renderer owns OpenGL state for the frame: the shader program,
// clear color, polygon mode and the draw call that the scene traversal
// issues for every node with geometry.
package renderer

import (
	"fmt"
	"log/slog"
	"time"

	"mini-scene/internal/capture"
	"mini-scene/internal/config"
	"mini-scene/internal/graphics"
	"mini-scene/internal/mesh"
	"mini-scene/internal/scene"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer implements game.Renderer on top of OpenGL.
type Renderer struct {
	renderables []Renderable
	uploader    mesh.Uploader
	shader      *graphics.Shader
	clearColor  [4]float32
	captureDir  string
	logger      *slog.Logger

	width, height int
	wireframe     bool
}

// New sets up GL state, loads the shader program and initializes every
// renderable. The caller's context must be current.
func New(cfg config.Config, logger *slog.Logger, rs ...Renderable) (*Renderer, error) {
	info := graphics.QueryContextInfo()
	logger.Info("opengl context",
		"vendor", info.Vendor,
		"renderer", info.Renderer,
		"version", info.Version,
		"glsl", info.GLSL)
	graphics.EnableDebugOutput(logger)

	gl.Disable(gl.MULTISAMPLE)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	shader, err := graphics.NewShader(cfg.Assets.VertexShader, cfg.Assets.FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}

	r := &Renderer{
		uploader:   graphics.GPU{},
		shader:     shader,
		clearColor: cfg.Render.ClearColor,
		captureDir: cfg.Assets.CaptureDir,
		logger:     logger,
		width:      cfg.Window.Width,
		height:     cfg.Window.Height,
	}
	for _, rb := range rs {
		if err := rb.Init(r.uploader); err != nil {
			r.Dispose()
			return nil, err
		}
		r.renderables = append(r.renderables, rb)
	}
	return r, nil
}

// SetViewport resizes the GL viewport to the framebuffer size.
func (r *Renderer) SetViewport(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears the buffers and prepares the program for the frame.
func (r *Renderer) BeginFrame(elapsed float32) {
	if wf := config.IsWireframeMode(); wf != r.wireframe {
		r.wireframe = wf
		if wf {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}
	}

	c := r.clearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.shader.Use()
	r.shader.SetTime(elapsed)
}

// DrawGeometry issues one indexed draw call.
func (r *Renderer) DrawGeometry(geom scene.Geometry, model, mvp mgl32.Mat4) {
	r.shader.SetModel(model)
	r.shader.SetMVP(mvp)
	gl.BindVertexArray(geom.VAO)
	gl.DrawElements(gl.TRIANGLES, geom.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// ReloadShaders rebuilds the program from its source files. A failed build
// keeps the previous program.
func (r *Renderer) ReloadShaders() error {
	return r.shader.Reload()
}

// CaptureFrame writes the back buffer to a BMP file in the capture
// directory. Call it after drawing and before presenting.
func (r *Renderer) CaptureFrame(now time.Time) (string, error) {
	pix := graphics.ReadPixels(r.width, r.height)
	img, err := capture.FromBottomUp(pix, r.width, r.height)
	if err != nil {
		return "", err
	}
	return capture.Save(r.captureDir, img, now)
}

// Dispose releases renderables in reverse order, then the program.
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose(r.uploader)
	}
	r.renderables = nil
	if r.shader != nil {
		r.shader.Delete()
		r.shader = nil
	}
}
