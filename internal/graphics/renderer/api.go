package renderer

import "mini-scene/internal/mesh"

// Renderable is a feature that owns GPU resources for its lifetime. The
// renderer initializes features in order and disposes them in reverse.
type Renderable interface {
	Init(up mesh.Uploader) error
	Dispose(up mesh.Uploader)
}
