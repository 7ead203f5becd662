package mesh

import "mini-scene/internal/scene"

// Uploader moves mesh data to the GPU and back out again.
type Uploader interface {
	Upload(m *Mesh) scene.Geometry
	Release(g scene.Geometry)
}
