// Package mesh loads Wavefront OBJ models into the flat vertex, index,
// color and normal arrays that the geometry upload consumes.
package mesh

import (
	"errors"
	"fmt"
)

var (
	ErrNoFaces      = errors.New("mesh: no faces")
	ErrPartNotFound = errors.New("mesh: part not found")
)

// Mesh is a triangle list with one color and one normal per vertex.
type Mesh struct {
	Vertices []float32 // 3 per vertex
	Colors   []float32 // 4 per vertex (RGBA)
	Normals  []float32 // 3 per vertex
	Indices  []uint32  // 3 per triangle
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// IndexCount returns the number of indices to draw.
func (m *Mesh) IndexCount() int32 {
	return int32(len(m.Indices))
}

// Colorize gives every vertex the same color.
func (m *Mesh) Colorize(rgba [4]float32) {
	n := m.VertexCount()
	m.Colors = make([]float32, 0, n*4)
	for range n {
		m.Colors = append(m.Colors, rgba[:]...)
	}
}

// Validate checks that the arrays agree with each other.
func (m *Mesh) Validate() error {
	if len(m.Indices) == 0 {
		return ErrNoFaces
	}
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("mesh: %d vertex floats is not a multiple of 3", len(m.Vertices))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: %d indices is not a multiple of 3", len(m.Indices))
	}
	n := m.VertexCount()
	if len(m.Colors) != n*4 {
		return fmt.Errorf("mesh: %d color floats for %d vertices", len(m.Colors), n)
	}
	if len(m.Normals) != n*3 {
		return fmt.Errorf("mesh: %d normal floats for %d vertices", len(m.Normals), n)
	}
	for _, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("mesh: index %d out of range for %d vertices", idx, n)
		}
	}
	return nil
}

// Append adds the triangles of o, reindexed after the existing vertices.
func (m *Mesh) Append(o *Mesh) {
	base := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, o.Vertices...)
	m.Colors = append(m.Colors, o.Colors...)
	m.Normals = append(m.Normals, o.Normals...)
	for _, idx := range o.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}
