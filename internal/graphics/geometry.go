package graphics

import (
	"mini-scene/internal/mesh"
	"mini-scene/internal/scene"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// Vertex attribute locations shared with shaders/simple.vert.
const (
	PositionAttrib uint32 = 0
	ColorAttrib    uint32 = 1
	NormalAttrib   uint32 = 5
)

// SetupGeometry uploads m into a new vertex array object with separate
// position, color and normal buffers and a u32 index buffer.
func SetupGeometry(m *mesh.Mesh) scene.Geometry {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	attribBuffer(PositionAttrib, 3, m.Vertices)
	attribBuffer(ColorAttrib, 4, m.Colors)
	if len(m.Normals) > 0 {
		attribBuffer(NormalAttrib, 3, m.Normals)
	}

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	if len(m.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return scene.Geometry{VAO: vao, IndexCount: m.IndexCount()}
}

func attribBuffer(location uint32, components int32, data []float32) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.VertexAttribPointerWithOffset(location, components, gl.FLOAT, false, components*4, 0)
	gl.EnableVertexAttribArray(location)
}

// DeleteGeometry releases the vertex array and every buffer bound to it.
func DeleteGeometry(g scene.Geometry) {
	if !g.Bound() {
		return
	}
	gl.BindVertexArray(g.VAO)

	var buffers []uint32
	for _, loc := range []uint32{PositionAttrib, ColorAttrib, NormalAttrib} {
		var b int32
		gl.GetVertexAttribiv(loc, gl.VERTEX_ATTRIB_ARRAY_BUFFER_BINDING, &b)
		if b != 0 {
			buffers = append(buffers, uint32(b))
		}
	}
	var ebo int32
	gl.GetIntegerv(gl.ELEMENT_ARRAY_BUFFER_BINDING, &ebo)
	if ebo != 0 {
		buffers = append(buffers, uint32(ebo))
	}

	gl.BindVertexArray(0)
	if len(buffers) > 0 {
		gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	}
	vao := g.VAO
	gl.DeleteVertexArrays(1, &vao)
}

// GPU uploads meshes with SetupGeometry and releases them with
// DeleteGeometry.
type GPU struct{}

func (GPU) Upload(m *mesh.Mesh) scene.Geometry { return SetupGeometry(m) }

func (GPU) Release(g scene.Geometry) { DeleteGeometry(g) }
