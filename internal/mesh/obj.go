package mesh

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/g3n/engine/loader/obj"
)

// Object is one named group of faces from an OBJ file.
type Object struct {
	Name string
	Mesh Mesh
}

// Model is a decoded OBJ file. Colors are left empty; see Mesh.Colorize.
type Model struct {
	Objects  []Object
	Warnings []string
}

// Object returns the object with the given name.
func (md *Model) Object(name string) (*Object, error) {
	for i := range md.Objects {
		if md.Objects[i].Name == name {
			return &md.Objects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPartNotFound, name)
}

// Merged returns all objects as a single mesh.
func (md *Model) Merged() *Mesh {
	out := &Mesh{}
	for i := range md.Objects {
		out.Append(&md.Objects[i].Mesh)
	}
	return out
}

const defaultObjectName = "unnamed_object"

// Faces before the first "o" line land in the default object, and every
// face has a current material so the decoder never sees a bare face.
const preamble = "o " + defaultObjectName + "\nusemtl default\n"

// LoadFile decodes the OBJ file at path.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open model file: %w", err)
	}
	defer f.Close()

	md, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return md, nil
}

// Decode parses Wavefront OBJ data. Polygons are triangulated as fans and
// every distinct position/normal pair becomes one output vertex, so the
// result can be drawn with a single index buffer. Faces before the first
// "o" line go to an object named "unnamed_object". Materials are ignored;
// parts are colored after loading.
func Decode(r io.Reader) (*Model, error) {
	src := io.MultiReader(strings.NewReader(preamble), r)
	dec, err := obj.DecodeReader(src, strings.NewReader(""))
	if err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}

	md := &Model{Warnings: dec.Warnings}
	for i := range dec.Objects {
		o, err := buildObject(dec, &dec.Objects[i])
		if err != nil {
			return nil, fmt.Errorf("obj: object %q: %w", dec.Objects[i].Name, err)
		}
		if len(o.Mesh.Indices) > 0 {
			md.Objects = append(md.Objects, o)
		}
	}
	if len(md.Objects) == 0 {
		return nil, ErrNoFaces
	}
	return md, nil
}

// corner is one position/normal pair; normal is -1 when the face gave none.
type corner struct {
	v, vn int
}

func buildObject(dec *obj.Decoder, src *obj.Object) (Object, error) {
	o := Object{Name: src.Name}
	m := &o.Mesh
	positions := len(dec.Vertices) / 3
	normals := len(dec.Normals) / 3
	unique := make(map[corner]uint32)

	addVertex := func(face obj.Face, i int) error {
		c := corner{v: face.Vertices[i], vn: -1}
		if c.v < 0 || c.v >= positions {
			return fmt.Errorf("vertex index %d out of range (%d defined)", c.v+1, positions)
		}
		if i < len(face.Normals) && face.Normals[i] >= 0 && face.Normals[i] < normals {
			c.vn = face.Normals[i]
		}

		index, ok := unique[c]
		if !ok {
			index = uint32(m.VertexCount())
			m.Vertices = append(m.Vertices, dec.Vertices[c.v*3:c.v*3+3]...)
			if c.vn >= 0 {
				m.Normals = append(m.Normals, dec.Normals[c.vn*3:c.vn*3+3]...)
			} else {
				m.Normals = append(m.Normals, 0, 0, 0)
			}
			unique[c] = index
		}
		m.Indices = append(m.Indices, index)
		return nil
	}

	for _, face := range src.Faces {
		for i := 2; i < len(face.Vertices); i++ {
			for _, k := range [3]int{0, i - 1, i} {
				if err := addVertex(face, k); err != nil {
					return o, err
				}
			}
		}
	}
	return o, nil
}
