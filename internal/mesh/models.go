package mesh

import "fmt"

// Object names used by the bundled helicopter model.
const (
	HelicopterBody      = "Body_body"
	HelicopterDoor      = "Door_door"
	HelicopterMainRotor = "Main_Rotor_main_rotor"
	HelicopterTailRotor = "Tail_Rotor_tail_rotor"
)

var (
	TerrainColor   = [4]float32{1.0, 1.0, 1.0, 1.0}
	BodyColor      = [4]float32{0.3, 0.3, 0.3, 1.0}
	DoorColor      = [4]float32{0.1, 0.1, 0.3, 1.0}
	MainRotorColor = [4]float32{0.3, 0.1, 0.1, 1.0}
	TailRotorColor = [4]float32{0.1, 0.3, 0.1, 1.0}
)

// Terrain loads a model and merges all of its objects into one white mesh.
func Terrain(path string) (*Mesh, error) {
	md, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	m := md.Merged()
	m.Colorize(TerrainColor)
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("terrain %s: %w", path, err)
	}
	return m, nil
}

// Helicopter holds the separately animated parts of the helicopter model.
type Helicopter struct {
	Body      *Mesh
	Door      *Mesh
	MainRotor *Mesh
	TailRotor *Mesh
}

// LoadHelicopter loads the helicopter model and colors each part.
func LoadHelicopter(path string) (*Helicopter, error) {
	md, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	part := func(name string, color [4]float32) (*Mesh, error) {
		o, err := md.Object(name)
		if err != nil {
			return nil, fmt.Errorf("helicopter %s: %w", path, err)
		}
		m := o.Mesh
		m.Colorize(color)
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("helicopter %s part %s: %w", path, name, err)
		}
		return &m, nil
	}

	var h Helicopter
	if h.Body, err = part(HelicopterBody, BodyColor); err != nil {
		return nil, err
	}
	if h.Door, err = part(HelicopterDoor, DoorColor); err != nil {
		return nil, err
	}
	if h.MainRotor, err = part(HelicopterMainRotor, MainRotorColor); err != nil {
		return nil, err
	}
	if h.TailRotor, err = part(HelicopterTailRotor, TailRotorColor); err != nil {
		return nil, err
	}
	return &h, nil
}
