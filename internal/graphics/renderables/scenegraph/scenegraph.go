// Package scenegraph assembles the demo scene: a terrain with helicopters
// flying a figure-eight over it, rotors spinning.
package scenegraph

import (
	"errors"
	"fmt"

	"mini-scene/internal/animation"
	"mini-scene/internal/config"
	"mini-scene/internal/mesh"
	"mini-scene/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Rotor pivots in helicopter model space.
var (
	MainRotorPivot = mgl32.Vec3{0, 2.3, 0}
	TailRotorPivot = mgl32.Vec3{0.35, 2.3, 10.4}
)

// Options controls how many helicopters fly and how.
type Options struct {
	Helicopters    int
	HeadingSpacing float32 // seconds between helicopters on the path
	RotorSpeed     float32 // radians per second
}

// Parts are the meshes the scene is built from.
type Parts struct {
	Terrain    *mesh.Mesh
	Helicopter *mesh.Helicopter
}

// Scene is the renderable that owns the graph and its GPU geometry.
type Scene struct {
	Graph      *scene.Graph
	Root       scene.NodeID
	Animations animation.Table

	parts Parts
	opts  Options
	geoms []scene.Geometry
}

// New returns a scene that is assembled when the renderer initializes it.
func New(parts Parts, opts Options) *Scene {
	return &Scene{Graph: scene.New(), Root: scene.NoParent, parts: parts, opts: opts}
}

// Load reads the meshes named in cfg.
func Load(cfg config.Config) (*Scene, error) {
	terrain, err := mesh.Terrain(cfg.Assets.Terrain)
	if err != nil {
		return nil, fmt.Errorf("could not load terrain: %w", err)
	}
	heli, err := mesh.LoadHelicopter(cfg.Assets.Helicopter)
	if err != nil {
		return nil, fmt.Errorf("could not load helicopter: %w", err)
	}
	return New(Parts{Terrain: terrain, Helicopter: heli}, Options{
		Helicopters:    cfg.Scene.Helicopters,
		HeadingSpacing: cfg.Scene.HeadingSpacing,
		RotorSpeed:     cfg.Scene.RotorSpeed,
	}), nil
}

// Init uploads the meshes and builds the graph.
func (s *Scene) Init(up mesh.Uploader) error {
	if s.parts.Terrain == nil || s.parts.Helicopter == nil {
		return errors.New("scenegraph: missing meshes")
	}

	upload := func(m *mesh.Mesh) scene.Geometry {
		g := up.Upload(m)
		s.geoms = append(s.geoms, g)
		return g
	}
	geoms := helicopterGeometry{
		body:      upload(s.parts.Helicopter.Body),
		door:      upload(s.parts.Helicopter.Door),
		mainRotor: upload(s.parts.Helicopter.MainRotor),
		tailRotor: upload(s.parts.Helicopter.TailRotor),
	}

	g := s.Graph
	s.Root = g.Create()
	terrain := g.CreateWithGeometry(upload(s.parts.Terrain))
	g.MustAddChild(s.Root, terrain)

	for i := 0; i < s.opts.Helicopters; i++ {
		offset := float32(i) * s.opts.HeadingSpacing
		s.Animations = s.addHelicopter(terrain, geoms, offset, s.Animations)
	}
	return nil
}

type helicopterGeometry struct {
	body, door, mainRotor, tailRotor scene.Geometry
}

func (s *Scene) addHelicopter(parent scene.NodeID, geoms helicopterGeometry, offset float32, table animation.Table) animation.Table {
	g := s.Graph

	body := g.CreateWithGeometry(geoms.body)
	g.MustAddChild(parent, body)

	door := g.CreateWithGeometry(geoms.door)
	g.MustAddChild(body, door)

	mainRotor := g.CreateWithGeometry(geoms.mainRotor)
	g.Node(mainRotor).ReferencePoint = MainRotorPivot
	g.MustAddChild(body, mainRotor)

	tailRotor := g.CreateWithGeometry(geoms.tailRotor)
	g.Node(tailRotor).ReferencePoint = TailRotorPivot
	g.MustAddChild(body, tailRotor)

	return table.
		Add(body, animation.FollowHeading(offset)).
		Add(mainRotor, animation.Spin(animation.AxisY, s.opts.RotorSpeed)).
		Add(tailRotor, animation.Spin(animation.AxisX, s.opts.RotorSpeed))
}

// Dispose releases the uploaded geometry.
func (s *Scene) Dispose(up mesh.Uploader) {
	for _, g := range s.geoms {
		up.Release(g)
	}
	s.geoms = nil
}
