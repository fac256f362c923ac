// Package scene holds the render-side scene graph: the actors spawned into a
// level and the main camera.
package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/physics-scene/internal/engine/resource"
	"github.com/Faultbox/physics-scene/internal/engine/transform"
	"github.com/Faultbox/physics-scene/internal/logger"
	"github.com/Faultbox/physics-scene/pkg/math"
)

// ErrActorNotFound is returned when deleting an unknown actor.
var ErrActorNotFound = errors.New("actor not found")

// Actor is a model instance in the scene.
type Actor struct {
	ID        uuid.UUID
	Name      string
	Model     *resource.Model
	Transform *transform.Transform
}

// Camera is the free-look main camera.
type Camera struct {
	MoveSpeed     float32
	PanSpeed      float32
	RotationSpeed float32
	Transform     *transform.Transform
}

// NewCamera creates a camera at the origin with default speeds.
func NewCamera() *Camera {
	return &Camera{
		MoveSpeed:     10.0,
		PanSpeed:      0.05,
		RotationSpeed: 0.005,
		Transform:     transform.New(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1}),
	}
}

// Graph owns the actors of the current scene, keyed by actor ID.
type Graph struct {
	actors   []*Actor
	byID     map[uuid.UUID]*Actor
	byName   map[string]*Actor
	counters map[string]int
	camera   *Camera
	log      *zap.Logger
}

// NewGraph creates an empty scene graph with a default main camera.
func NewGraph() *Graph {
	return &Graph{
		byID:     make(map[uuid.UUID]*Actor),
		byName:   make(map[string]*Actor),
		counters: make(map[string]int),
		camera:   NewCamera(),
		log:      logger.Named("scene"),
	}
}

// MainCamera returns the main camera.
func (g *Graph) MainCamera() *Camera {
	return g.camera
}

// AddObject spawns an actor for model at pos with scale. Names are
// "<model>_<n>" and unique within the graph.
func (g *Graph) AddObject(model *resource.Model, pos, scale math.Vec3) (*Actor, error) {
	if model == nil {
		return nil, fmt.Errorf("add object: nil model")
	}

	name := g.nextName(model.Name)
	a := &Actor{
		ID:        uuid.New(),
		Name:      name,
		Model:     model,
		Transform: transform.New(pos, scale),
	}
	g.actors = append(g.actors, a)
	g.byID[a.ID] = a
	g.byName[name] = a

	g.log.Debug("actor added", zap.String("name", name), zap.Stringer("id", a.ID))
	return a, nil
}

func (g *Graph) nextName(model string) string {
	for {
		n := g.counters[model]
		g.counters[model] = n + 1
		name := fmt.Sprintf("%s_%d", model, n)
		if _, taken := g.byName[name]; !taken {
			return name
		}
	}
}

// DeleteObject removes the actor with the given ID.
func (g *Graph) DeleteObject(id uuid.UUID) error {
	a, ok := g.byID[id]
	if !ok {
		return fmt.Errorf("delete %s: %w", id, ErrActorNotFound)
	}
	delete(g.byID, id)
	delete(g.byName, a.Name)
	for i, other := range g.actors {
		if other == a {
			g.actors = append(g.actors[:i], g.actors[i+1:]...)
			break
		}
	}
	g.log.Debug("actor deleted", zap.String("name", a.Name), zap.Stringer("id", id))
	return nil
}

// Actor returns the actor with the given ID, or nil.
func (g *Graph) Actor(id uuid.UUID) *Actor {
	return g.byID[id]
}

// ActorByName returns the actor with the given name, or nil.
func (g *Graph) ActorByName(name string) *Actor {
	return g.byName[name]
}

// Actors returns the actors in spawn order. The slice must not be modified.
func (g *Graph) Actors() []*Actor {
	return g.actors
}

// Len returns the number of actors.
func (g *Graph) Len() int {
	return len(g.actors)
}
