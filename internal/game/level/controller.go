// Package level implements the physics playground: a ground plane with
// spheres and suzans dropped onto it, a free-look camera and an axis gizmo.
package level

import (
	"errors"
	"fmt"
	gomath "math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/physics-scene/internal/config"
	"github.com/Faultbox/physics-scene/internal/engine/resource"
	"github.com/Faultbox/physics-scene/internal/engine/scene"
	"github.com/Faultbox/physics-scene/internal/logger"
	"github.com/Faultbox/physics-scene/internal/physics"
	"github.com/Faultbox/physics-scene/pkg/math"
)

// Model names looked up in the resource manager.
const (
	PlaneModel  = "Cube"
	SphereModel = "sphere"
	SuzanModel  = "suzan"
)

var (
	planeScale = math.Vec3{X: 15, Y: 0.01, Z: 15}
	meshScale  = math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}

	// planeCorrection turns the Z-up plane shape into a Y-up ground.
	planeCorrection = math.Vec3{X: 0, Y: gomath.Pi / 2, Z: gomath.Pi / 2}
)

// Gizmo drawn at the origin every frame.
const (
	gizmoLength = 3
	gizmoWidth  = 3
)

// Body pairs a spawned actor with its physics body.
type Body struct {
	Actor *scene.Actor
	ID    physics.BodyID
}

// Controller owns the level's actors and physics world between Setup and
// Teardown.
type Controller struct {
	host  *Host
	world PhysicsWorld
	log   *zap.Logger

	plane     *Body
	spheres   []Body
	suzans    []Body
	connected bool
	live      bool // set once Setup succeeds, cleared by Teardown
}

// Setup builds the level: opens the scene, places the camera, spawns the
// plane and cfg.Scene.MeshCount spheres and suzans, and mirrors each in a new
// physics world. On failure everything created so far is removed again.
func Setup(host *Host, cfg *config.Config) (*Controller, error) {
	if host == nil || host.Resources == nil || host.Scene == nil || host.Connect == nil {
		return nil, errors.New("setup level: incomplete host")
	}
	if cfg == nil {
		return nil, errors.New("setup level: nil config")
	}

	c := &Controller{
		host: host,
		log:  logger.Named("level"),
	}
	if err := c.setup(cfg); err != nil {
		c.release()
		return nil, fmt.Errorf("setup level: %w", err)
	}
	c.live = true

	c.log.Info("SceneController initialize",
		zap.String("scene", cfg.Scene.Name),
		zap.Int("spheres", len(c.spheres)),
		zap.Int("suzans", len(c.suzans)),
	)
	return c, nil
}

func (c *Controller) setup(cfg *config.Config) error {
	sc := cfg.Scene
	if err := c.host.Resources.OpenScene(sc.Name); err != nil {
		return err
	}

	cam := c.host.Scene.MainCamera()
	cam.MoveSpeed = sc.Camera.MoveSpeed
	cam.PanSpeed = sc.Camera.PanSpeed
	cam.RotationSpeed = sc.Camera.RotationSpeed
	cam.Transform.SetPos(math.Vec3{X: sc.Camera.Position[0], Y: sc.Camera.Position[1], Z: sc.Camera.Position[2]})
	cam.Transform.SetPitch(sc.Camera.Pitch)
	cam.Transform.SetYaw(sc.Camera.Yaw)
	cam.Transform.RecordDefault()

	models := make(map[string]*resource.Model, 3)
	for _, name := range []string{PlaneModel, SphereModel, SuzanModel} {
		m, err := c.host.Resources.GetModel(name)
		if err != nil {
			return fmt.Errorf("model %s: %w", name, err)
		}
		models[name] = m
	}

	planeActor, err := c.host.Scene.AddObject(models[PlaneModel], math.Vec3{}, planeScale)
	if err != nil {
		return err
	}
	c.plane = &Body{Actor: planeActor}

	rng := c.host.Rand
	if rng == nil {
		seed := sc.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	for i := 0; i < sc.MeshCount; i++ {
		a, err := c.host.Scene.AddObject(models[SphereModel], spawnPosition(rng, sc.MinSpawnHeight), meshScale)
		if err != nil {
			return err
		}
		c.spheres = append(c.spheres, Body{Actor: a})

		a, err = c.host.Scene.AddObject(models[SuzanModel], spawnPosition(rng, sc.MinSpawnHeight), meshScale)
		if err != nil {
			return err
		}
		c.suzans = append(c.suzans, Body{Actor: a})
	}

	world, err := c.host.Connect(physics.Direct)
	if err != nil {
		return fmt.Errorf("connect physics: %w", err)
	}
	c.world = world
	c.connected = true

	world.SetAdditionalSearchPath(physics.DataPath)
	world.SetAdditionalSearchPath(c.host.Resources.ProjectPath())
	g := cfg.Physics.Gravity
	world.SetGravity(g[0], g[1], g[2])

	c.plane.ID, err = world.LoadBody(cfg.Physics.PlaneShape, planeActor.Transform.Pos(), world.QuaternionFromEuler(planeCorrection))
	if err != nil {
		return fmt.Errorf("plane body: %w", err)
	}
	if err := c.loadBodies(c.spheres, cfg.Physics.SphereShape); err != nil {
		return fmt.Errorf("sphere bodies: %w", err)
	}
	if err := c.loadBodies(c.suzans, cfg.Physics.SuzanShape); err != nil {
		return fmt.Errorf("suzan bodies: %w", err)
	}
	return nil
}

func (c *Controller) loadBodies(bodies []Body, shape string) error {
	for i := range bodies {
		t := bodies[i].Actor.Transform
		id, err := c.world.LoadBody(shape, t.Pos(), c.world.QuaternionFromEuler(t.Rotation()))
		if err != nil {
			return err
		}
		bodies[i].ID = id
	}
	return nil
}

// spawnPosition picks a point in [-2, 2] on X and Z and [0, 14) on Y, raised
// to at least minY.
func spawnPosition(rng *rand.Rand, minY float32) math.Vec3 {
	p := math.Vec3{X: rng.Float32(), Y: rng.Float32(), Z: rng.Float32()}
	p.X = 2*p.X - 1
	p.Y += rng.Float32() * 6
	p.Z = 2*p.Z - 1
	p = p.Scale(2)
	if p.Y < minY {
		p.Y = minY
	}
	return p
}

// Update steps the simulation once, applies this frame's camera input,
// copies body poses onto the actors and draws the axis gizmo.
func (c *Controller) Update(dt float64) error {
	if !c.connected {
		return physics.ErrNotConnected
	}
	c.world.Step()

	if c.host.Input != nil {
		ApplyCameraInput(c.host.Scene.MainCamera(), c.host.Input.Snapshot(), dt)
	}

	if err := c.sync(c.suzans); err != nil {
		return err
	}
	if err := c.sync(c.spheres); err != nil {
		return err
	}

	if c.host.Debug != nil {
		origin := math.Vec3{}
		c.host.Debug.DrawDebugLine3D(origin, math.Vec3{X: gizmoLength}, math.Vec4{X: 1, W: 1}, gizmoWidth)
		c.host.Debug.DrawDebugLine3D(origin, math.Vec3{Y: gizmoLength}, math.Vec4{Y: 1, W: 1}, gizmoWidth)
		c.host.Debug.DrawDebugLine3D(origin, math.Vec3{Z: gizmoLength}, math.Vec4{Z: 1, W: 1}, gizmoWidth)
	}
	return nil
}

func (c *Controller) sync(bodies []Body) error {
	for _, b := range bodies {
		pos, orn, err := c.world.BasePositionAndOrientation(b.ID)
		if err != nil {
			return fmt.Errorf("sync %s: %w", b.Actor.Name, err)
		}
		b.Actor.Transform.SetPos(pos)
		b.Actor.Transform.SetRotation(c.world.EulerFromQuaternion(orn))
	}
	return nil
}

// Teardown disconnects the physics world and deletes every spawned actor.
// It is safe to call more than once.
func (c *Controller) Teardown() {
	c.release()
	if c.live {
		c.live = false
		c.log.Info("SceneController exit")
	}
}

// release disconnects physics and deletes whatever actors exist, plane last.
func (c *Controller) release() {
	if c.connected {
		if err := c.world.Disconnect(); err != nil && !physics.IsNotConnected(err) {
			c.log.Warn("disconnect physics", zap.Error(err))
		}
		c.connected = false
	}

	c.deleteBodies(c.spheres)
	c.spheres = nil
	c.deleteBodies(c.suzans)
	c.suzans = nil
	if c.plane != nil {
		c.deleteActor(c.plane.Actor)
		c.plane = nil
	}
}

func (c *Controller) deleteBodies(bodies []Body) {
	for _, b := range bodies {
		c.deleteActor(b.Actor)
	}
}

func (c *Controller) deleteActor(a *scene.Actor) {
	if err := c.host.Scene.DeleteObject(a.ID); err != nil {
		c.log.Warn("delete actor", zap.String("actor", a.Name), zap.Stringer("id", a.ID), zap.Error(err))
	}
}

// Plane returns the ground plane, or nil after Teardown.
func (c *Controller) Plane() *Body { return c.plane }

// Spheres returns the spawned spheres.
func (c *Controller) Spheres() []Body { return c.spheres }

// Suzans returns the spawned suzans.
func (c *Controller) Suzans() []Body { return c.suzans }

// Connected reports whether the physics world is still open.
func (c *Controller) Connected() bool { return c.connected }
