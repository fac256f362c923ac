// Package physics is a small headless rigid-body world: spheres and boxes
// falling under gravity onto static planes and boxes. Bodies are described
// by URDF shape files resolved against a list of search paths.
package physics

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/physics-scene/internal/logger"
	"github.com/Faultbox/physics-scene/pkg/math"
)

// Mode selects how a world is connected.
type Mode int

const (
	// Direct runs the simulation in-process with no visualisation.
	Direct Mode = iota
	// GUI would open a physics debug window; it is not supported.
	GUI
)

// TimeStep is the fixed simulation step in seconds.
const TimeStep = 1.0 / 240.0

// DataPath is the search path naming the bundled shape files
// (plane.urdf, sphere.urdf, cube.urdf).
const DataPath = "physics-data:"

//go:embed data/*.urdf
var bundled embed.FS

const (
	solverIterations = 10
	linearDamping    = 0.04
	angularDamping   = 0.04

	// A dynamic body that stays in contact below both speeds for
	// sleepDelay seconds is put to sleep.
	sleepLinear  = 0.05
	sleepAngular = 0.05
	sleepDelay   = 0.5
)

// World is a connected physics simulation.
type World struct {
	connected   bool
	gravity     mgl64.Vec3
	searchPaths []string
	bodies      []*Body
	contacts    []contact
	steps       uint64
	log         *zap.Logger
}

// Connect opens a new world. Only Direct is supported.
func Connect(mode Mode) (*World, error) {
	if mode != Direct {
		return nil, fmt.Errorf("connect mode %d: %w", mode, ErrModeUnsupported)
	}
	w := &World{
		connected: true,
		log:       logger.Named("physics"),
	}
	w.log.Debug("connected", zap.Int("mode", int(mode)))
	return w, nil
}

// Connected reports whether the world accepts calls.
func (w *World) Connected() bool {
	return w.connected
}

// SetAdditionalSearchPath appends a directory (or DataPath) consulted when
// resolving shape files.
func (w *World) SetAdditionalSearchPath(p string) {
	w.searchPaths = append(w.searchPaths, p)
}

// SetGravity sets the global gravity acceleration and wakes every body.
func (w *World) SetGravity(x, y, z float64) {
	w.gravity = mgl64.Vec3{x, y, z}
	for _, b := range w.bodies {
		b.wake()
	}
}

// Gravity returns the global gravity acceleration.
func (w *World) Gravity() mgl64.Vec3 {
	return w.gravity
}

// NumBodies returns the number of loaded bodies.
func (w *World) NumBodies() int {
	return len(w.bodies)
}

// Steps returns the number of steps simulated since Connect.
func (w *World) Steps() uint64 {
	return w.steps
}

// LoadBody creates a body from a shape file at the given base pose.
func (w *World) LoadBody(shapeFile string, pos math.Vec3, orn math.Quat) (BodyID, error) {
	if !w.connected {
		return -1, ErrNotConnected
	}

	desc, err := w.loadDesc(shapeFile)
	if err != nil {
		return -1, err
	}

	id := BodyID(len(w.bodies))
	b := newBody(id, desc, toVec(pos), toQuat(orn))
	w.bodies = append(w.bodies, b)

	w.log.Debug("body loaded",
		zap.Int("id", int(id)),
		zap.String("file", shapeFile),
		zap.Stringer("shape", desc.Shape.Kind),
		zap.Bool("static", b.Static()),
	)
	return id, nil
}

func (w *World) loadDesc(shapeFile string) (*BodyDesc, error) {
	f, err := w.open(shapeFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	desc, err := ParseURDF(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", shapeFile, err)
	}
	return desc, nil
}

// open resolves name as given, then against each search path in order.
func (w *World) open(name string) (fs.File, error) {
	if f, err := os.Open(name); err == nil {
		return f, nil
	}
	for _, sp := range w.searchPaths {
		if sp == DataPath {
			sub, _ := fs.Sub(bundled, "data")
			if f, err := sub.Open(path.Clean(filepath.ToSlash(name))); err == nil {
				return f, nil
			}
			continue
		}
		if f, err := os.Open(filepath.Join(sp, name)); err == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", name, ErrShapeNotFound)
}

func (w *World) body(id BodyID) (*Body, error) {
	if !w.connected {
		return nil, ErrNotConnected
	}
	if id < 0 || int(id) >= len(w.bodies) {
		return nil, fmt.Errorf("body %d: %w", id, ErrUnknownBody)
	}
	return w.bodies[id], nil
}

// Body returns the body for id.
func (w *World) Body(id BodyID) (*Body, error) {
	return w.body(id)
}

// BasePositionAndOrientation returns the world pose of a body.
func (w *World) BasePositionAndOrientation(id BodyID) (math.Vec3, math.Quat, error) {
	b, err := w.body(id)
	if err != nil {
		return math.Vec3{}, math.Quat{}, err
	}
	return fromVec(b.Position), fromQuat(b.Orientation), nil
}

// ResetBasePositionAndOrientation teleports a body and clears its velocity.
func (w *World) ResetBasePositionAndOrientation(id BodyID, pos math.Vec3, orn math.Quat) error {
	b, err := w.body(id)
	if err != nil {
		return err
	}
	b.Position = toVec(pos)
	b.Orientation = toQuat(orn).Normalize()
	b.Velocity = mgl64.Vec3{}
	b.AngularVel = mgl64.Vec3{}
	b.wake()
	b.refreshInertia()
	return nil
}

// BaseVelocity returns the linear and angular velocity of a body.
func (w *World) BaseVelocity(id BodyID) (linear, angular mgl64.Vec3, err error) {
	b, err := w.body(id)
	if err != nil {
		return mgl64.Vec3{}, mgl64.Vec3{}, err
	}
	return b.Velocity, b.AngularVel, nil
}

// EulerFromQuaternion converts an orientation to fixed-axis X, Y, Z angles.
func (w *World) EulerFromQuaternion(q math.Quat) math.Vec3 {
	return q.Euler()
}

// QuaternionFromEuler converts fixed-axis X, Y, Z angles to an orientation.
func (w *World) QuaternionFromEuler(e math.Vec3) math.Quat {
	return math.QuatFromEuler(e)
}

// Step advances the simulation by one TimeStep. It is a no-op when
// disconnected.
func (w *World) Step() {
	if !w.connected {
		return
	}
	dt := TimeStep

	for _, b := range w.bodies {
		if b.Static() || b.asleep {
			continue
		}
		b.Velocity = b.Velocity.Add(w.gravity.Mul(dt)).Mul(1 / (1 + dt*linearDamping))
		b.AngularVel = b.AngularVel.Mul(1 / (1 + dt*angularDamping))
		b.refreshInertia()
	}

	w.contacts = w.findContacts(w.contacts[:0])
	w.solve(w.contacts, dt)

	for i := range w.contacts {
		c := &w.contacts[i]
		c.a.touchStep = w.steps + 1
		c.b.touchStep = w.steps + 1
	}
	for _, b := range w.bodies {
		if b.Static() || b.asleep {
			continue
		}
		b.settle(dt, b.touchStep == w.steps+1)
		if !b.asleep {
			b.integrate(dt)
		}
	}
	w.steps++
}

// Disconnect destroys all bodies. Further calls report ErrNotConnected.
func (w *World) Disconnect() error {
	if !w.connected {
		return ErrNotConnected
	}
	w.log.Debug("disconnected", zap.Int("bodies", len(w.bodies)), zap.Uint64("steps", w.steps))
	w.connected = false
	w.bodies = nil
	w.contacts = nil
	w.searchPaths = nil
	return nil
}

// IsNotConnected reports whether err means the world was already disconnected.
func IsNotConnected(err error) bool {
	return errors.Is(err, ErrNotConnected)
}

func toVec(v math.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func fromVec(v mgl64.Vec3) math.Vec3 {
	return math.Vec3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}

func toQuat(q math.Quat) mgl64.Quat {
	return mgl64.Quat{W: float64(q.W), V: mgl64.Vec3{float64(q.X), float64(q.Y), float64(q.Z)}}
}

func fromQuat(q mgl64.Quat) math.Quat {
	return math.Quat{X: float32(q.V[0]), Y: float32(q.V[1]), Z: float32(q.V[2]), W: float32(q.W)}
}
