package level

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/Faultbox/physics-scene/internal/engine/input"
	"github.com/Faultbox/physics-scene/internal/engine/resource"
	"github.com/Faultbox/physics-scene/internal/engine/scene"
	"github.com/Faultbox/physics-scene/internal/physics"
	"github.com/Faultbox/physics-scene/pkg/math"
)

// Resources opens scenes and loads model descriptors.
type Resources interface {
	OpenScene(name string) error
	GetModel(name string) (*resource.Model, error)
	ProjectPath() string
}

// SceneGraph spawns and removes render actors.
type SceneGraph interface {
	AddObject(model *resource.Model, pos, scale math.Vec3) (*scene.Actor, error)
	DeleteObject(id uuid.UUID) error
	MainCamera() *scene.Camera
}

// InputBackend supplies the input state for the current frame.
type InputBackend interface {
	Snapshot() input.Snapshot
}

// DebugLines collects transient lines drawn this frame.
type DebugLines interface {
	DrawDebugLine3D(start, end math.Vec3, color math.Vec4, width float32)
}

// PhysicsWorld is the rigid-body simulation the level drives.
type PhysicsWorld interface {
	SetAdditionalSearchPath(path string)
	SetGravity(x, y, z float64)
	LoadBody(shapeFile string, pos math.Vec3, orn math.Quat) (physics.BodyID, error)
	Step()
	BasePositionAndOrientation(id physics.BodyID) (math.Vec3, math.Quat, error)
	EulerFromQuaternion(q math.Quat) math.Vec3
	QuaternionFromEuler(e math.Vec3) math.Quat
	Disconnect() error
}

// PhysicsConnector opens a physics world.
type PhysicsConnector func(mode physics.Mode) (PhysicsWorld, error)

// ConnectPhysics opens an in-process physics.World.
func ConnectPhysics(mode physics.Mode) (PhysicsWorld, error) {
	w, err := physics.Connect(mode)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Host is everything a level needs from the running engine. Rand may be nil,
// in which case one is seeded from the scene config.
type Host struct {
	Resources Resources
	Scene     SceneGraph
	Input     InputBackend
	Debug     DebugLines
	Connect   PhysicsConnector
	Rand      *rand.Rand
}
