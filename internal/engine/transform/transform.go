// Package transform provides position/rotation/scale state for scene actors
// and cameras, with relative move and rotate helpers.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/physics-scene/pkg/math"
)

// Pose is a snapshot of a transform's components.
type Pose struct {
	Position math.Vec3
	Rotation math.Vec3 // Euler X (pitch), Y (yaw), Z (roll), radians
	Scale    math.Vec3
}

// IdentityPose is the origin with no rotation and unit scale.
func IdentityPose() Pose {
	return Pose{Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// Transform is a mutable pose. The rotation is applied X first, then Y,
// then Z, matching math.QuatFromEuler.
type Transform struct {
	pose        Pose
	defaultPose Pose
}

// New creates a transform at pos with the given scale and no rotation.
func New(pos, scale math.Vec3) *Transform {
	p := Pose{Position: pos, Scale: scale}
	return &Transform{pose: p, defaultPose: IdentityPose()}
}

// Pose returns the current pose.
func (t *Transform) Pose() Pose { return t.pose }

// Pos returns the position.
func (t *Transform) Pos() math.Vec3 { return t.pose.Position }

// SetPos sets the position.
func (t *Transform) SetPos(p math.Vec3) { t.pose.Position = p }

// Rotation returns the Euler rotation.
func (t *Transform) Rotation() math.Vec3 { return t.pose.Rotation }

// SetRotation sets the Euler rotation.
func (t *Transform) SetRotation(r math.Vec3) { t.pose.Rotation = r }

// Scale returns the scale.
func (t *Transform) Scale() math.Vec3 { return t.pose.Scale }

// SetScale sets the scale.
func (t *Transform) SetScale(s math.Vec3) { t.pose.Scale = s }

// SetPitch sets the rotation about X.
func (t *Transform) SetPitch(v float32) { t.pose.Rotation.X = v }

// SetYaw sets the rotation about Y.
func (t *Transform) SetYaw(v float32) { t.pose.Rotation.Y = v }

// SetRoll sets the rotation about Z.
func (t *Transform) SetRoll(v float32) { t.pose.Rotation.Z = v }

// RotatePitch adds v to the pitch.
func (t *Transform) RotatePitch(v float32) { t.pose.Rotation.X += v }

// RotateYaw adds v to the yaw.
func (t *Transform) RotateYaw(v float32) { t.pose.Rotation.Y += v }

// RotateRoll adds v to the roll.
func (t *Transform) RotateRoll(v float32) { t.pose.Rotation.Z += v }

// Orientation returns the rotation as a quaternion.
func (t *Transform) Orientation() math.Quat {
	return math.QuatFromEuler(t.pose.Rotation)
}

// Left is the local +X axis in world space.
func (t *Transform) Left() math.Vec3 {
	return t.Orientation().Rotate(math.Vec3{X: 1})
}

// Up is the local +Y axis in world space.
func (t *Transform) Up() math.Vec3 {
	return t.Orientation().Rotate(math.Vec3{Y: 1})
}

// Front is the local +Z axis in world space. Cameras look down -Front.
func (t *Transform) Front() math.Vec3 {
	return t.Orientation().Rotate(math.Vec3{Z: 1})
}

// MoveFront translates along Front by d.
func (t *Transform) MoveFront(d float32) {
	t.pose.Position = t.pose.Position.Add(t.Front().Scale(d))
}

// MoveLeft translates along Left by d.
func (t *Transform) MoveLeft(d float32) {
	t.pose.Position = t.pose.Position.Add(t.Left().Scale(d))
}

// MoveUp translates along Up by d.
func (t *Transform) MoveUp(d float32) {
	t.pose.Position = t.pose.Position.Add(t.Up().Scale(d))
}

// RecordDefault stores the current pose as the one ResetTransform returns to.
func (t *Transform) RecordDefault() {
	t.defaultPose = t.pose
}

// DefaultPose returns the pose ResetTransform restores.
func (t *Transform) DefaultPose() Pose { return t.defaultPose }

// ResetTransform restores the recorded default pose, or the identity pose if
// none was recorded.
func (t *Transform) ResetTransform() {
	t.pose = t.defaultPose
}

// Matrix returns the model matrix (translate * rotate * scale).
func (t *Transform) Matrix() mgl32.Mat4 {
	p, r, s := t.pose.Position, t.pose.Rotation, t.pose.Scale
	rot := mgl32.HomogRotate3DZ(r.Z).Mul4(mgl32.HomogRotate3DY(r.Y)).Mul4(mgl32.HomogRotate3DX(r.X))
	return mgl32.Translate3D(p.X, p.Y, p.Z).Mul4(rot).Mul4(mgl32.Scale3D(s.X, s.Y, s.Z))
}

// ViewMatrix returns the inverse of the unscaled model matrix, for cameras.
func (t *Transform) ViewMatrix() mgl32.Mat4 {
	p, r := t.pose.Position, t.pose.Rotation
	rot := mgl32.HomogRotate3DZ(r.Z).Mul4(mgl32.HomogRotate3DY(r.Y)).Mul4(mgl32.HomogRotate3DX(r.X))
	return mgl32.Translate3D(p.X, p.Y, p.Z).Mul4(rot).Inv()
}
