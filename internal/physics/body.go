package physics

import "github.com/go-gl/mathgl/mgl64"

// BodyID is a handle to a body in a World. IDs are issued in load order
// starting at 0 and are never reused within a connection.
type BodyID int

// Body is a rigid body. Static bodies have zero inverse mass and inertia.
type Body struct {
	ID          BodyID
	Name        string
	Shape       Shape
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Velocity    mgl64.Vec3
	AngularVel  mgl64.Vec3
	Friction    float64
	Restitution float64

	invMass     float64
	invInertia  mgl64.Vec3 // local, principal axes
	invInertiaW mgl64.Mat3 // world, refreshed each step

	asleep    bool
	restTime  float64 // seconds spent touching and slow
	touchStep uint64  // last step with a contact, plus one
}

func newBody(id BodyID, desc *BodyDesc, pos mgl64.Vec3, orn mgl64.Quat) *Body {
	b := &Body{
		ID:          id,
		Name:        desc.Name,
		Shape:       desc.Shape,
		Position:    pos,
		Orientation: orn.Normalize(),
		Friction:    desc.Friction,
		Restitution: desc.Restitution,
	}
	if !desc.Static() {
		b.invMass = 1 / desc.Mass
		for i := 0; i < 3; i++ {
			if desc.Inertia[i] > 0 {
				b.invInertia[i] = 1 / desc.Inertia[i]
			}
		}
	}
	b.refreshInertia()
	return b
}

// Static reports whether the body is immovable.
func (b *Body) Static() bool {
	return b.invMass == 0
}

// Asleep reports whether the body has come to rest and is skipped by the
// integrator until something wakes it.
func (b *Body) Asleep() bool {
	return b.asleep
}

func (b *Body) wake() {
	b.asleep = false
	b.restTime = 0
}

// settle accumulates rest time for a slow body in contact and puts it to
// sleep once it has rested long enough.
func (b *Body) settle(dt float64, touching bool) {
	if !touching || b.Velocity.Len() > sleepLinear || b.AngularVel.Len() > sleepAngular {
		b.restTime = 0
		return
	}
	b.restTime += dt
	if b.restTime >= sleepDelay {
		b.asleep = true
		b.Velocity = mgl64.Vec3{}
		b.AngularVel = mgl64.Vec3{}
	}
}

func (b *Body) refreshInertia() {
	r := b.Orientation.Mat4().Mat3()
	b.invInertiaW = r.Mul3(mgl64.Diag3(b.invInertia)).Mul3(r.Transpose())
}

// shapeCenter is the collision shape origin in world space.
func (b *Body) shapeCenter() mgl64.Vec3 {
	return b.Position.Add(b.Orientation.Rotate(b.Shape.Offset))
}

// velocityAt is the velocity of the body point at world offset r from Position.
func (b *Body) velocityAt(r mgl64.Vec3) mgl64.Vec3 {
	return b.Velocity.Add(b.AngularVel.Cross(r))
}

func (b *Body) applyImpulse(p, r mgl64.Vec3) {
	if b.Static() {
		return
	}
	b.Velocity = b.Velocity.Add(p.Mul(b.invMass))
	b.AngularVel = b.AngularVel.Add(b.invInertiaW.Mul3x1(r.Cross(p)))
}

func (b *Body) integrate(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	w := b.AngularVel
	if w.Len() == 0 {
		return
	}
	spin := mgl64.Quat{W: 0, V: w}.Mul(b.Orientation)
	b.Orientation = mgl64.Quat{
		W: b.Orientation.W + 0.5*dt*spin.W,
		V: b.Orientation.V.Add(spin.V.Mul(0.5 * dt)),
	}.Normalize()
}
