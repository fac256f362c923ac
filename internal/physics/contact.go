package physics

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	penetrationSlop      = 0.005
	correctionFactor     = 0.4
	restitutionThreshold = 2.0 // approach speed below which contacts do not bounce
)

// contact is a single contact point. normal points from b toward a; a is
// always dynamic.
type contact struct {
	a, b     *Body
	point    mgl64.Vec3
	normal   mgl64.Vec3
	depth    float64
	friction float64
	bounce   float64 // target separating speed

	ra, rb       mgl64.Vec3
	massNormal   float64
	t1, t2       mgl64.Vec3 // fixed tangent basis
	mass1, mass2 float64
	jn, jt1, jt2 float64 // accumulated impulses
}

func (w *World) findContacts(out []contact) []contact {
	for i, a := range w.bodies {
		for j := i + 1; j < len(w.bodies); j++ {
			b := w.bodies[j]
			switch {
			case a.Static() && b.Static():
				continue
			case a.Static() && b.asleep, b.Static() && a.asleep, a.asleep && b.asleep:
				continue
			case a.Static():
				out = collideStatic(out, b, a)
			case b.Static():
				out = collideStatic(out, a, b)
			default:
				out = collideDynamic(out, a, b)
			}
		}
	}
	return out
}

// collideStatic tests dynamic body d against static body s.
func collideStatic(out []contact, d, s *Body) []contact {
	switch s.Shape.Kind {
	case ShapePlane:
		n := s.Orientation.Rotate(s.Shape.Normal)
		origin := s.shapeCenter()
		for _, p := range supportPoints(d) {
			depth := p.radius - p.center.Sub(origin).Dot(n)
			if depth > 0 {
				out = append(out, newContact(d, s, p.center.Sub(n.Mul(p.radius)), n, depth))
			}
		}
	case ShapeBox:
		for _, p := range supportPoints(d) {
			if point, n, depth, ok := pointInBox(p.center, p.radius, s); ok {
				out = append(out, newContact(d, s, point, n, depth))
			}
		}
	}
	return out
}

// collideDynamic tests two dynamic bodies using bounding spheres.
func collideDynamic(out []contact, a, b *Body) []contact {
	ca, cb := a.shapeCenter(), b.shapeCenter()
	ra, rb := a.Shape.boundingRadius(), b.Shape.boundingRadius()

	delta := ca.Sub(cb)
	dist := delta.Len()
	depth := ra + rb - dist
	if depth <= 0 {
		return out
	}

	a.wake()
	b.wake()

	n := mgl64.Vec3{0, 1, 0}
	if dist > 1e-9 {
		n = delta.Mul(1 / dist)
	}
	return append(out, newContact(a, b, ca.Sub(n.Mul(ra)), n, depth))
}

type supportPoint struct {
	center mgl64.Vec3
	radius float64
}

// supportPoints approximates a dynamic shape by points with radii: a
// sphere is one point, a box is its eight corners.
func supportPoints(b *Body) []supportPoint {
	c := b.shapeCenter()
	switch b.Shape.Kind {
	case ShapeSphere:
		return []supportPoint{{center: c, radius: b.Shape.Radius}}
	case ShapeBox:
		h := b.Shape.HalfExtents
		pts := make([]supportPoint, 0, 8)
		for _, sx := range [2]float64{-1, 1} {
			for _, sy := range [2]float64{-1, 1} {
				for _, sz := range [2]float64{-1, 1} {
					local := mgl64.Vec3{sx * h[0], sy * h[1], sz * h[2]}
					pts = append(pts, supportPoint{center: c.Add(b.Orientation.Rotate(local))})
				}
			}
		}
		return pts
	default:
		return nil
	}
}

// pointInBox tests a sphere of radius r at p against static oriented box s.
func pointInBox(p mgl64.Vec3, r float64, s *Body) (point, normal mgl64.Vec3, depth float64, ok bool) {
	inv := s.Orientation.Inverse()
	local := inv.Rotate(p.Sub(s.shapeCenter()))
	h := s.Shape.HalfExtents

	// Closest point on the box surface in local space.
	closest := mgl64.Vec3{
		mgl64.Clamp(local[0], -h[0], h[0]),
		mgl64.Clamp(local[1], -h[1], h[1]),
		mgl64.Clamp(local[2], -h[2], h[2]),
	}
	diff := local.Sub(closest)
	dist := diff.Len()

	var nLocal mgl64.Vec3
	if dist > 1e-9 {
		if dist >= r {
			return
		}
		nLocal = diff.Mul(1 / dist)
		depth = r - dist
	} else {
		// Center inside the box: push out through the nearest face.
		best := gomath.Inf(1)
		bestAxis, bestSign := 0, 1.0
		for axis := 0; axis < 3; axis++ {
			for _, sign := range [2]float64{-1, 1} {
				if d := h[axis] - sign*local[axis]; d < best {
					best, bestAxis, bestSign = d, axis, sign
				}
			}
		}
		nLocal[bestAxis] = bestSign
		closest[bestAxis] = bestSign * h[bestAxis]
		depth = best + r
	}

	normal = s.Orientation.Rotate(nLocal)
	point = s.shapeCenter().Add(s.Orientation.Rotate(closest))
	return point, normal, depth, true
}

func newContact(a, b *Body, point, normal mgl64.Vec3, depth float64) contact {
	return contact{
		a:        a,
		b:        b,
		point:    point,
		normal:   normal,
		depth:    depth,
		friction: a.Friction * b.Friction,
	}
}

// solve runs sequential impulses over the contacts, then nudges
// overlapping bodies apart.
func (w *World) solve(contacts []contact, dt float64) {
	for i := range contacts {
		c := &contacts[i]
		c.ra = c.point.Sub(c.a.Position)
		c.rb = c.point.Sub(c.b.Position)
		c.massNormal = effectiveMass(c, c.normal)
		c.t1, c.t2 = tangentBasis(c.normal)
		c.mass1 = effectiveMass(c, c.t1)
		c.mass2 = effectiveMass(c, c.t2)

		vn := relativeVelocity(c).Dot(c.normal)
		if vn < -restitutionThreshold {
			c.bounce = -vn * c.a.Restitution * c.b.Restitution
		}
	}

	for iter := 0; iter < solverIterations; iter++ {
		for i := range contacts {
			c := &contacts[i]
			if c.massNormal == 0 {
				continue
			}

			vn := relativeVelocity(c).Dot(c.normal)
			lambda := (c.bounce - vn) / c.massNormal
			old := c.jn
			c.jn = gomath.Max(old+lambda, 0)
			applyPair(c, c.normal.Mul(c.jn-old))

			// Friction accumulates per tangent axis, clamped to a cone of
			// radius friction*jn.
			if c.mass1 == 0 || c.mass2 == 0 {
				continue
			}
			vrel := relativeVelocity(c)
			old1, old2 := c.jt1, c.jt2
			j1 := old1 - vrel.Dot(c.t1)/c.mass1
			j2 := old2 - vrel.Dot(c.t2)/c.mass2
			maxF := c.friction * c.jn
			if l := gomath.Hypot(j1, j2); l > maxF && l > 0 {
				j1 *= maxF / l
				j2 *= maxF / l
			}
			c.jt1, c.jt2 = j1, j2
			applyPair(c, c.t1.Mul(j1-old1).Add(c.t2.Mul(j2-old2)))
		}
	}

	for i := range contacts {
		c := &contacts[i]
		excess := c.depth - penetrationSlop
		if excess <= 0 {
			continue
		}
		total := c.a.invMass + c.b.invMass
		shift := c.normal.Mul(excess * correctionFactor / total)
		c.a.Position = c.a.Position.Add(shift.Mul(c.a.invMass))
		if !c.b.Static() {
			c.b.Position = c.b.Position.Sub(shift.Mul(c.b.invMass))
		}
	}
}

// tangentBasis returns two unit vectors orthogonal to n and each other.
func tangentBasis(n mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	var t mgl64.Vec3
	if gomath.Abs(n[0]) >= 0.57735 {
		t = mgl64.Vec3{n[1], -n[0], 0}
	} else {
		t = mgl64.Vec3{0, n[2], -n[1]}
	}
	t = t.Normalize()
	return t, n.Cross(t)
}

func relativeVelocity(c *contact) mgl64.Vec3 {
	return c.a.velocityAt(c.ra).Sub(c.b.velocityAt(c.rb))
}

func effectiveMass(c *contact, dir mgl64.Vec3) float64 {
	k := c.a.invMass + c.b.invMass
	rna := c.ra.Cross(dir)
	rnb := c.rb.Cross(dir)
	k += c.a.invInertiaW.Mul3x1(rna).Cross(c.ra).Dot(dir)
	k += c.b.invInertiaW.Mul3x1(rnb).Cross(c.rb).Dot(dir)
	return k
}

func applyPair(c *contact, p mgl64.Vec3) {
	c.a.applyImpulse(p, c.ra)
	c.b.applyImpulse(p.Mul(-1), c.rb)
}
