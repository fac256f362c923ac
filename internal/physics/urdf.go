package physics

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeKind is the collision geometry of a body.
type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
	ShapePlane
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSphere:
		return "sphere"
	case ShapeBox:
		return "box"
	case ShapePlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Shape is a collision shape in body-local coordinates.
type Shape struct {
	Kind        ShapeKind
	Radius      float64    // sphere
	HalfExtents mgl64.Vec3 // box
	Normal      mgl64.Vec3 // plane
	Offset      mgl64.Vec3 // collision origin relative to the body origin
}

// boundingRadius is the radius used for dynamic-vs-dynamic tests.
// Boxes use their largest half extent.
func (s Shape) boundingRadius() float64 {
	switch s.Kind {
	case ShapeSphere:
		return s.Radius
	case ShapeBox:
		return max(s.HalfExtents[0], s.HalfExtents[1], s.HalfExtents[2])
	default:
		return 0
	}
}

// BodyDesc is a body description parsed from a shape file.
type BodyDesc struct {
	Name        string
	Mass        float64    // 0 means static
	Inertia     mgl64.Vec3 // principal moments; derived from the shape when absent
	Shape       Shape
	Friction    float64
	Restitution float64
}

// Static reports whether the body never moves.
func (d *BodyDesc) Static() bool {
	return d.Mass == 0
}

// URDF documents. Only the first link is read, and of it the first
// collision element; collision rpy is ignored.
type urdfRobot struct {
	XMLName xml.Name   `xml:"robot"`
	Name    string     `xml:"name,attr"`
	Links   []urdfLink `xml:"link"`
}

type urdfLink struct {
	Name       string          `xml:"name,attr"`
	Contact    *urdfContact    `xml:"contact"`
	Inertial   *urdfInertial   `xml:"inertial"`
	Collisions []urdfCollision `xml:"collision"`
}

type urdfValue struct {
	Value string `xml:"value,attr"`
}

type urdfContact struct {
	LateralFriction *urdfValue `xml:"lateral_friction"`
	Restitution     *urdfValue `xml:"restitution"`
}

type urdfInertial struct {
	Mass    urdfValue    `xml:"mass"`
	Inertia *urdfInertia `xml:"inertia"`
}

type urdfInertia struct {
	Ixx string `xml:"ixx,attr"`
	Iyy string `xml:"iyy,attr"`
	Izz string `xml:"izz,attr"`
}

type urdfCollision struct {
	Origin   *urdfOrigin  `xml:"origin"`
	Geometry urdfGeometry `xml:"geometry"`
}

type urdfOrigin struct {
	XYZ string `xml:"xyz,attr"`
}

type urdfGeometry struct {
	Sphere *struct {
		Radius string `xml:"radius,attr"`
	} `xml:"sphere"`
	Box *struct {
		Size string `xml:"size,attr"`
	} `xml:"box"`
	Plane *struct {
		Normal string `xml:"normal,attr"`
	} `xml:"plane"`
}

const (
	defaultFriction    = 0.5
	defaultRestitution = 0.0
)

// ParseURDF reads a body description from a URDF document.
func ParseURDF(r io.Reader) (*BodyDesc, error) {
	var robot urdfRobot
	if err := xml.NewDecoder(r).Decode(&robot); err != nil {
		return nil, fmt.Errorf("decode urdf: %w", err)
	}
	if len(robot.Links) == 0 {
		return nil, fmt.Errorf("urdf %q: no link", robot.Name)
	}
	link := robot.Links[0]
	if len(link.Collisions) == 0 {
		return nil, fmt.Errorf("urdf %q: link %q has no collision", robot.Name, link.Name)
	}

	desc := &BodyDesc{
		Name:        robot.Name,
		Friction:    defaultFriction,
		Restitution: defaultRestitution,
	}

	shape, err := parseCollision(link.Collisions[0])
	if err != nil {
		return nil, fmt.Errorf("urdf %q: %w", robot.Name, err)
	}
	desc.Shape = shape

	if link.Inertial != nil {
		if desc.Mass, err = parseFloat(link.Inertial.Mass.Value, 0); err != nil {
			return nil, fmt.Errorf("urdf %q: mass: %w", robot.Name, err)
		}
		if desc.Mass < 0 {
			return nil, fmt.Errorf("urdf %q: negative mass %v", robot.Name, desc.Mass)
		}
		if in := link.Inertial.Inertia; in != nil {
			var vals [3]float64
			for i, s := range []string{in.Ixx, in.Iyy, in.Izz} {
				if vals[i], err = parseFloat(s, 0); err != nil {
					return nil, fmt.Errorf("urdf %q: inertia: %w", robot.Name, err)
				}
			}
			desc.Inertia = mgl64.Vec3(vals)
		}
	}

	if c := link.Contact; c != nil {
		if c.LateralFriction != nil {
			if desc.Friction, err = parseFloat(c.LateralFriction.Value, defaultFriction); err != nil {
				return nil, fmt.Errorf("urdf %q: friction: %w", robot.Name, err)
			}
		}
		if c.Restitution != nil {
			if desc.Restitution, err = parseFloat(c.Restitution.Value, defaultRestitution); err != nil {
				return nil, fmt.Errorf("urdf %q: restitution: %w", robot.Name, err)
			}
		}
	}

	if desc.Shape.Kind == ShapePlane && !desc.Static() {
		return nil, fmt.Errorf("urdf %q: plane bodies must have zero mass", robot.Name)
	}
	if !desc.Static() && desc.Inertia == (mgl64.Vec3{}) {
		desc.Inertia = shapeInertia(desc.Shape, desc.Mass)
	}
	return desc, nil
}

func parseCollision(c urdfCollision) (Shape, error) {
	var s Shape
	if c.Origin != nil && c.Origin.XYZ != "" {
		off, err := parseVec3(c.Origin.XYZ)
		if err != nil {
			return s, fmt.Errorf("collision origin: %w", err)
		}
		s.Offset = off
	}

	g := c.Geometry
	switch {
	case g.Sphere != nil:
		r, err := parseFloat(g.Sphere.Radius, 0)
		if err != nil || r <= 0 {
			return s, fmt.Errorf("sphere radius %q is invalid", g.Sphere.Radius)
		}
		s.Kind = ShapeSphere
		s.Radius = r
	case g.Box != nil:
		size, err := parseVec3(g.Box.Size)
		if err != nil || size[0] <= 0 || size[1] <= 0 || size[2] <= 0 {
			return s, fmt.Errorf("box size %q is invalid", g.Box.Size)
		}
		s.Kind = ShapeBox
		s.HalfExtents = size.Mul(0.5)
	case g.Plane != nil:
		n := mgl64.Vec3{0, 0, 1}
		if g.Plane.Normal != "" {
			var err error
			if n, err = parseVec3(g.Plane.Normal); err != nil || n.Len() == 0 {
				return s, fmt.Errorf("plane normal %q is invalid", g.Plane.Normal)
			}
		}
		s.Kind = ShapePlane
		s.Normal = n.Normalize()
	default:
		return s, fmt.Errorf("unsupported collision geometry")
	}
	return s, nil
}

// shapeInertia returns solid-body principal moments for mass m.
func shapeInertia(s Shape, m float64) mgl64.Vec3 {
	switch s.Kind {
	case ShapeSphere:
		i := 0.4 * m * s.Radius * s.Radius
		return mgl64.Vec3{i, i, i}
	case ShapeBox:
		x, y, z := 2*s.HalfExtents[0], 2*s.HalfExtents[1], 2*s.HalfExtents[2]
		return mgl64.Vec3{
			m / 12 * (y*y + z*z),
			m / 12 * (x*x + z*z),
			m / 12 * (x*x + y*y),
		}
	default:
		return mgl64.Vec3{}
	}
}

func parseFloat(s string, def float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseVec3(s string) (mgl64.Vec3, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("expected 3 components, got %q", s)
	}
	var v mgl64.Vec3
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return mgl64.Vec3{}, err
		}
		v[i] = x
	}
	return v, nil
}
