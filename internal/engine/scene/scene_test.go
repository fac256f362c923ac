package scene

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Faultbox/physics-scene/internal/engine/resource"
	"github.com/Faultbox/physics-scene/pkg/math"
)

func TestAddObjectNamesAreUnique(t *testing.T) {
	g := NewGraph()
	sphere := &resource.Model{Name: "sphere"}
	cube := &resource.Model{Name: "Cube"}

	a, _ := g.AddObject(sphere, math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})
	b, _ := g.AddObject(sphere, math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})
	c, _ := g.AddObject(cube, math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})

	if a.Name != "sphere_0" || b.Name != "sphere_1" || c.Name != "Cube_0" {
		t.Errorf("unexpected names %q %q %q", a.Name, b.Name, c.Name)
	}
	if a.ID == b.ID {
		t.Error("expected distinct actor IDs")
	}
	if g.Len() != 3 {
		t.Errorf("expected 3 actors, got %d", g.Len())
	}
}

func TestAddObjectTransform(t *testing.T) {
	g := NewGraph()
	pos := math.Vec3{X: 1, Y: 2, Z: 3}
	scale := math.Vec3{X: 15, Y: 0.01, Z: 15}

	a, err := g.AddObject(&resource.Model{Name: "Cube"}, pos, scale)
	if err != nil {
		t.Fatalf("AddObject: %v", err)
	}
	if a.Transform.Pos() != pos || a.Transform.Scale() != scale {
		t.Errorf("unexpected transform %+v", a.Transform.Pose())
	}
	if a.Transform.Rotation() != (math.Vec3{}) {
		t.Errorf("expected zero rotation, got %v", a.Transform.Rotation())
	}
}

func TestAddObjectNilModel(t *testing.T) {
	if _, err := NewGraph().AddObject(nil, math.Vec3{}, math.Vec3{}); err == nil {
		t.Error("expected error for nil model")
	}
}

func TestDeleteObject(t *testing.T) {
	g := NewGraph()
	m := &resource.Model{Name: "suzan"}
	first, _ := g.AddObject(m, math.Vec3{}, math.Vec3{})
	second, _ := g.AddObject(m, math.Vec3{}, math.Vec3{})

	if err := g.DeleteObject(first.ID); err != nil {
		t.Fatalf("DeleteObject: %v", err)
	}
	if g.Actor(first.ID) != nil || g.ActorByName(first.Name) != nil {
		t.Error("deleted actor still resolvable")
	}
	if actors := g.Actors(); len(actors) != 1 || actors[0] != second {
		t.Errorf("unexpected remaining actors %v", actors)
	}

	if err := g.DeleteObject(first.ID); !errors.Is(err, ErrActorNotFound) {
		t.Errorf("expected ErrActorNotFound on second delete, got %v", err)
	}

	// Names are not reused after deletion.
	third, _ := g.AddObject(m, math.Vec3{}, math.Vec3{})
	if third.Name != "suzan_2" {
		t.Errorf("expected suzan_2, got %s", third.Name)
	}
}

func TestActorLookup(t *testing.T) {
	g := NewGraph()
	a, _ := g.AddObject(&resource.Model{Name: "sphere"}, math.Vec3{}, math.Vec3{})
	b, _ := g.AddObject(&resource.Model{Name: "sphere"}, math.Vec3{}, math.Vec3{})

	tests := []struct {
		name string
		id   uuid.UUID
		want *Actor
	}{
		{"first", a.ID, a},
		{"second", b.ID, b},
		{"unknown", uuid.New(), nil},
		{"nil id", uuid.Nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Actor(tt.id); got != tt.want {
				t.Errorf("Actor(%s) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}

	if err := g.DeleteObject(uuid.New()); !errors.Is(err, ErrActorNotFound) {
		t.Errorf("expected ErrActorNotFound for unknown id, got %v", err)
	}
	if g.ActorByName("sphere_1") != b {
		t.Error("expected name lookup to find the second sphere")
	}
}

func TestMainCameraDefaults(t *testing.T) {
	cam := NewGraph().MainCamera()
	if cam == nil || cam.Transform == nil {
		t.Fatal("expected a main camera with a transform")
	}
	if cam.MoveSpeed <= 0 || cam.PanSpeed <= 0 || cam.RotationSpeed <= 0 {
		t.Errorf("expected positive camera speeds, got %+v", cam)
	}
}
