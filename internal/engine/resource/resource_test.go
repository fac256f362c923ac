package resource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Resource", "Models", "sphere.model.yaml"), `
name: sphere
bounds: [-1, -1, -1, 1, 1, 1]
color: [0.9, 0.4, 0.2]
`)
	writeFile(t, filepath.Join(dir, "Resource", "Models", "broken.model.yaml"), `
bounds: [1, 0, 0, -1, 1, 1]
`)
	writeFile(t, filepath.Join(dir, "Resource", "Scenes", "physics_scene.scene.yaml"), `
name: physics_scene
clear_color: [0.1, 0.1, 0.15]
models: [sphere]
`)
	writeFile(t, filepath.Join(dir, "Resource", "Scenes", "needs_missing.scene.yaml"), `
models: [nope]
`)
	return dir
}

func TestNewManagerRejectsMissingDir(t *testing.T) {
	if _, err := NewManager(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing project path")
	}
}

func TestOpenScene(t *testing.T) {
	m, err := NewManager(newProject(t))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if err := m.OpenScene("physics_scene"); err != nil {
		t.Fatalf("OpenScene: %v", err)
	}
	sc := m.CurrentScene()
	if sc == nil || sc.Name != "physics_scene" {
		t.Fatalf("unexpected current scene %+v", sc)
	}
	if _, ok := m.models["sphere"]; !ok {
		t.Error("expected scene models to be preloaded")
	}
}

func TestOpenSceneErrors(t *testing.T) {
	m, err := NewManager(newProject(t))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if err := m.OpenScene("unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown scene, got %v", err)
	}
	if err := m.OpenScene("needs_missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for scene with missing model, got %v", err)
	}
	if m.CurrentScene() != nil {
		t.Error("failed opens must not replace the current scene")
	}
}

func TestGetModel(t *testing.T) {
	m, err := NewManager(newProject(t))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	a, err := m.GetModel("sphere")
	if err != nil {
		t.Fatalf("GetModel: %v", err)
	}
	if a.Bounds != [6]float32{-1, -1, -1, 1, 1, 1} {
		t.Errorf("unexpected bounds %v", a.Bounds)
	}
	b, _ := m.GetModel("sphere")
	if a != b {
		t.Error("expected cached model on second lookup")
	}

	if _, err := m.GetModel("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := m.GetModel("broken"); err == nil {
		t.Error("expected error for inverted bounds")
	}
}
