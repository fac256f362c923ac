// Package resource loads scene and model descriptors from a project directory.
//
// Layout:
//
//	<project>/Resource/Scenes/<name>.scene.yaml
//	<project>/Resource/Models/<name>.model.yaml
//	<project>/Externals/Physics/*.urdf
package resource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/physics-scene/internal/logger"
)

// ErrNotFound is returned when a scene or model descriptor does not exist.
var ErrNotFound = errors.New("resource not found")

// Model describes a renderable mesh by its local bounds.
type Model struct {
	Name   string     `yaml:"name"`
	Bounds [6]float32 `yaml:"bounds"` // minX, minY, minZ, maxX, maxY, maxZ
	Color  [3]float32 `yaml:"color"`
}

// Scene describes a scene resource.
type Scene struct {
	Name       string     `yaml:"name"`
	ClearColor [3]float32 `yaml:"clear_color"`
	Models     []string   `yaml:"models"` // Preloaded on open
}

// Manager resolves resources under a project path and caches models.
type Manager struct {
	projectPath string
	models      map[string]*Model
	scene       *Scene
	log         *zap.Logger
}

// NewManager creates a manager rooted at projectPath.
func NewManager(projectPath string) (*Manager, error) {
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving project path %s: %w", projectPath, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("project path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project path %s is not a directory", abs)
	}
	return &Manager{
		projectPath: abs,
		models:      make(map[string]*Model),
		log:         logger.Named("resource"),
	}, nil
}

// ProjectPath returns the absolute project root.
func (m *Manager) ProjectPath() string {
	return m.projectPath
}

// CurrentScene returns the open scene, or nil.
func (m *Manager) CurrentScene() *Scene {
	return m.scene
}

// OpenScene loads the named scene descriptor and preloads its models.
func (m *Manager) OpenScene(name string) error {
	var sc Scene
	path := filepath.Join(m.projectPath, "Resource", "Scenes", name+".scene.yaml")
	if err := readYAML(path, &sc); err != nil {
		return fmt.Errorf("scene %q: %w", name, err)
	}
	if sc.Name == "" {
		sc.Name = name
	}

	for _, modelName := range sc.Models {
		if _, err := m.GetModel(modelName); err != nil {
			return fmt.Errorf("scene %q: %w", name, err)
		}
	}

	m.scene = &sc
	m.log.Info("scene opened", zap.String("scene", sc.Name), zap.Int("models", len(sc.Models)))
	return nil
}

// GetModel returns the named model, loading it on first use.
func (m *Manager) GetModel(name string) (*Model, error) {
	if model, ok := m.models[name]; ok {
		return model, nil
	}

	var model Model
	path := filepath.Join(m.projectPath, "Resource", "Models", name+".model.yaml")
	if err := readYAML(path, &model); err != nil {
		return nil, fmt.Errorf("model %q: %w", name, err)
	}
	if model.Name == "" {
		model.Name = name
	}
	b := model.Bounds
	if b[0] > b[3] || b[1] > b[4] || b[2] > b[5] {
		return nil, fmt.Errorf("model %q: inverted bounds %v", name, b)
	}

	m.models[name] = &model
	m.log.Debug("model loaded", zap.String("model", name))
	return &model, nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
