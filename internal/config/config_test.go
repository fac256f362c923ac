package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Game.Headless {
		t.Error("expected headless to be false by default")
	}

	if cfg.Scene.Name != "physics_scene" {
		t.Errorf("expected scene physics_scene, got %s", cfg.Scene.Name)
	}
	if cfg.Scene.MeshCount != 10 {
		t.Errorf("expected mesh count 10, got %d", cfg.Scene.MeshCount)
	}
	if cfg.Scene.Camera.Position != [3]float32{12.5, 12.5, 13.8} {
		t.Errorf("unexpected camera position %v", cfg.Scene.Camera.Position)
	}

	if cfg.Physics.Gravity != [3]float64{0, -98, 0} {
		t.Errorf("expected gravity (0,-98,0), got %v", cfg.Physics.Gravity)
	}
	if cfg.Physics.PlaneShape != "Externals/Physics/plane.urdf" {
		t.Errorf("unexpected plane shape %s", cfg.Physics.PlaneShape)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true

game:
  headless: true
  frames: 120

scene:
  mesh_count: 4
  seed: 42
  camera:
    move_speed: 20

physics:
  gravity: [0, -9.8, 0]

data:
  project_path: "/opt/demo"

logging:
  level: "debug"
  log_file: "scene.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if !cfg.Game.Headless || cfg.Game.Frames != 120 {
		t.Errorf("expected headless with 120 frames, got %+v", cfg.Game)
	}
	if cfg.Scene.MeshCount != 4 || cfg.Scene.Seed != 42 {
		t.Errorf("unexpected scene config %+v", cfg.Scene)
	}
	if cfg.Scene.Camera.MoveSpeed != 20 {
		t.Errorf("expected move speed 20, got %v", cfg.Scene.Camera.MoveSpeed)
	}
	// Unset nested fields keep their defaults.
	if cfg.Scene.Camera.RotationSpeed != 0.005 {
		t.Errorf("expected default rotation speed, got %v", cfg.Scene.Camera.RotationSpeed)
	}
	if cfg.Scene.Name != "physics_scene" {
		t.Errorf("expected default scene name, got %s", cfg.Scene.Name)
	}
	if cfg.Physics.Gravity != [3]float64{0, -9.8, 0} {
		t.Errorf("expected gravity from file, got %v", cfg.Physics.Gravity)
	}
	if cfg.Data.ProjectPath != "/opt/demo" {
		t.Errorf("expected project path /opt/demo, got %s", cfg.Data.ProjectPath)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "scene.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
scene:
  mesh_count: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero meshes", func(c *Config) { c.Scene.MeshCount = 0 }, false},
		{"negative meshes", func(c *Config) { c.Scene.MeshCount = -1 }, true},
		{"empty scene name", func(c *Config) { c.Scene.Name = "" }, true},
		{"headless without frames", func(c *Config) { c.Game.Headless = true; c.Game.Frames = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvProjectPath, "/srv/assets")
	t.Setenv(EnvSeed, "7")

	cfg := Default()
	if err := applyEnv(cfg); err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level warn, got %s", cfg.Logging.Level)
	}
	if cfg.Data.ProjectPath != "/srv/assets" {
		t.Errorf("expected project path from env, got %s", cfg.Data.ProjectPath)
	}
	if cfg.Scene.Seed != 7 {
		t.Errorf("expected seed 7, got %d", cfg.Scene.Seed)
	}
}

func TestApplyEnvBadSeed(t *testing.T) {
	t.Setenv(EnvSeed, "seven")
	if err := applyEnv(Default()); err == nil {
		t.Error("expected error for non-numeric seed")
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvProjectPath+"=/from/dotenv\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Setenv(EnvProjectPath, "")
	os.Unsetenv(EnvProjectPath)

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if got := os.Getenv(EnvProjectPath); got != "/from/dotenv" {
		t.Errorf("expected value from .env, got %q", got)
	}

	if err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should not be an error, got %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "headless flags",
			setup: func() {
				*flagHeadless = true
				*flagFrames = 30
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Game.Headless || cfg.Game.Frames != 30 {
					t.Errorf("expected headless with 30 frames, got %+v", cfg.Game)
				}
			},
			teardown: func() {
				*flagHeadless = false
				*flagFrames = 0
			},
		},
		{
			name:  "meshes flag",
			setup: func() { *flagMeshes = 3 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.MeshCount != 3 {
					t.Errorf("expected 3 meshes, got %d", cfg.Scene.MeshCount)
				}
			},
			teardown: func() { *flagMeshes = 0 },
		},
		{
			name:  "project flag",
			setup: func() { *flagProject = "/tmp/project" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Data.ProjectPath != "/tmp/project" {
					t.Errorf("expected project path /tmp/project, got %s", cfg.Data.ProjectPath)
				}
			},
			teardown: func() { *flagProject = "" },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
scene:
  mesh_count: 6
logging:
  level: "error"
data:
  project_path: "/from/file"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	os.Chdir(tmpDir)

	t.Setenv(EnvLogLevel, "warn")
	*flagConfig = configPath
	*flagMeshes = 2
	defer func() {
		*flagConfig = ""
		*flagMeshes = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Flag beats file.
	if cfg.Scene.MeshCount != 2 {
		t.Errorf("expected mesh count 2 from flag, got %d", cfg.Scene.MeshCount)
	}
	// Env beats file.
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level warn from env, got %s", cfg.Logging.Level)
	}
	// File beats defaults.
	if cfg.Data.ProjectPath != "/from/file" {
		t.Errorf("expected project path from file, got %s", cfg.Data.ProjectPath)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Scene.MeshCount = 12

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Scene.MeshCount != 12 {
		t.Errorf("expected saved mesh count 12, got %d", loaded.Scene.MeshCount)
	}
}
