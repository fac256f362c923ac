// Package config handles demo configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Game     GameConfig     `yaml:"game"`
	Scene    SceneConfig    `yaml:"scene"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// GameConfig holds frame loop settings.
type GameConfig struct {
	Headless bool `yaml:"headless"` // Run without a window
	Frames   int  `yaml:"frames"`   // Frames to simulate in headless mode
}

// SceneConfig holds the physics level's scene dressing.
type SceneConfig struct {
	Name           string       `yaml:"name"`
	MeshCount      int          `yaml:"mesh_count"`
	Seed           int64        `yaml:"seed"` // 0 seeds from the clock
	MinSpawnHeight float32      `yaml:"min_spawn_height"`
	Camera         CameraConfig `yaml:"camera"`
}

// CameraConfig holds the main camera start pose and speeds.
type CameraConfig struct {
	Position      [3]float32 `yaml:"position"`
	Pitch         float32    `yaml:"pitch"`
	Yaw           float32    `yaml:"yaw"`
	MoveSpeed     float32    `yaml:"move_speed"`
	PanSpeed      float32    `yaml:"pan_speed"`
	RotationSpeed float32    `yaml:"rotation_speed"`
}

// PhysicsConfig holds physics world settings.
type PhysicsConfig struct {
	Gravity     [3]float64 `yaml:"gravity"`
	PlaneShape  string     `yaml:"plane_shape"`
	SphereShape string     `yaml:"sphere_shape"`
	SuzanShape  string     `yaml:"suzan_shape"`
}

// DataConfig holds asset locations.
type DataConfig struct {
	ProjectPath string `yaml:"project_path"` // Root holding Resource/ and Externals/
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Game: GameConfig{
			Headless: false,
			Frames:   600,
		},
		Scene: SceneConfig{
			Name:           "physics_scene",
			MeshCount:      10,
			Seed:           0,
			MinSpawnHeight: 1.0,
			Camera: CameraConfig{
				Position:      [3]float32{12.5, 12.5, 13.8},
				Pitch:         5.62,
				Yaw:           0.67,
				MoveSpeed:     10.0,
				PanSpeed:      0.05,
				RotationSpeed: 0.005,
			},
		},
		Physics: PhysicsConfig{
			Gravity:     [3]float64{0, -98, 0},
			PlaneShape:  "Externals/Physics/plane.urdf",
			SphereShape: "Externals/Physics/sphere.urdf",
			SuzanShape:  "Externals/Physics/suzan.urdf",
		},
		Data: DataConfig{
			ProjectPath: "assets",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
