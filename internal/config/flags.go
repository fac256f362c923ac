package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagHeadless   = flag.Bool("headless", false, "Run without a window")
	flagFrames     = flag.Int("frames", 0, "Frames to simulate in headless mode")
	flagMeshes     = flag.Int("meshes", 0, "Number of sphere/suzan pairs to spawn")
	flagProject    = flag.String("project", "", "Project asset path")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagHeadless {
		cfg.Game.Headless = true
	}
	if *flagFrames > 0 {
		cfg.Game.Frames = *flagFrames
	}
	if *flagMeshes > 0 {
		cfg.Scene.MeshCount = *flagMeshes
	}
	if *flagProject != "" {
		cfg.Data.ProjectPath = *flagProject
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
