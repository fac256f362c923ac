package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read after the config file and before flags.
const (
	EnvLogLevel    = "PHYSICS_SCENE_LOG_LEVEL"
	EnvProjectPath = "PHYSICS_SCENE_PROJECT_PATH"
	EnvSeed        = "PHYSICS_SCENE_SEED"
)

// loadDotEnv loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error. Variables already set are kept.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// applyEnv applies environment overrides to the config.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvProjectPath); v != "" {
		cfg.Data.ProjectPath = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Scene.Seed = seed
	}
	return nil
}
