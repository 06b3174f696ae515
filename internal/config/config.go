package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SeedAuto   = "auto"
	SeedAlways = "always"
	SeedNever  = "never"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	DBPath   string
	LogDir   string
	LogLevel string
	SeedMode string
}

// LoadFromEnv reads settings from the environment after applying an
// optional .env file in the working directory. Variables already set in
// the environment win over the file.
func LoadFromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		DBPath:   os.Getenv("ILM_DB_PATH"),
		LogDir:   os.Getenv("ILM_LOG_DIR"),
		LogLevel: strings.ToLower(os.Getenv("ILM_LOG_LEVEL")),
		SeedMode: strings.ToLower(os.Getenv("ILM_SEED")),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = "ilm.db"
	}
	if cfg.LogDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.LogDir = filepath.Join(home, ".ilm", "logs")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.SeedMode == "" {
		cfg.SeedMode = SeedAuto
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("DBPath is required")
	}
	if c.LogDir == "" {
		return errors.New("LogDir is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LogLevel must be debug, info, warn or error: %s", c.LogLevel)
	}
	switch c.SeedMode {
	case SeedAuto, SeedAlways, SeedNever:
	default:
		return fmt.Errorf("SeedMode must be auto, always or never: %s", c.SeedMode)
	}
	return nil
}
