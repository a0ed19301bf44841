// Package config loads typing configuration for ghosttype.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultScriptPath  = "test/entradas.txt"
	defaultKeyDelayMs  = 10
	defaultLineDelayMs = 200
)

// Config holds runtime configuration values.
type Config struct {
	ScriptPath  string
	KeyDelayMs  int
	LineDelayMs int
}

// fileConfig mirrors the optional YAML config file. Pointer fields
// distinguish absent keys from explicit zero values.
type fileConfig struct {
	ScriptPath  string `yaml:"script_path"`
	KeyDelayMs  *int   `yaml:"key_delay_ms"`
	LineDelayMs *int   `yaml:"line_delay_ms"`
}

// Load reads configuration from defaults, an optional YAML file, and
// environment variables, in that order of precedence. A .env file in the
// working directory is loaded into the environment first.
func Load(path string) (Config, error) {
	cfg := Config{
		ScriptPath:  defaultScriptPath,
		KeyDelayMs:  defaultKeyDelayMs,
		LineDelayMs: defaultLineDelayMs,
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	if err := loadFile(path, &cfg); err != nil {
		return Config{}, err
	}

	cfg.ScriptPath = envString("SCRIPT_PATH", cfg.ScriptPath)

	keyDelay, err := envInt("KEY_DELAY_MS", cfg.KeyDelayMs)
	if err != nil {
		return Config{}, err
	}
	cfg.KeyDelayMs = keyDelay

	lineDelay, err := envInt("LINE_DELAY_MS", cfg.LineDelayMs)
	if err != nil {
		return Config{}, err
	}
	cfg.LineDelayMs = lineDelay

	if cfg.KeyDelayMs < 0 {
		return Config{}, fmt.Errorf("KEY_DELAY_MS must be >= 0")
	}
	if cfg.LineDelayMs < 0 {
		return Config{}, fmt.Errorf("LINE_DELAY_MS must be >= 0")
	}
	if strings.TrimSpace(cfg.ScriptPath) == "" {
		return Config{}, errors.New("SCRIPT_PATH must not be empty")
	}

	return cfg, nil
}

// loadFile applies values from a YAML config file. A missing file is not an
// error; a malformed one is.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if strings.TrimSpace(fc.ScriptPath) != "" {
		cfg.ScriptPath = fc.ScriptPath
	}
	if fc.KeyDelayMs != nil {
		cfg.KeyDelayMs = *fc.KeyDelayMs
	}
	if fc.LineDelayMs != nil {
		cfg.LineDelayMs = *fc.LineDelayMs
	}
	return nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}
