package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chtemp switches into a temp dir so no stray .env file leaks into tests.
func chtemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(old)
	})
	return dir
}

// TestLoad_Defaults verifies built-in defaults with no file and no env.
func TestLoad_Defaults(t *testing.T) {
	dir := chtemp(t)
	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ScriptPath != "test/entradas.txt" {
		t.Fatalf("expected default script path, got %q", cfg.ScriptPath)
	}
	if cfg.KeyDelayMs != 10 || cfg.LineDelayMs != 200 {
		t.Fatalf("expected default delays 10/200, got %d/%d", cfg.KeyDelayMs, cfg.LineDelayMs)
	}
}

// TestLoad_FileOverridesDefaults verifies YAML values replace defaults.
func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := chtemp(t)
	path := filepath.Join(dir, "ghosttype.yaml")
	body := "script_path: other.txt\nkey_delay_ms: 0\nline_delay_ms: 50\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ScriptPath != "other.txt" || cfg.KeyDelayMs != 0 || cfg.LineDelayMs != 50 {
		t.Fatalf("expected file values, got %+v", cfg)
	}
}

// TestLoad_EnvOverridesFile verifies env vars win over the config file.
func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := chtemp(t)
	path := filepath.Join(dir, "ghosttype.yaml")
	if err := os.WriteFile(path, []byte("key_delay_ms: 5\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("KEY_DELAY_MS", "25")
	t.Setenv("SCRIPT_PATH", "env.txt")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.KeyDelayMs != 25 || cfg.ScriptPath != "env.txt" {
		t.Fatalf("expected env overrides, got %+v", cfg)
	}
}

// TestLoad_RejectsNegativeDelay verifies validation of delay values.
func TestLoad_RejectsNegativeDelay(t *testing.T) {
	dir := chtemp(t)
	t.Setenv("LINE_DELAY_MS", "-1")
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for negative delay")
	}
}

// TestLoad_RejectsNonIntegerEnv verifies malformed env values fail.
func TestLoad_RejectsNonIntegerEnv(t *testing.T) {
	dir := chtemp(t)
	t.Setenv("KEY_DELAY_MS", "fast")
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for non-integer delay")
	}
}

// TestLoad_RejectsMalformedFile verifies a bad YAML file fails.
func TestLoad_RejectsMalformedFile(t *testing.T) {
	dir := chtemp(t)
	path := filepath.Join(dir, "ghosttype.yaml")
	if err := os.WriteFile(path, []byte("key_delay_ms: [oops"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed config file")
	}
}

// TestLoad_DotEnvFile verifies .env values reach the environment.
func TestLoad_DotEnvFile(t *testing.T) {
	dir := chtemp(t)
	if err := os.WriteFile(".env", []byte("LINE_DELAY_MS=75\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Unsetenv("LINE_DELAY_MS")
	})
	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LineDelayMs != 75 {
		t.Fatalf("expected .env delay 75, got %d", cfg.LineDelayMs)
	}
}
