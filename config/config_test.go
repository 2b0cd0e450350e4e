package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/minilog/core"
	"github.com/philipp01105/minilog/out"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minilog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Level != "NONE" {
		t.Errorf("Level = %q, want NONE", cfg.Level)
	}
	if cfg.Timestamps == nil || !*cfg.Timestamps {
		t.Error("Timestamps should default to enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		level      string
		timestamps bool
	}{
		{"full", "level: debug\ntimestamps: false\n", "debug", false},
		{"level only", "level: warn\n", "warn", true},
		{"numeric level", "level: 3\n", "3", true},
		{"string bool", "timestamps: \"false\"\n", "NONE", false},
		{"empty", "", "NONE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFile(writeFile(t, tt.content))
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if cfg.Level != tt.level {
				t.Errorf("Level = %q, want %q", cfg.Level, tt.level)
			}
			if cfg.Timestamps == nil || *cfg.Timestamps != tt.timestamps {
				t.Errorf("Timestamps = %v, want %v", cfg.Timestamps, tt.timestamps)
			}
		})
	}
}

func TestLoadFile_ExpandsEnv(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "trace")
	cfg, err := LoadFile(writeFile(t, "level: ${APP_LOG_LEVEL}\n"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Level != "trace" {
		t.Errorf("Level = %q, want trace", cfg.Level)
	}
}

func TestLoadFile_UnknownKeys(t *testing.T) {
	_, err := LoadFile(writeFile(t, "level: info\ncolour: red\nformat: json\n"))
	if err == nil {
		t.Fatal("expected error for unknown keys")
	}
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), err)
	}
	if !strings.Contains(errs[0].Error(), `"colour"`) || !strings.Contains(errs[1].Error(), `"format"`) {
		t.Errorf("errors = %v", errs)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("missing file error = %v, want not-exist", err)
	}
	if _, err := LoadFile(writeFile(t, "level: [unclosed\n")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "error")
	t.Setenv(EnvTimestamps, "0")

	cfg, err := LoadFile(writeFile(t, "level: debug\ntimestamps: true\n"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Level != "error" {
		t.Errorf("Level = %q, want error", cfg.Level)
	}
	if cfg.Timestamps == nil || *cfg.Timestamps {
		t.Error("MINILOG_TIMESTAMPS=0 should disable timestamps")
	}
}

func TestFromEnv_InvalidBool(t *testing.T) {
	t.Setenv(EnvTimestamps, "sometimes")
	cfg := Default()
	if err := cfg.FromEnv(); err == nil || !strings.Contains(err.Error(), EnvTimestamps) {
		t.Errorf("FromEnv() error = %v, want error naming %s", err, EnvTimestamps)
	}
}

func TestLoad_NoPath(t *testing.T) {
	t.Setenv(EnvLevel, "info")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Level: "verbose"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid level")
	}
	if errors.Cause(multierr.Errors(err)[0]) != core.ErrUnknownLevel {
		t.Errorf("error = %v, want ErrUnknownLevel", err)
	}
}

func TestApply(t *testing.T) {
	prevLevel := core.CurrentLevel()
	prevTimestamps := out.Timestamps()
	defer func() {
		core.SetLevel(prevLevel)
		out.SetTimestamps(prevTimestamps)
	}()

	disabled := false
	cfg := Config{Level: "debug", Timestamps: &disabled}
	if err := cfg.Apply(); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if core.CurrentLevel() != core.DebugLevel {
		t.Errorf("level = %v, want DEBUG", core.CurrentLevel())
	}
	if out.Timestamps() {
		t.Error("timestamps should be disabled")
	}

	bad := Config{Level: "loud"}
	if err := bad.Apply(); err == nil {
		t.Error("Apply() should reject an invalid level")
	}
	if core.CurrentLevel() != core.DebugLevel {
		t.Error("a rejected config must not change the level")
	}
}
