package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testdataDir returns the absolute path to the testdata/config directory.
func testdataDir(t *testing.T) string {
	t.Helper()
	// Navigate from internal/config/ up to project root, then into testdata/config.
	dir, err := filepath.Abs(filepath.Join("..", "..", "testdata", "config"))
	if err != nil {
		t.Fatalf("failed to resolve testdata dir: %v", err)
	}
	return dir
}

// writeTempFile creates a temporary file with the given content and returns its path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file %s: %v", path, err)
	}
	return path
}

func Test_LoadConfig_Cases(t *testing.T) {
	tests := []struct {
		name        string
		setupPath   func(t *testing.T) string
		wantErr     bool
		errContains string
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid config loads all fields",
			setupPath: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(testdataDir(t), "valid.yaml")
			},
			validate: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg == nil {
					t.Fatal("expected non-nil config")
				}
				if cfg.Paths.Battery != "/sys/class/power_supply/BAT0/capacity" {
					t.Errorf("Paths.Battery = %q", cfg.Paths.Battery)
				}
				if cfg.Paths.Thermal != "/sys/class/thermal/thermal_zone3/temp" {
					t.Errorf("Paths.Thermal = %q", cfg.Paths.Thermal)
				}
				if cfg.Clock.Timezone != "UTC" {
					t.Errorf("Clock.Timezone = %q, want UTC", cfg.Clock.Timezone)
				}
				if cfg.Log.Level != "debug" {
					t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
				}
			},
		},
		{
			name: "partial config keeps defaults",
			setupPath: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(testdataDir(t), "partial.yaml")
			},
			validate: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg == nil {
					t.Fatal("expected non-nil config")
				}
				def := DefaultConfig()
				if cfg.Paths != def.Paths {
					t.Errorf("Paths = %+v, want defaults %+v", cfg.Paths, def.Paths)
				}
				if cfg.Log.Level != "info" {
					t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
				}
				if cfg.Clock.Timezone != "UTC" {
					t.Errorf("Clock.Timezone = %q, want UTC", cfg.Clock.Timezone)
				}
			},
		},
		{
			name: "missing file returns read error",
			setupPath: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
			wantErr:     true,
			errContains: "read",
			validate: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg != nil {
					t.Error("expected nil config for missing file")
				}
			},
		},
		{
			name: "invalid YAML returns unmarshal error",
			setupPath: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(testdataDir(t), "invalid.yaml")
			},
			wantErr:     true,
			errContains: "unmarshal",
			validate: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg != nil {
					t.Error("expected nil config for invalid YAML")
				}
			},
		},
		{
			name: "unknown time zone is rejected",
			setupPath: func(t *testing.T) string {
				t.Helper()
				return writeTempFile(t, "tz.yaml", "clock:\n  timezone: Not/AZone\n")
			},
			wantErr:     true,
			errContains: "timezone",
		},
		{
			name: "unknown log level is rejected",
			setupPath: func(t *testing.T) string {
				t.Helper()
				return writeTempFile(t, "log.yaml", "log:\n  level: chatty\n")
			},
			wantErr:     true,
			errContains: "log.level",
		},
		{
			name: "emptied battery path is rejected",
			setupPath: func(t *testing.T) string {
				t.Helper()
				return writeTempFile(t, "bat.yaml", "paths:\n  battery: \"\"\n")
			},
			wantErr:     true,
			errContains: "paths.battery",
		},
		{
			name: "empty file returns defaults",
			setupPath: func(t *testing.T) string {
				t.Helper()
				return writeTempFile(t, "empty.yaml", "")
			},
			validate: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg == nil {
					t.Fatal("expected non-nil config for empty file")
				}
				if *cfg != *DefaultConfig() {
					t.Errorf("config = %+v, want defaults", *cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setupPath(t)
			cfg, err := LoadConfig(path)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(strings.ToLower(err.Error()), strings.ToLower(tt.errContains)) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func Test_DefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if cfg.Paths.Battery != "/sys/class/power_supply/BAT1/capacity" {
		t.Errorf("Paths.Battery = %q", cfg.Paths.Battery)
	}
	if cfg.Paths.Thermal != "/sys/class/thermal/thermal_zone0/temp" {
		t.Errorf("Paths.Thermal = %q", cfg.Paths.Thermal)
	}
	if cfg.Clock.Timezone != "" {
		t.Errorf("Clock.Timezone = %q, want empty (local zone)", cfg.Clock.Timezone)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() does not validate: %v", err)
	}
}

func Test_DefaultConfig_ReturnsNewInstance(t *testing.T) {
	cfg1 := DefaultConfig()
	cfg2 := DefaultConfig()

	if cfg1 == cfg2 {
		t.Error("DefaultConfig() should return a new instance each time, got same pointer")
	}
}
