package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("LoadConfig = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_ClampsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		check func(t *testing.T, cfg Config)
	}{
		{
			name: "negative precision",
			yaml: "precision: -3\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Precision != 6 {
					t.Fatalf("Precision = %d, want 6", cfg.Precision)
				}
			},
		},
		{
			name: "huge precision",
			yaml: "precision: 40\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Precision != 17 {
					t.Fatalf("Precision = %d, want 17", cfg.Precision)
				}
			},
		},
		{
			name: "negative ttl",
			yaml: "cache_ttl_seconds: -1\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.CacheTTLSeconds != 0 {
					t.Fatalf("CacheTTLSeconds = %d, want 0", cfg.CacheTTLSeconds)
				}
			},
		},
		{
			name: "empty build dir",
			yaml: "build_dir: \"\"\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.BuildDir != "build" {
					t.Fatalf("BuildDir = %q, want build", cfg.BuildDir)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			cfg, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestSaveConfig_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yml")
	want := Config{Precision: 9, CacheTTLSeconds: 60, BuildDir: "out", DefaultFunction: "rosen"}
	if err := SaveConfig(want, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}
