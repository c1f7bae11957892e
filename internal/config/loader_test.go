package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default differs from Default():\n%+v\n%+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := writeFile(t, "custom.yaml", `
tick:
  interval_ms: 40
seed: 77
keys:
  fire: ["f"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TickInterval() != 40*time.Millisecond || cfg.Seed != 77 {
		t.Errorf("tick = %v seed = %d", cfg.TickInterval(), cfg.Seed)
	}
	if !reflect.DeepEqual(cfg.Keys.Fire, []string{"f"}) {
		t.Errorf("fire keys = %v", cfg.Keys.Fire)
	}
	if !reflect.DeepEqual(cfg.Keys.Left, Default().Keys.Left) {
		t.Error("unset keys should keep their defaults")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, expected default", cfg.Log.Level)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "custom.toml", `
seed = 5

[tick]
interval_ms = 16

[log]
level = "debug"
prefix = "sim"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Tick.IntervalMS != 16 || cfg.Seed != 5 || cfg.Log.Level != "debug" || cfg.Log.Prefix != "sim" {
		t.Errorf("unexpected config %+v", cfg)
	}

	rc := cfg.Runtime()
	if rc.TickInterval != 16*time.Millisecond || rc.Seed != 5 {
		t.Errorf("runtime config = %+v", rc)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit file should fail")
	}

	bad := writeFile(t, "bad.yaml", "tick: [oops")
	if _, err := Load(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := writeFile(t, "invalid.yaml", "tick:\n  interval_ms: 0\n")
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "interval_ms") {
		t.Errorf("zero interval error = %v", err)
	}
}

func TestLoadSearchPathErrors(t *testing.T) {
	t.Run("malformed user config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		dir := filepath.Join(home, ".space-shooter")
		if err := os.MkdirAll(dir, 0o700); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("tick: [oops"), 0o600); err != nil {
			t.Fatal(err)
		}

		_, err := Load("")
		if err == nil || !strings.Contains(err.Error(), "config.yaml") {
			t.Errorf("error = %v, expected a parse error naming the user file", err)
		}
	})

	t.Run("malformed local config", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		wd := t.TempDir()
		oldWD, wdErr := os.Getwd()
		if wdErr != nil {
			t.Fatal(wdErr)
		}
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(oldWD) })
		if err := os.MkdirAll("configs", 0o700); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join("configs", fileName), []byte("seed: [1"), 0o600); err != nil {
			t.Fatal(err)
		}

		_, err := Load("")
		if err == nil || !strings.Contains(err.Error(), fileName) {
			t.Errorf("error = %v, expected a parse error naming the local file", err)
		}
	})

	t.Run("valid user config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		dir := filepath.Join(home, ".space-shooter")
		if err := os.MkdirAll(dir, 0o700); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("seed: 9\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Seed != 9 {
			t.Errorf("seed = %d, expected 9 from the user file", cfg.Seed)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"default", func(*Config) {}, ""},
		{"negative interval", func(c *Config) { c.Tick.IntervalMS = -5 }, "interval_ms"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"unbound command", func(c *Config) { c.Keys.Laser = nil }, "no key bound to select-laser"},
		{"duplicate key", func(c *Config) { c.Keys.God = []string{"q"} }, `"q" bound to both`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, expected it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "interval_ms: 20") {
		t.Errorf("marshaled config missing tick interval:\n%s", data)
	}
}
