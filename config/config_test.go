package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Target != "system" {
		t.Errorf("Target = %q, want %q", cfg.Target, "system")
	}
	if cfg.Timeout != Duration(5*time.Second) {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if !cfg.Wait {
		t.Error("Wait = false, want true")
	}
	if cfg.Notify {
		t.Error("Notify = true, want false")
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("valid file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "target: none\ntimeout: 10s\nnotify: true\n")

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}

		if cfg.Target != "none" {
			t.Errorf("Target = %q, want %q", cfg.Target, "none")
		}
		if cfg.Timeout != Duration(10*time.Second) {
			t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
		}
		if !cfg.Notify {
			t.Error("Notify = false, want true")
		}
		// Unset keys keep their defaults
		if !cfg.Wait {
			t.Error("Wait = false, want default true")
		}
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		path := writeConfig(t, "target: [unclosed\n")

		if _, err := LoadFile(path); err == nil {
			t.Error("LoadFile() expected error for invalid yaml")
		}
	})

	t.Run("non-positive timeout fails", func(t *testing.T) {
		path := writeConfig(t, "timeout: -1s\n")

		if _, err := LoadFile(path); err == nil {
			t.Error("LoadFile() expected error for negative timeout")
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("LoadFile() expected error for missing file")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("no file yields defaults", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		chdir(t, t.TempDir())

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg != Default() {
			t.Errorf("Load() = %+v, want defaults", cfg)
		}
	})

	t.Run("env var path wins", func(t *testing.T) {
		path := writeConfig(t, "target: none\n")
		t.Setenv(EnvConfigPath, path)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Target != "none" {
			t.Errorf("Target = %q, want %q", cfg.Target, "none")
		}
	})

	t.Run("missing env var path fails", func(t *testing.T) {
		t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for missing OPENURL_CONFIG file")
		}
	})

	t.Run("xdg config dir searched", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		chdir(t, t.TempDir())

		dir := filepath.Join(xdg, "openurl")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte("output: json\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Output != "json" {
			t.Errorf("Output = %q, want %q", cfg.Output, "json")
		}
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
