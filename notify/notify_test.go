package notify

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.AppName == "" {
		t.Error("DefaultConfig() AppName is empty")
	}
	if config.Timeout <= 0 {
		t.Errorf("DefaultConfig() Timeout = %v, want > 0", config.Timeout)
	}
}

func TestNewFillsDefaults(t *testing.T) {
	n := New(Config{})

	if n.config.AppName != DefaultConfig().AppName {
		t.Errorf("AppName = %q, want default", n.config.AppName)
	}
	if n.config.Timeout != DefaultConfig().Timeout {
		t.Errorf("Timeout = %v, want default", n.config.Timeout)
	}
}

func TestNewKeepsExplicitConfig(t *testing.T) {
	n := New(Config{AppName: "myapp", Timeout: time.Second})

	if n.config.AppName != "myapp" {
		t.Errorf("AppName = %q, want %q", n.config.AppName, "myapp")
	}
	if n.config.Timeout != time.Second {
		t.Errorf("Timeout = %v, want 1s", n.config.Timeout)
	}
}

// Send is not exercised here: it talks to the OS notification daemon,
// which is unavailable in CI.
