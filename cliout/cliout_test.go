package cliout

import (
	"strings"
	"testing"

	"github.com/jongio/openurl-core/testutil"
)

func TestSetFormat(t *testing.T) {
	defer func() { _ = SetFormat("default") }()

	tests := []struct {
		name    string
		format  string
		want    Format
		wantErr bool
	}{
		{"default", "default", FormatDefault, false},
		{"empty means default", "", FormatDefault, false},
		{"json", "json", FormatJSON, false},
		{"invalid", "yaml", FormatDefault, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = SetFormat("default")
			err := SetFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if got := GetFormat(); got != tt.want {
				t.Errorf("GetFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsJSON(t *testing.T) {
	defer func() { _ = SetFormat("default") }()

	_ = SetFormat("json")
	if !IsJSON() {
		t.Error("IsJSON() = false after SetFormat(json)")
	}

	_ = SetFormat("default")
	if IsJSON() {
		t.Error("IsJSON() = true after SetFormat(default)")
	}
}

func TestPrint(t *testing.T) {
	defer func() { _ = SetFormat("default") }()

	t.Run("json format marshals data", func(t *testing.T) {
		_ = SetFormat("json")

		out := testutil.CaptureOutput(t, func() error {
			return Print(map[string]string{"url": "https://example.com"}, func() {
				Plain("should not run")
			})
		})

		if !strings.Contains(out, `"url": "https://example.com"`) {
			t.Errorf("Print() json output = %q", out)
		}
		if strings.Contains(out, "should not run") {
			t.Error("formatter ran in json mode")
		}
	})

	t.Run("default format runs formatter", func(t *testing.T) {
		_ = SetFormat("default")

		out := testutil.CaptureOutput(t, func() error {
			return Print(nil, func() { Plain("formatted") })
		})

		if !strings.Contains(out, "formatted") {
			t.Errorf("Print() default output = %q", out)
		}
	})
}

func TestMessageHelpers(t *testing.T) {
	NoColor()
	defer ForceColor()

	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{"success", func() { Success("opened %s", "https://example.com") }, "opened https://example.com"},
		{"error", func() { Error("failed: %v", "boom") }, "failed: boom"},
		{"warning", func() { Warning("soft failure") }, "soft failure"},
		{"info", func() { Info("opening browser") }, "opening browser"},
		{"label", func() { Label("URL", "https://example.com") }, "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := testutil.CaptureOutput(t, func() error {
				tt.fn()
				return nil
			})
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}
