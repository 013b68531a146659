// Package config loads optional defaults for the openurl CLI from a YAML
// file. Configuration is entirely optional: a missing file yields the
// built-in defaults, and command-line flags always override file values.
//
// The file is searched in order:
//  1. the path in the OPENURL_CONFIG environment variable
//  2. ./openurl.yaml
//  3. $XDG_CONFIG_HOME/openurl/openurl.yaml (or ~/.config/openurl/openurl.yaml)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file search path when set.
const EnvConfigPath = "OPENURL_CONFIG"

// FileName is the config file name searched in the standard locations.
const FileName = "openurl.yaml"

// Duration wraps time.Duration so YAML values can use the familiar
// "5s" / "1m30s" string form.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config holds CLI defaults loaded from the config file.
type Config struct {
	// Target is the default browser target: default, system, or none.
	Target string `yaml:"target"`

	// Timeout bounds the browser launch command.
	Timeout Duration `yaml:"timeout"`

	// Wait reports whether to wait for the opener process to exit.
	Wait bool `yaml:"wait"`

	// Notify raises a desktop notification when a launch fails.
	Notify bool `yaml:"notify"`

	// Output is the default output format: default or json.
	Output string `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Target:  "system",
		Timeout: Duration(5 * time.Second),
		Wait:    true,
		Notify:  false,
		Output:  "default",
	}
}

// Load reads configuration from the first file found in the search path,
// applied on top of Default. A missing file is not an error; a present but
// unreadable or invalid file is.
func Load() (Config, error) {
	path, err := findFile()
	if err != nil {
		return Default(), err
	}
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile reads configuration from the given YAML file, applied on top of
// Default.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 - path comes from the fixed search locations or the user's own flag
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Timeout <= 0 {
		return cfg, fmt.Errorf("invalid timeout in config file %s: %v", path, cfg.Timeout)
	}

	return cfg, nil
}

// findFile returns the first existing config file in the search path, or
// "" when none exists. A path set via OPENURL_CONFIG must exist.
func findFile() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file from %s not found: %w", EnvConfigPath, err)
		}
		return path, nil
	}

	candidates := []string{FileName}
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "openurl", FileName))
	}

	for _, path := range candidates {
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to check config file %s: %w", path, err)
		}
	}

	return "", nil
}

// userConfigDir resolves $XDG_CONFIG_HOME with the usual ~/.config
// fallback, or "" when no home directory is available.
func userConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}
