// Package settings provides process-wide animation settings, optionally
// loaded from a bismuth.yaml file and overridden by the environment.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings contains the animation policy for the process.
type Settings struct {
	// EnableAnimations disables all animations when false; every played
	// animation skips straight to its final value.
	EnableAnimations bool `yaml:"enable-animations"`

	// Slowdown is a factor applied to timed animation durations by hosts
	// that honor it. Values above 1 slow animations down for debugging.
	Slowdown float64 `yaml:"slowdown"`
}

// Default returns the default settings: animations enabled, no slowdown.
func Default() *Settings {
	return &Settings{
		EnableAnimations: true,
		Slowdown:         1,
	}
}

// LoadOptional reads bismuth.yaml from dir if present. A missing file is
// not an error and yields the defaults.
func LoadOptional(dir string) (*Settings, error) {
	path := filepath.Join(dir, "bismuth.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read bismuth.yaml: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bismuth.yaml: %w", err)
	}
	if cfg.Slowdown <= 0 {
		return nil, fmt.Errorf("bismuth.yaml: slowdown must be positive, got %g", cfg.Slowdown)
	}
	return cfg, nil
}

// FromEnvironment applies environment overrides and returns the settings
// for chaining. BISMUTH_DISABLE_ANIMATIONS=1 disables animations;
// BISMUTH_SLOWDOWN sets the slowdown factor.
func (s *Settings) FromEnvironment() *Settings {
	if v := os.Getenv("BISMUTH_DISABLE_ANIMATIONS"); v == "1" || v == "true" {
		s.EnableAnimations = false
	}
	if v := os.Getenv("BISMUTH_SLOWDOWN"); v != "" {
		if factor, err := strconv.ParseFloat(v, 64); err == nil && factor > 0 {
			s.Slowdown = factor
		}
	}
	return s
}
