package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bismuth.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestDefaults(t *testing.T) {
	s := Default()
	if !s.EnableAnimations {
		t.Error("EnableAnimations should default to true")
	}
	if s.Slowdown != 1 {
		t.Errorf("Slowdown = %g, want 1", s.Slowdown)
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	s, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if !s.EnableAnimations || s.Slowdown != 1 {
		t.Errorf("missing file should yield defaults, got %+v", s)
	}
}

func TestLoadOptionalParsesFile(t *testing.T) {
	dir := writeConfig(t, "enable-animations: false\nslowdown: 2.5\n")
	s, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if s.EnableAnimations {
		t.Error("EnableAnimations = true, want false")
	}
	if s.Slowdown != 2.5 {
		t.Errorf("Slowdown = %g, want 2.5", s.Slowdown)
	}
}

func TestLoadOptionalPartialFileKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, "slowdown: 4\n")
	s, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if !s.EnableAnimations {
		t.Error("unset enable-animations should keep the default true")
	}
	if s.Slowdown != 4 {
		t.Errorf("Slowdown = %g, want 4", s.Slowdown)
	}
}

func TestLoadOptionalRejectsBadSlowdown(t *testing.T) {
	dir := writeConfig(t, "slowdown: -1\n")
	if _, err := LoadOptional(dir); err == nil {
		t.Error("negative slowdown should be rejected")
	}
}

func TestLoadOptionalRejectsMalformedYAML(t *testing.T) {
	dir := writeConfig(t, "slowdown: [oops\n")
	if _, err := LoadOptional(dir); err == nil {
		t.Error("malformed yaml should be rejected")
	}
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("BISMUTH_DISABLE_ANIMATIONS", "1")
	t.Setenv("BISMUTH_SLOWDOWN", "3")

	s := Default().FromEnvironment()
	if s.EnableAnimations {
		t.Error("BISMUTH_DISABLE_ANIMATIONS=1 should disable animations")
	}
	if s.Slowdown != 3 {
		t.Errorf("Slowdown = %g, want 3", s.Slowdown)
	}
}

func TestFromEnvironmentIgnoresInvalid(t *testing.T) {
	t.Setenv("BISMUTH_DISABLE_ANIMATIONS", "no")
	t.Setenv("BISMUTH_SLOWDOWN", "banana")

	s := Default().FromEnvironment()
	if !s.EnableAnimations {
		t.Error("unrecognized disable value should leave animations enabled")
	}
	if s.Slowdown != 1 {
		t.Errorf("Slowdown = %g, want untouched 1", s.Slowdown)
	}
}
