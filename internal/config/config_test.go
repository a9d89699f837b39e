package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got, want := Dir(), filepath.Join(home, ".rnts"); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
	if got := FilePath(); !strings.HasSuffix(got, filepath.Join(".rnts", "config.yaml")) {
		t.Errorf("FilePath() = %q, want a config.yaml under .rnts", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	Load()

	if got := Get(KeyGenerator); got != "react-native" {
		t.Errorf("Get(%s) = %q, want %q", KeyGenerator, got, "react-native")
	}
	if got := Get(KeyPackageManager); got != "auto" {
		t.Errorf("Get(%s) = %q, want %q", KeyPackageManager, got, "auto")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RNTS_PACKAGE_MANAGER", "npm")
	Load()

	if got := Get(KeyPackageManager); got != "npm" {
		t.Errorf("Get(%s) = %q, want env override %q", KeyPackageManager, got, "npm")
	}
}
