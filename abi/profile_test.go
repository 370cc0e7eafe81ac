package abi

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultProfileName)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, "target = \"darwin/arm64\"\nminimal-runtime = true\n")
	p, err := LoadProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Target != "darwin/arm64" {
		t.Errorf("target = %q, want %q", p.Target, "darwin/arm64")
	}
	if !p.MinimalRuntime {
		t.Error("minimal-runtime = false, want true")
	}
}

func TestLoadProfileEmptyFileKeepsDefaults(t *testing.T) {
	path := writeProfile(t, "")
	p, err := LoadProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p != DefaultProfile() {
		t.Errorf("profile = %+v, want defaults %+v", p, DefaultProfile())
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadProfile succeeded on a missing file")
	}
}

func TestLoadProfileMalformed(t *testing.T) {
	path := writeProfile(t, "target = [unclosed\n")
	if _, err := LoadProfile(path); err == nil {
		t.Error("LoadProfile accepted malformed TOML")
	}
}

func TestLoadProfileUnsupportedTarget(t *testing.T) {
	path := writeProfile(t, "target = \"plan9/386\"\n")
	if _, err := LoadProfile(path); err == nil {
		t.Error("LoadProfile accepted a 32-bit target")
	}
}

func TestValidateTargets(t *testing.T) {
	valid := []string{"linux/amd64", "linux/arm64", "darwin/amd64", "darwin/arm64"}
	for _, target := range valid {
		if err := (Profile{Target: target}).Validate(); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", target, err)
		}
	}
	invalid := []string{"", "linux/386", "windows/amd64", "amd64"}
	for _, target := range invalid {
		if err := (Profile{Target: target}).Validate(); err == nil {
			t.Errorf("Validate(%q) = nil, want error", target)
		}
	}
}
