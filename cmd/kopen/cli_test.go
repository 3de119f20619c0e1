package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/kopen/internal/config"
	"github.com/indaco/kopen/internal/discovery"
)

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

func TestRunCLI_InvalidConfigFile(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, config.YAMLFile), []byte("unknown_key: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, tmp)

	err := runCLI([]string{"kopen"})
	if err == nil {
		t.Fatal("expected an error for an unknown configuration key, got nil")
	}
	if !strings.Contains(err.Error(), "failed to load configuration") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunCLI_InvalidTimeout(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("KOPEN_TIMEOUT", "soon")
	chdir(t, tmp)

	err := runCLI([]string{"kopen"})
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("runCLI() error = %v, want an invalid configuration error", err)
	}
}

func TestRunCLI_SearchesWorkingDirectory(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "notes.md"), []byte("# notes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CI", "true")
	t.Setenv("KOPEN_TIMEOUT", "10s")
	chdir(t, tmp)

	err := runCLI([]string{"kopen"})
	var noneErr *discovery.NoProjectsFoundError
	if !errors.As(err, &noneErr) {
		t.Fatalf("runCLI() error = %v, want *NoProjectsFoundError", err)
	}
}

func TestRunCLI_ConfiguredBinary(t *testing.T) {
	tmp := t.TempDir()
	yaml := "kicad: kopen-test-no-such-kicad\ntimeout: 10s\n"
	if err := os.WriteFile(filepath.Join(tmp, config.YAMLFile), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, "board.kicad_pro"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CI", "true")
	t.Setenv("KOPEN_KICAD", "")
	chdir(t, tmp)

	err := runCLI([]string{"kopen"})
	if err == nil || !strings.Contains(err.Error(), "kopen-test-no-such-kicad") {
		t.Errorf("runCLI() error = %v, want the configured binary to be started", err)
	}
}
