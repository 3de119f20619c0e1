package config

import (
	"os"
	"path/filepath"
	"testing"
)

/* ------------------------------------------------------------------------- */
/* HELPERS                                                                   */
/* ------------------------------------------------------------------------- */

// runInTempDir writes the given files into a fresh temporary directory, runs
// fn with that directory as CWD, then restores the previous CWD.
func runInTempDir(t *testing.T, files map[string]string, fn func()) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	origDir, err := os.Getwd()
	if err != nil {
		origDir = os.TempDir()
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	defer func() { _ = os.Chdir(origDir) }()
	fn()
}

func checkError(t *testing.T, err error, wantErr bool) {
	t.Helper()
	if (err != nil) != wantErr {
		t.Fatalf("expected err=%v, got err=%v", wantErr, err)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("KOPEN_KICAD", "")
	t.Setenv("KOPEN_TIMEOUT", "")
}
