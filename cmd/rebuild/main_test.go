package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(originalWd) })
}

func TestRun(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	manifest := `version: "1"
units:
  - src: main.c
    dst: main.o
    cmd: ["cc", "-c", "main.c", "-o", "main.o"]
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "rebuild.yaml"), []byte(manifest), 0o600))

	check := []string{"check", "--src", "main.c", "--dst", "main.o", "--exit-code", "--", "cc", "-c", "main.c"}

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{"version", []string{"version"}, 0},
		{"status previews", []string{"status"}, 0},
		{"status exit code", []string{"status", "--exit-code"}, 1},
		{"first check needs rebuild", check, 1},
		{"unknown unit", []string{"status", "nope"}, 2},
		{"unknown command", []string{"frobnicate"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedExit, run(tt.args))
		})
	}

	_, err := os.Stat(filepath.Join(tmpDir, "main.command"))
	assert.NoError(t, err, "check records the fingerprint")
}

func TestRun_MissingManifest(t *testing.T) {
	chdir(t, t.TempDir())

	assert.Equal(t, 2, run([]string{"status", "-c", "./absent.yaml"}))
}
