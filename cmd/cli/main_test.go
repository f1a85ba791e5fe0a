package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL string with a syntax error that is guaranteed to cause a panic
	// during the loading phase inside app.NewApp().
	invalidHCL := `
		project {
			mode = "rich"
	// Missing closing brace here
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "project.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	// run should recover the panic and return it as an error.
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to load project configuration"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_BuildsEntry(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A minimal valid project: one markup entry, no sibling assets.
	tempDir := t.TempDir()
	srcDir := filepath.Join(tempDir, "src")
	outDir := filepath.Join(tempDir, "build")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "index.hml"), []byte("<div><text>hi</text></div>"), 0o644))

	projectHCL := fmt.Sprintf(`
project {
  source_root = %q
  output_dir  = %q
}

entry "index" {
  source = "index.hml"
}
`, srcDir, outDir)
	projectPath := filepath.Join(tempDir, "project.hcl")
	require.NoError(t, os.WriteFile(projectPath, []byte(projectHCL), 0o644))

	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"-log-format", "json", projectPath})

	// --- Assert ---
	require.NoError(t, err)

	generated, err := os.ReadFile(filepath.Join(outDir, "index.js"))
	require.NoError(t, err)
	require.Contains(t, string(generated), "$app_define$('@app-component/index'")
}
