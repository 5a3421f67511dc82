package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlinkcheck/pkg/config"
	"github.com/yaklabco/mdlinkcheck/pkg/report"
)

func TestExitCodeFromStats(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCodeFromStats(nil, false))
	assert.Equal(t, ExitSuccess, ExitCodeFromStats(report.NewStats(), true))

	errors := report.NewStats()
	errors.AddFile([]report.Warning{{Severity: config.SeverityError}})
	assert.Equal(t, ExitCheckErrors, ExitCodeFromStats(errors, false))

	warnings := report.NewStats()
	warnings.AddFile([]report.Warning{{Severity: config.SeverityWarning}})
	assert.Equal(t, ExitSuccess, ExitCodeFromStats(warnings, false))
	assert.Equal(t, ExitCheckWarnings, ExitCodeFromStats(warnings, true))
}

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "episodes")
	hidden := filepath.Join(dir, ".git")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.MkdirAll(hidden, 0o755))

	for _, name := range []string{
		"index.md",
		filepath.Join("episodes", "01-intro.md"),
		filepath.Join("episodes", "02-data.Rmd"),
		filepath.Join("episodes", "notes.txt"),
		filepath.Join(".git", "HEAD.md"),
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o644))
	}

	files, err := discoverFiles(context.Background(), dir, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "episodes", "01-intro.md"),
		filepath.Join(dir, "episodes", "02-data.Rmd"),
		filepath.Join(dir, "index.md"),
	}, files)
}

func TestDiscoverFilesExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))

	// Explicitly named files bypass the extension filter.
	files, err := discoverFiles(context.Background(), dir, []string{"notes.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscoverFilesMissingPath(t *testing.T) {
	_, err := discoverFiles(context.Background(), t.TempDir(), []string{"nope.md"})
	assert.Error(t, err)
}

func TestDiscoverFilesDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.md")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))

	files, err := discoverFiles(context.Background(), dir, []string{"index.md", "."})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}
