package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlinkcheck/pkg/config"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
content_dirs: [extras, data]
disable_rules: [enforce_https, LC009]
strict: true
format: summary
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"extras", "data"}, cfg.ContentDirs)
	assert.Equal(t, []string{"enforce_https", "LC009"}, cfg.DisableRules)
	assert.True(t, cfg.Strict)
	assert.Equal(t, config.FormatSummary, cfg.Format)
	assert.True(t, cfg.LinkRot, "defaults survive partial config")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "contnet_dirs: [oops]\n")

	_, err := Load(path)
	assert.Error(t, err, "typoed keys must not be silently ignored")
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "format: xml\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "lessons", "episodes")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	expected := writeConfig(t, root, "strict: true\n")

	got, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestDiscoverNotFound(t *testing.T) {
	_, err := Discover(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestResolveExplicitPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "strict: true\n")

	cfg, err := Resolve(path, t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.Strict)

	_, err = Resolve(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir())
	assert.Error(t, err, "an explicit path that does not exist is an error")
}
