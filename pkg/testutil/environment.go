package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEnvironment provides isolated directories for integration testing
type TestEnvironment struct {
	t           *testing.T
	baseDir     string
	settingsDir string
	homeDir     string
}

// NewTestEnvironment creates a settings directory and a home directory
// under t.TempDir() and points HOME and ayarla's XDG overrides into it.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	baseDir := t.TempDir()
	settingsDir := filepath.Join(baseDir, "settings_dir")
	homeDir := filepath.Join(baseDir, "home")

	require.NoError(t, os.MkdirAll(settingsDir, 0755))
	require.NoError(t, os.MkdirAll(homeDir, 0755))

	t.Setenv("HOME", homeDir)
	t.Setenv("AYARLA_CONFIG_DIR", filepath.Join(baseDir, "config"))
	t.Setenv("AYARLA_STATE_DIR", filepath.Join(baseDir, "state"))

	return &TestEnvironment{
		t:           t,
		baseDir:     baseDir,
		settingsDir: settingsDir,
		homeDir:     homeDir,
	}
}

// BaseDir returns the temporary root holding every other directory
func (te *TestEnvironment) BaseDir() string {
	return te.baseDir
}

// SettingsDir returns the settings directory
func (te *TestEnvironment) SettingsDir() string {
	return te.settingsDir
}

// Home returns the test home directory
func (te *TestEnvironment) Home() string {
	return te.homeDir
}

// WriteManifest writes manifest.toml into the settings directory
func (te *TestEnvironment) WriteManifest(content string) string {
	te.t.Helper()
	return CreateFile(te.t, te.settingsDir, "manifest.toml", content)
}

// AddSetting creates a file inside the settings directory
func (te *TestEnvironment) AddSetting(relPath, content string) string {
	te.t.Helper()
	return CreateFile(te.t, te.settingsDir, relPath, content)
}

// AddSettingDir creates a directory inside the settings directory
func (te *TestEnvironment) AddSettingDir(relPath string) string {
	te.t.Helper()
	return CreateDir(te.t, te.settingsDir, relPath)
}

// HomeEntries lists the names in the home directory
func (te *TestEnvironment) HomeEntries() []string {
	te.t.Helper()
	return ListDir(te.t, te.homeDir)
}
