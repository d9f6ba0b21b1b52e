package cli

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdrblkbs/ayarla/pkg/config"
	"github.com/kdrblkbs/ayarla/pkg/errors"
	"github.com/kdrblkbs/ayarla/pkg/testutil"
)

const twoItemManifest = `
[[manifest_items]]
source = ".tmux.conf"
destination = ".tmux.conf"
force = false

[[manifest_items]]
source = "nvim"
destination = ".config/nvim"
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBootstrap_EverythingConfigured(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteManifest(twoItemManifest)
	tmuxConf := env.AddSetting(".tmux.conf", "")
	env.AddSetting("nvim/.nvim", "")

	out, err := execute(t, "bootstrap", "--settings-directory", env.SettingsDir())

	require.NoError(t, err)
	assert.Contains(t, out, "Installed everything from")
	testutil.AssertSymlinkTo(t, filepath.Join(env.Home(), ".tmux.conf"), tmuxConf)
	testutil.AssertRealDir(t, filepath.Join(env.Home(), ".config"))
	testutil.AssertSymlinkTo(t, filepath.Join(env.Home(), ".config", "nvim"), filepath.Join(env.SettingsDir(), "nvim"))
}

func TestBootstrap_MissingSourceWarnsButSucceeds(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteManifest(`
[[manifest_items]]
source = ".tmux.conf"
destination = ".tmux.conf"
force = false
`)
	env.AddSetting("README.md", "")

	out, err := execute(t, "lan", "-s", env.SettingsDir())

	require.NoError(t, err)
	assert.Contains(t, out, "Some manifest sources are missing")
	assert.Empty(t, env.HomeEntries())
}

func TestBootstrap_OnlyManifest(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteManifest(twoItemManifest)

	_, err := execute(t, "bootstrap", "-s", env.SettingsDir())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNothingToInstall))
	assert.Empty(t, env.HomeEntries())
}

func TestBootstrap_InvalidManifestMakesNoChanges(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteManifest(`
[[manifest_items]]
source = ".tmux.conf"
`)
	env.AddSetting(".tmux.conf", "")

	_, err := execute(t, "bootstrap", "-s", env.SettingsDir())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
	assert.Empty(t, env.HomeEntries())
}

func TestBootstrap_HomeNotSet(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteManifest(twoItemManifest)
	env.AddSetting(".tmux.conf", "")
	t.Setenv("HOME", "")

	_, err := execute(t, "bootstrap", "-s", env.SettingsDir())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHomeNotSet))
}

func TestBootstrap_SettingsDirectoryFromConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteManifest(twoItemManifest)
	env.AddSetting(".tmux.conf", "")
	env.AddSetting("nvim/.nvim", "")

	configDir := filepath.Join(env.BaseDir(), "config")
	testutil.CreateFile(t, configDir, "config.toml",
		"settings_directory = \""+env.SettingsDir()+"\"\n\n[logging]\nfile = false\n")

	out, err := execute(t, "bootstrap")

	require.NoError(t, err)
	assert.Contains(t, out, "Installed everything from")
	assert.Equal(t, []string{".config", ".tmux.conf"}, env.HomeEntries())
	testutil.AssertNotExists(t, filepath.Join(env.BaseDir(), "state", "ayarla.log"))
}

func TestBootstrap_SettingsDirectoryFromEnv(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteManifest(twoItemManifest)
	env.AddSetting(".tmux.conf", "")
	t.Setenv("AYARLA_SETTINGS_DIRECTORY", env.SettingsDir())

	out, err := execute(t, "bootstrap")

	require.NoError(t, err)
	assert.Contains(t, out, "Some manifest sources are missing")
	assert.Equal(t, []string{".tmux.conf"}, env.HomeEntries())
}

func TestBootstrap_FlagWinsOverConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteManifest(twoItemManifest)
	env.AddSetting(".tmux.conf", "")
	t.Setenv("AYARLA_SETTINGS_DIRECTORY", filepath.Join(env.BaseDir(), "nowhere"))

	_, err := execute(t, "bootstrap", "-s", env.SettingsDir())

	require.NoError(t, err)
	assert.Equal(t, []string{".tmux.conf"}, env.HomeEntries())
}

func TestBootstrap_SettingsDirectoryWithTilde(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	settings := testutil.CreateDir(t, env.Home(), "settings")
	testutil.CreateFile(t, settings, "manifest.toml", twoItemManifest)
	testutil.CreateFile(t, settings, ".tmux.conf", "")

	_, err := execute(t, "bootstrap", "-s", "~/settings")

	require.NoError(t, err)
	testutil.AssertSymlinkTo(t, filepath.Join(env.Home(), ".tmux.conf"), filepath.Join(settings, ".tmux.conf"))
}

func TestBootstrap_NoSettingsDirectory(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := execute(t, "bootstrap")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestBootstrap_RejectsPositionalArgs(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	_, err := execute(t, "bootstrap", env.SettingsDir())

	require.Error(t, err)
	assert.Empty(t, env.HomeEntries())
}

func TestBootstrap_WritesLogFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteManifest(twoItemManifest)
	env.AddSetting(".tmux.conf", "")

	_, err := execute(t, "-vv", "bootstrap", "-s", env.SettingsDir())
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(env.BaseDir(), "state", "ayarla.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Starting bootstrap")
}

func TestVersion(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "ayarla version dev")
	assert.Contains(t, out, "commit:")
}

func TestMan(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	manDir := filepath.Join(env.BaseDir(), "man")

	_, err := execute(t, "man", "--dir", manDir)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(manDir, "ayarla.1"))
	assert.FileExists(t, filepath.Join(manDir, "ayarla-bootstrap.1"))
}

func TestHelpTopics(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "manifest")
	assert.Contains(t, out, "quickstart")

	out, err = execute(t, "help", "manifest")
	require.NoError(t, err)
	assert.Contains(t, out, "[[manifest_items]]")
}

func TestBootstrap_DestinationAtHomeIsRejected(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteManifest(`
[[manifest_items]]
source = ".tmux.conf"
destination = "."
force = true
`)
	env.AddSetting(".tmux.conf", "")
	precious := testutil.CreateFile(t, env.Home(), ".precious", "keep me")

	_, err := execute(t, "bootstrap", "-s", env.SettingsDir())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
	testutil.AssertRealDir(t, env.Home())
	assert.FileExists(t, precious)
}

func TestRun_ErrorsHonourOutputColor(t *testing.T) {
	tests := []struct {
		name     string
		color    string
		styled   bool
		contains string
	}{
		{"never", "never", false, "✗ Error: [INVALID_INPUT]"},
		{"always", "always", true, "Error:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.NewTestEnvironment(t)
			t.Setenv("AYARLA_OUTPUT_COLOR", tt.color)

			var stdout, stderr bytes.Buffer
			code := run([]string{"bootstrap"}, &stdout, &stderr)

			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), tt.contains)
			if tt.styled {
				assert.Contains(t, stderr.String(), "\x1b[")
			} else {
				assert.NotContains(t, stderr.String(), "\x1b[")
			}
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_ConfigErrorIsStillReported(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("AYARLA_OUTPUT_COLOR", "sometimes")

	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "CONFIG_LOAD")
	assert.Empty(t, stdout.String())
}

func TestRun_Success(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("AYARLA_OUTPUT_COLOR", "never")

	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "ayarla version dev")
	assert.NotContains(t, stdout.String(), "\x1b[")
}

func TestRendererFor_FollowsConfig(t *testing.T) {
	cfg, err := config.FromMap(map[string]interface{}{"output.color": "always"})
	require.NoError(t, err)

	var buf bytes.Buffer
	a := &app{cfg: cfg}
	require.NoError(t, a.rendererFor(&buf).RenderError(stderrors.New("boom")))
	assert.Contains(t, buf.String(), "\x1b[")

	buf.Reset()
	a = &app{}
	require.NoError(t, a.rendererFor(&buf).RenderError(stderrors.New("boom")))
	assert.Equal(t, "✗ Error: boom\n", buf.String())
}
