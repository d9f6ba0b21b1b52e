package paths

import (
	"path/filepath"
	"testing"

	"github.com/kdrblkbs/ayarla/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeDir(t *testing.T) {
	t.Run("from_env", func(t *testing.T) {
		t.Setenv(EnvHome, "/home/karl")

		home, err := HomeDir()
		require.NoError(t, err)
		assert.Equal(t, "/home/karl", home)
	})

	t.Run("unset_is_an_error", func(t *testing.T) {
		t.Setenv(EnvHome, "")

		_, err := HomeDir()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrHomeNotSet))
	})
}

func TestConfigAndStateOverrides(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvAyarlaConfigDir, filepath.Join(tmp, "cfg"))
	t.Setenv(EnvAyarlaStateDir, filepath.Join(tmp, "state"))

	assert.Equal(t, filepath.Join(tmp, "cfg"), ConfigDir())
	assert.Equal(t, filepath.Join(tmp, "cfg", "config.toml"), ConfigFile())
	assert.Equal(t, filepath.Join(tmp, "state"), StateDir())
	assert.Equal(t, filepath.Join(tmp, "state", "ayarla.log"), LogFile())
}

func TestXDGDefaults(t *testing.T) {
	t.Setenv(EnvAyarlaConfigDir, "")
	t.Setenv(EnvAyarlaStateDir, "")

	assert.Equal(t, AppDirName, filepath.Base(ConfigDir()))
	assert.Equal(t, AppDirName, filepath.Base(StateDir()))
	assert.True(t, filepath.IsAbs(ConfigFile()))
}

func TestExpandHome(t *testing.T) {
	t.Setenv(EnvHome, "/home/karl")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"tilde_only", "~", "/home/karl"},
		{"tilde_slash", "~/settings", "/home/karl/settings"},
		{"absolute", "/etc/settings", "/etc/settings"},
		{"relative", "settings", "settings"},
		{"other_user", "~bob/settings", "~bob/settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandHome(tt.input))
		})
	}
}

func TestCheckRelative(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"plain", ".tmux.conf", ""},
		{"nested", ".config/nvim", ""},
		{"dot_prefixed", "./config/nvim", ""},
		{"dotdot_name", "..hidden", ""},
		{"inner_dotdot_stays_inside", "a/../b", ""},
		{"absolute", "/etc/passwd", "absolute"},
		{"dot", ".", "base directory itself"},
		{"dot_slash", "./", "base directory itself"},
		{"collapses_to_base", "nvim/..", "base directory itself"},
		{"parent", "..", "leaves the base directory"},
		{"escapes", "../x", "leaves the base directory"},
		{"escapes_after_clean", "a/../../x", "leaves the base directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRelative(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
