package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/kdrblkbs/ayarla/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvAyarlaConfigDir overrides the XDG config directory for ayarla
	EnvAyarlaConfigDir = "AYARLA_CONFIG_DIR"

	// EnvAyarlaStateDir overrides the XDG state directory for ayarla
	EnvAyarlaStateDir = "AYARLA_STATE_DIR"
)

const (
	// AppDirName is the directory name for ayarla-specific files
	AppDirName = "ayarla"

	// ConfigFileName is the name of the tool configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file in the state directory
	LogFileName = "ayarla.log"
)

// HomeDir returns the base directory links are installed into.
// Only the HOME environment variable is consulted; its absence is fatal.
func HomeDir() (string, error) {
	home := os.Getenv(EnvHome)
	if home == "" {
		return "", errors.New(errors.ErrHomeNotSet, "HOME environment variable is not set")
	}
	return home, nil
}

// ConfigDir returns the directory holding ayarla's configuration
func ConfigDir() string {
	if dir := os.Getenv(EnvAyarlaConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the path of ayarla's configuration file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory holding ayarla's state such as logs
func StateDir() string {
	if dir := os.Getenv(EnvAyarlaStateDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the path of ayarla's log file
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the HOME directory.
// Paths that cannot be expanded are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir := os.Getenv(EnvHome)
	if homeDir == "" {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	// ~user forms are left alone
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	return filepath.Join(homeDir, path[2:])
}

// CheckRelative reports whether p names an entry strictly inside whatever
// base directory it is later joined to. Absolute paths, the base itself
// and anything climbing out of it with .. are rejected.
func CheckRelative(p string) error {
	if filepath.IsAbs(p) {
		return fmt.Errorf("%q is an absolute path", p)
	}

	clean := filepath.Clean(p)
	if clean == "." {
		return fmt.Errorf("%q is the base directory itself", p)
	}
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%q leaves the base directory", p)
	}

	return nil
}
