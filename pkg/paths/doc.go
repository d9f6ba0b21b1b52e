// Package paths provides centralized path handling for ayarla.
//
// It resolves the base (home) directory links are installed into and the
// XDG locations of ayarla's own files.
//
// # Environment Variables
//
//   - HOME: base directory for installed links (required)
//   - AYARLA_CONFIG_DIR: override the config directory (default: $XDG_CONFIG_HOME/ayarla)
//   - AYARLA_STATE_DIR: override the state directory (default: $XDG_STATE_HOME/ayarla)
//
// # Files
//
//   - Config: <config dir>/config.toml
//   - Log: <state dir>/ayarla.log
package paths
