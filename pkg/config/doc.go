// Package config handles configuration management for ayarla.
// Configuration is layered with koanf: embedded defaults, then the user's
// config.toml, then AYARLA_* environment variables.
//
// This is ayarla's own configuration. The manifest inside a settings
// directory is parsed by the preflight package.
package config
