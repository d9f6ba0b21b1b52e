package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	ayerrors "github.com/kdrblkbs/ayarla/pkg/errors"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "AYARLA_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// ColorMode controls whether terminal output is styled
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// UnmarshalText implements encoding.TextUnmarshaler so invalid values are
// rejected while decoding.
func (c *ColorMode) UnmarshalText(text []byte) error {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(string(text)))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		*c = mode
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", string(text))
	}
}

// Config is ayarla's tool configuration
type Config struct {
	SettingsDirectory string        `koanf:"settings_directory"`
	Logging           LoggingConfig `koanf:"logging"`
	Output            OutputConfig  `koanf:"output"`
}

// LoggingConfig controls log destinations
type LoggingConfig struct {
	File bool `koanf:"file"`
}

// OutputConfig controls terminal output
type OutputConfig struct {
	Color ColorMode `koanf:"color"`
}

// envKeys maps the lowercased env suffix to its config key
var envKeys = map[string]string{
	"settings_directory": "settings_directory",
	"logging_file":       "logging.file",
	"output_color":       "output.color",
}

// Load builds the configuration from defaults, the config file at
// configPath (skipped when it does not exist) and the environment.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, ayerrors.Wrap(err, ayerrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, ayerrors.Wrapf(err, ayerrors.ErrConfigLoad, "failed to load config from %s", configPath).
					WithDetail("path", configPath)
			}
		} else if !os.IsNotExist(err) {
			return nil, ayerrors.Wrapf(err, ayerrors.ErrConfigLoad, "failed to stat config %s", configPath)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, ayerrors.Wrap(err, ayerrors.ErrConfigLoad, "failed to load env vars")
	}

	return unmarshal(k)
}

// FromMap builds a configuration from defaults overlaid with values, without
// touching the filesystem or the environment.
func FromMap(values map[string]interface{}) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, ayerrors.Wrap(err, ayerrors.ErrConfigLoad, "failed to load defaults")
	}
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, ayerrors.Wrap(err, ayerrors.ErrConfigLoad, "failed to load overrides")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, ayerrors.Wrap(err, ayerrors.ErrConfigLoad, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// envKey turns AYARLA_LOGGING_FILE into logging.file. Unknown variables
// (AYARLA_CONFIG_DIR and friends) map to "" and are skipped.
func envKey(s string) string {
	return envKeys[strings.ToLower(strings.TrimPrefix(s, EnvPrefix))]
}
