// Package config loads fungus settings by layering sources with koanf:
// embedded defaults, then the user's fungus.toml, then FUNGUS_*
// environment variables. Later sources win.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/phR0ze/fungus-sub000/pkg/errors"
)

// EnvConfigFile overrides the user config file location when set
const EnvConfigFile = "FUNGUS_CONFIG"

// Config is the fully merged application configuration
type Config struct {
	Logging LoggingConfig `koanf:"logging" toml:"logging"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
	Expand  ExpandConfig  `koanf:"expand" toml:"expand"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	// Verbosity maps to log levels: 0 warn, 1 info, 2 debug, 3+ trace
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// OutputConfig controls terminal rendering
type OutputConfig struct {
	// Color is one of auto, always or never
	Color string `koanf:"color" toml:"color"`
}

// ExpandConfig supplies extra variables for $NAME expansion. They are
// consulted before the process environment.
type ExpandConfig struct {
	Vars map[string]string `koanf:"vars" toml:"vars"`
}

// Load builds the merged configuration from the default locations
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom builds the merged configuration, reading the user config
// from the given file. An empty path falls back to the FUNGUS_CONFIG
// variable and then the XDG config home.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default config")
	}

	// 2. User config if it exists
	userConfig := path
	if userConfig == "" {
		userConfig = getConfigFilePath()
	}
	if _, err := os.Stat(userConfig); err == nil {
		if err := k.Load(file.Provider(userConfig), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to load config from %s", userConfig)
		}
	}

	// 3. Environment overrides, e.g. FUNGUS_LOGGING_VERBOSITY=2
	err := k.Load(env.Provider("FUNGUS_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "FUNGUS_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// Env values arrive as strings, so decode weakly
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// getConfigFilePath returns the user config file location: the
// FUNGUS_CONFIG variable when set, otherwise fungus/fungus.toml under
// the XDG config home.
func getConfigFilePath() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path
	}
	return filepath.Join(xdg.ConfigHome, "fungus", "fungus.toml")
}
