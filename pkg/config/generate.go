package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/phR0ze/fungus-sub000/pkg/errors"
)

// Generate renders the configuration as TOML, suitable for seeding a
// user config file.
func Generate(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(out), nil
}
