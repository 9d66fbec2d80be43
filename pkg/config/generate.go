package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/minigrep/pkg/errors"
)

// Marshal renders the settings as a config file of the given kind
// ("toml", the default, or "yaml").
func (s Settings) Marshal(kind string) ([]byte, error) {
	switch strings.ToLower(kind) {
	case "", "toml":
		data, err := gotoml.Marshal(s)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode settings as toml")
		}
		return data, nil
	case "yaml", "yml":
		data, err := yaml.Marshal(s)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode settings as yaml")
		}
		return data, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown config kind %q (want toml or yaml)", kind)
	}
}
