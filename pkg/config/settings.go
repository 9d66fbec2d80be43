package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/minigrep/pkg/errors"
	"github.com/arthur-debert/minigrep/pkg/logging"
	"github.com/arthur-debert/minigrep/pkg/paths"
)

// Setting keys, shared by the config file, MINIGREP_* variables and flags.
const (
	KeyIgnoreCase  = "ignore_case"
	KeyLineNumbers = "line_numbers"
	KeyFormat      = "format"
	KeyHighlight   = "highlight"
	KeyFilter      = "filter"
	KeyHeader      = "header"
	KeyMaxFileSize = "max_file_size"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. MINIGREP_IGNORE_CASE.
	EnvPrefix = "MINIGREP_"

	// EnvIgnoreCase turns on case-insensitive matching when set to any value.
	EnvIgnoreCase = "IGNORE_CASE"
)

// Formats lists the accepted values of the format setting.
var Formats = []string{"auto", "term", "text", "json"}

// FormatAliases maps alternative format names onto entries of Formats.
var FormatAliases = map[string]string{
	"terminal": "term",
	"plain":    "text",
}

// NormalizeFormat lowercases a format name and resolves aliases. Unknown
// names are returned lowercased and left for Validate to reject.
func NormalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if canonical, ok := FormatAliases[format]; ok {
		return canonical
	}
	return format
}

// Settings holds the matching and output options of a run.
type Settings struct {
	IgnoreCase  bool   `koanf:"ignore_case" toml:"ignore_case" yaml:"ignore_case"`
	LineNumbers bool   `koanf:"line_numbers" toml:"line_numbers" yaml:"line_numbers"`
	Format      string `koanf:"format" toml:"format" yaml:"format"`
	Highlight   bool   `koanf:"highlight" toml:"highlight" yaml:"highlight"`
	Filter      bool   `koanf:"filter" toml:"filter" yaml:"filter"`
	Header      bool   `koanf:"header" toml:"header" yaml:"header"`
	MaxFileSize int64  `koanf:"max_file_size" toml:"max_file_size" yaml:"max_file_size"`
}

// LoadOptions selects the sources LoadSettings layers on top of the defaults.
type LoadOptions struct {
	// ConfigFile is an explicit config path. When empty the XDG config
	// directory is searched and a missing file is not an error.
	ConfigFile string

	// Paths locates the XDG config directory; nil means paths.New().
	Paths paths.Paths

	// Flags holds command-line values that were explicitly set, keyed by
	// setting key. They take precedence over every other source.
	Flags map[string]interface{}
}

// LoadSettings merges defaults, config file, environment and flags, in
// that order, and validates the result.
func LoadSettings(opts LoadOptions) (Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path, explicit := opts.ConfigFile, opts.ConfigFile != ""
	if !explicit {
		p := opts.Paths
		if p == nil {
			p = paths.New()
		}
		path, _ = p.ConfigFile()
	}
	if path != "" {
		if err := loadFile(k, path, explicit); err != nil {
			return Settings{}, err
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	if _, ok := os.LookupEnv(EnvIgnoreCase); ok {
		if err := k.Load(confmap.Provider(map[string]interface{}{KeyIgnoreCase: true}, "."), nil); err != nil {
			return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply IGNORE_CASE")
		}
	}

	// 4. Flags
	if len(opts.Flags) > 0 {
		if err := k.Load(confmap.Provider(opts.Flags, "."), nil); err != nil {
			return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply flags")
		}
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}
	s.Format = NormalizeFormat(s.Format)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	logger.Debug().
		Bool(KeyIgnoreCase, s.IgnoreCase).
		Str(KeyFormat, s.Format).
		Bool(KeyFilter, s.Filter).
		Msg("Settings resolved")

	return s, nil
}

// Validate checks values that the decoder cannot.
func (s Settings) Validate() error {
	valid := false
	for _, f := range Formats {
		if s.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return errors.Newf(errors.ErrConfigValid, "unknown format %q (want one of %s)",
			s.Format, strings.Join(Formats, ", ")).
			WithDetail(KeyFormat, s.Format)
	}
	if s.MaxFileSize < 0 {
		return errors.Newf(errors.ErrConfigValid, "max_file_size must not be negative, got %d", s.MaxFileSize).
			WithDetail(KeyMaxFileSize, s.MaxFileSize)
	}
	return nil
}

func loadFile(k *koanf.Koanf, path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
				WithDetail("path", path)
		}
		return nil
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return errors.Newf(errors.ErrConfigParse, "unsupported config file type %q", filepath.Ext(path)).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}
