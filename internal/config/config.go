// Package config loads and scaffolds the CLI's YAML configuration file
// using viper, so callers can later layer environment variables or flags
// over it without changing the loading path.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/typediscover/internal/types"
)

// DefaultPath is the config file name typediscover init scaffolds and
// typediscover scan looks for by default.
const DefaultPath = ".typediscover.yaml"

// Config holds the caller-side decisions the core engine deliberately
// leaves open — such as what concrete type an all-empty column should be
// reported as — plus CLI ergonomics like which columns to skip.
type Config struct {
	Delimiter          string   `yaml:"delimiter" mapstructure:"delimiter"`
	TreatEmptyColumnAs string   `yaml:"treatEmptyColumnAs" mapstructure:"treatEmptyColumnAs"`
	IgnoreColumns      []string `yaml:"ignoreColumns" mapstructure:"ignoreColumns"`
	Extensions         []string `yaml:"extensions" mapstructure:"extensions"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		Delimiter:          ",",
		TreatEmptyColumnAs: types.Int.String(),
		IgnoreColumns:      []string{},
		Extensions:         []string{".csv", ".tsv"},
	}
}

// Load reads path (falling back to Default when the file does not exist)
// using viper so callers can later layer env vars or flags over it.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	cfg := Default()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// EmptyColumnDefault maps the configured TreatEmptyColumnAs string back to
// a FieldType, falling back to Int on an unrecognized value.
func (c Config) EmptyColumnDefault() types.FieldType {
	switch c.TreatEmptyColumnAs {
	case types.Bool.String():
		return types.Bool
	case types.Int.String():
		return types.Int
	case types.Float.String():
		return types.Float
	case types.Complex.String():
		return types.Complex
	case types.String.String():
		return types.String
	case types.Empty.String():
		return types.Empty
	default:
		return types.Int
	}
}

// Scaffold marshals cfg as YAML immediately before writing, with no
// intermediate viper round-trip — init never needs to merge with an
// existing file.
func Scaffold(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// IsIgnored reports whether header is in cfg's ignore list.
func (c Config) IsIgnored(header string) bool {
	for _, ignored := range c.IgnoreColumns {
		if ignored == header {
			return true
		}
	}
	return false
}
