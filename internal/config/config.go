package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/katalvlaran/algokit/edgetable"
	"github.com/katalvlaran/algokit/prim_kruskal"
	"github.com/katalvlaran/algokit/report"
)

// EnvPrefix is the prefix of environment overrides, e.g. ALGOKIT_FORMAT.
const EnvPrefix = "ALGOKIT"

// ErrInvalid is returned by Load when a setting has an unusable value.
var ErrInvalid = errors.New("config: invalid setting")

// ColumnsConfig names the CSV header columns of an edge table.
type ColumnsConfig struct {
	Origin      string `mapstructure:"origin"`
	Destination string `mapstructure:"destination"`
	Weight      string `mapstructure:"weight"`
}

// Config holds all runtime configuration for an algokit invocation.
// Values are populated from .algokit.*, ALGOKIT_* env vars, and CLI flags.
type Config struct {
	Format     string        `mapstructure:"format"`
	Columns    ColumnsConfig `mapstructure:"columns"`
	Comma      string        `mapstructure:"comma"`
	Source     string        `mapstructure:"source"`
	Root       string        `mapstructure:"root"`
	Method     string        `mapstructure:"method"`
	ShowTree   bool          `mapstructure:"show_tree"`
	Sample     int           `mapstructure:"sample"`
	SampleBits int           `mapstructure:"sample_bits"`
}

// Setup points viper at the config file and environment. An explicit cfgFile
// must exist; otherwise .algokit (any extension viper reads) is looked up in
// the working directory and then the home directory, and its absence is fine.
func Setup(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".algokit")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", describe(cfgFile), err)
	}

	return nil
}

func describe(cfgFile string) string {
	if cfgFile == "" {
		return ".algokit"
	}
	return cfgFile
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("format", string(report.FormatText))
	viper.SetDefault("columns.origin", edgetable.ColumnOrigin)
	viper.SetDefault("columns.destination", edgetable.ColumnDestination)
	viper.SetDefault("columns.weight", edgetable.ColumnWeight)
	viper.SetDefault("comma", ",")
	viper.SetDefault("source", "")
	viper.SetDefault("root", "")
	viper.SetDefault("method", prim_kruskal.MethodKruskal)
	viper.SetDefault("show_tree", false)
	viper.SetDefault("sample", 50)
	viper.SetDefault("sample_bits", 100)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %v", ErrInvalid, err)
	}
	if utf8.RuneCountInString(c.Comma) != 1 {
		return fmt.Errorf("%w: comma must be a single character, got %q", ErrInvalid, c.Comma)
	}
	switch c.Method {
	case prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
	default:
		return fmt.Errorf("%w: method %q", ErrInvalid, c.Method)
	}
	if c.Sample < 0 || c.SampleBits < 0 {
		return fmt.Errorf("%w: sample sizes must be non-negative", ErrInvalid)
	}

	return nil
}

// CommaRune returns the configured field separator.
func (c Config) CommaRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Comma)
	return r
}

// TableOptions converts the column and separator settings for edgetable.Read.
func (c Config) TableOptions() []edgetable.Option {
	return []edgetable.Option{
		edgetable.WithColumns(c.Columns.Origin, c.Columns.Destination, c.Columns.Weight),
		edgetable.WithComma(c.CommaRune()),
	}
}
