// Package config loads the sirisx command configuration from an optional
// YAML file, SIRISX_* environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	sirisx "github.com/reoring/sirisx"
)

// Config is the complete command configuration.
type Config struct {
	Decode DecodeConfig `mapstructure:"decode"`
	Log    LogConfig    `mapstructure:"log"`
}

// DecodeConfig holds the validation knobs that map onto sirisx.ParseOpt.
type DecodeConfig struct {
	// Format of the input: json, xml, yaml, or auto (by file extension).
	Format        string `mapstructure:"format"`
	FailFast      bool   `mapstructure:"fail_fast"`
	Strict        bool   `mapstructure:"strict"`
	GeoBounds     bool   `mapstructure:"geo_bounds"`
	AllowOffsets  bool   `mapstructure:"allow_offsets"`
	DuplicateKeys string `mapstructure:"duplicate_keys"`
	MaxDepth      int    `mapstructure:"max_depth"`
	MaxBytes      int64  `mapstructure:"max_bytes"`
}

// LogConfig controls the command's zerolog output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from configPath (or sirisx.yaml in the usual
// locations when empty). A missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("sirisx")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/sirisx")
	}

	v.SetEnvPrefix("SIRISX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("decode.format", "auto")
	v.SetDefault("decode.fail_fast", false)
	v.SetDefault("decode.strict", false)
	v.SetDefault("decode.geo_bounds", false)
	v.SetDefault("decode.allow_offsets", false)
	v.SetDefault("decode.duplicate_keys", "ignore")
	v.SetDefault("decode.max_depth", 64)
	v.SetDefault("decode.max_bytes", 64<<20) // 64MB

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Validate checks enumerated values and limits.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Decode.Format) {
	case "auto", "json", "xml", "yaml":
	default:
		return fmt.Errorf("invalid decode.format %q: must be auto, json, xml or yaml", c.Decode.Format)
	}
	if _, err := parseSeverity(c.Decode.DuplicateKeys); err != nil {
		return err
	}
	if c.Decode.MaxDepth < 0 {
		return fmt.Errorf("decode.max_depth must not be negative")
	}
	if c.Decode.MaxBytes < 0 {
		return fmt.Errorf("decode.max_bytes must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format)
	}
	return nil
}

// ParseOpt converts the decode section into parse options.
func (d DecodeConfig) ParseOpt() (sirisx.ParseOpt, error) {
	dup, err := parseSeverity(d.DuplicateKeys)
	if err != nil {
		return sirisx.ParseOpt{}, err
	}
	opt := sirisx.ParseOpt{
		FailFast:       d.FailFast,
		Strictness:     sirisx.Strictness{OnDuplicateKey: dup},
		MaxDepth:       d.MaxDepth,
		MaxBytes:       d.MaxBytes,
		CheckGeoBounds: d.GeoBounds,
		AllowOffsets:   d.AllowOffsets,
	}
	if d.Strict {
		opt.Unknown = sirisx.UnknownStrict
	}
	return opt, nil
}

func parseSeverity(s string) (sirisx.Severity, error) {
	switch strings.ToLower(s) {
	case "", "ignore":
		return sirisx.Ignore, nil
	case "warn":
		return sirisx.Warn, nil
	case "error":
		return sirisx.Error, nil
	}
	return sirisx.Ignore, fmt.Errorf("invalid decode.duplicate_keys %q: must be ignore, warn or error", s)
}
