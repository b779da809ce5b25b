package main

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every command. Values come from
// flags, then ITERATE_* environment variables, then the config file.
type Config struct {
	Dataset   string   `mapstructure:"dataset" validate:"required"`
	Output    string   `mapstructure:"output" validate:"oneof=table json yaml"`
	Verbosity string   `mapstructure:"verbosity" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Field     string   `mapstructure:"field"`
	By        string   `mapstructure:"by"`
	Equals    string   `mapstructure:"equals"`
	Fields    []string `mapstructure:"fields"`
	Count     int      `mapstructure:"count"`
	Drop      bool     `mapstructure:"drop"`
	Exact     bool     `mapstructure:"exact"`
}

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns a singleton that can be used to validate configs.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfgFile)
		}
	}

	v.SetEnvPrefix("ITERATE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := Validator().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func (c *Config) logLevel() LogLevel {
	var level LogLevel
	if err := level.Set(c.Verbosity); err != nil {
		return INFO
	}
	return level
}
