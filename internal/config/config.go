// Package config defines the data structures related to configuration and
// includes functions for loading the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/iwvelando/solar-sizing/pkg/constants"
	"github.com/iwvelando/solar-sizing/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for solar-sizing.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
	Output  OutputConfig  `yaml:"output,omitempty" mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `yaml:"format,omitempty" mapstructure:"format"`     // pretty, csv, json, xlsx, pdf
	Locale   string `yaml:"locale,omitempty" mapstructure:"locale"`     // BCP 47 tag, e.g. es-CO
	Currency string `yaml:"currency,omitempty" mapstructure:"currency"` // code shown next to amounts
	File     string `yaml:"file,omitempty" mapstructure:"file"`         // write output here instead of stdout
}

// LoadDotEnv loads KEY=value pairs from a .env file into the process
// environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = constants.DefaultDotEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading env file %s, %w", path, err)
	}
	return nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. The default config file may be absent, in which case
// defaults and environment overrides are used; any other missing path is an
// error.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if !(configPath == constants.DefaultConfigFile && errors.Is(err, fs.ErrNotExist)) {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		}
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys must be known to viper for environment overrides to reach Unmarshal.
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.locale", constants.DefaultLocale)
	v.SetDefault("output.currency", constants.DefaultCurrency)
	v.SetDefault("output.file", "")
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills empty output settings with the application defaults.
func (c *Configuration) ApplyDefaults() {
	c.Output.Format = strings.TrimSpace(c.Output.Format)
	c.Output.Locale = strings.TrimSpace(c.Output.Locale)
	c.Output.Currency = strings.TrimSpace(c.Output.Currency)

	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
	if c.Output.Locale == "" {
		c.Output.Locale = constants.DefaultLocale
	}
	if c.Output.Currency == "" {
		c.Output.Currency = constants.DefaultCurrency
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for settings that will be replaced by defaults.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if err := validation.ValidateLocale(c.Output.Locale); err != nil {
		warnings = append(warnings, fmt.Sprintf("%v; falling back to %s", err, constants.DefaultLocale))
	}
	if err := validation.ValidateCurrency(c.Output.Currency); err != nil {
		warnings = append(warnings, fmt.Sprintf("%v; amounts will be labeled %q as given", err, c.Output.Currency))
	}
	if validation.IsBinaryFormat(c.Output.Format) && c.Output.File == "" {
		warnings = append(warnings, fmt.Sprintf("output format %s is binary and no output file is set; writing to stdout", c.Output.Format))
	}
	return warnings
}
