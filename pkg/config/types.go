package config

import (
	"github.com/getmockd/conneg/pkg/logging"
	"github.com/getmockd/conneg/pkg/preference"
)

// Config is the root of a conneg configuration file.
type Config struct {
	// Precision sets the ordering epsilon of every Preference built from this
	// configuration. Zero selects preference.DefaultPrecision.
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Logging configures the process logger.
	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`

	// Profiles lists the offer sets, checked in order.
	Profiles []Profile `json:"profiles" yaml:"profiles"`
}

// LoggingConfig holds the textual logging settings.
type LoggingConfig struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Profile is a named list of producible media types.
type Profile struct {
	// Name identifies the profile on the command line.
	Name string `json:"name" yaml:"name"`

	// Paths are doublestar patterns matched against the request URL path.
	Paths []string `json:"paths,omitempty" yaml:"paths,omitempty"`

	// Offers are the media types the server can produce, most preferred first.
	Offers []string `json:"offers" yaml:"offers"`
}

// Default returns the configuration used when no file is given: a single
// profile serving the built-in encoders for every path.
func Default() *Config {
	return &Config{
		Precision: preference.DefaultPrecision,
		Logging:   LoggingConfig{Level: "info", Format: "text"},
		Profiles: []Profile{
			{
				Name:   "default",
				Paths:  []string{"/**"},
				Offers: []string{"application/json", "application/xml", "application/yaml", "text/plain"},
			},
		},
	}
}

// PreferenceOptions returns the options to build a Preference with.
func (c *Config) PreferenceOptions() []preference.Option {
	if c.Precision == 0 {
		return nil
	}
	return []preference.Option{preference.WithPrecision(c.Precision)}
}

// LoggingConfig converts the logging section into a logging.Config.
func (c *Config) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Logging.Level)
	cfg.Format = logging.ParseFormat(c.Logging.Format)
	return cfg
}
