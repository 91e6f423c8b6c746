package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rewired-gh/cinerank/internal/analysis"
)

// Config represents the complete application configuration
type Config struct {
	Source    SourceConfig    `mapstructure:"source"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// SourceConfig describes where the chart page is read from
type SourceConfig struct {
	URL            string        `mapstructure:"url"`
	File           string        `mapstructure:"file"` // saved HTML page; takes precedence over URL
	Timeout        time.Duration `mapstructure:"timeout"`
	UserAgent      string        `mapstructure:"user_agent"`
	AcceptLanguage string        `mapstructure:"accept_language"`
}

// DashboardConfig holds the HTTP server and dropdown configuration
type DashboardConfig struct {
	ListenAddr          string        `mapstructure:"listen_addr"`
	TopNOptions         []int         `mapstructure:"top_n_options"`
	TopNDefault         int           `mapstructure:"top_n_default"`
	YearOptions         []int         `mapstructure:"year_options"`
	YearDefault         int           `mapstructure:"year_default"`
	DistributionDefault string        `mapstructure:"distribution_default"`
	AllowedOrigins      []string      `mapstructure:"allowed_origins"`
	ReadTimeout         time.Duration `mapstructure:"read_timeout"`
	WriteTimeout        time.Duration `mapstructure:"write_timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
// An empty path or a missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Enable environment variable override, e.g. CINERANK_SOURCE_URL
	v.SetEnvPrefix("CINERANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Source defaults
	v.SetDefault("source.url", "https://www.imdb.com/chart/top/")
	v.SetDefault("source.file", "")
	v.SetDefault("source.timeout", "30s")
	v.SetDefault("source.user_agent", "Mozilla/5.0 (compatible; cinerank/1.0)")
	v.SetDefault("source.accept_language", "en-US")

	// Dashboard defaults
	v.SetDefault("dashboard.listen_addr", ":8050")
	v.SetDefault("dashboard.top_n_options", []int{5, 10, 20, 50})
	v.SetDefault("dashboard.top_n_default", 10)
	v.SetDefault("dashboard.year_options", []int{5, 10, 15})
	v.SetDefault("dashboard.year_default", 5)
	v.SetDefault("dashboard.distribution_default", string(analysis.FieldRating))
	v.SetDefault("dashboard.allowed_origins", []string{"*"})
	v.SetDefault("dashboard.read_timeout", "10s")
	v.SetDefault("dashboard.write_timeout", "30s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate Source config
	if c.Source.URL == "" && c.Source.File == "" {
		return fmt.Errorf("source.url or source.file is required")
	}
	if c.Source.File == "" && c.Source.Timeout < 1*time.Second {
		return fmt.Errorf("source.timeout must be at least 1 second")
	}

	// Validate Dashboard config
	if c.Dashboard.ListenAddr == "" {
		return fmt.Errorf("dashboard.listen_addr is required")
	}
	if err := validateOptions("dashboard.top_n_options", c.Dashboard.TopNOptions, c.Dashboard.TopNDefault); err != nil {
		return err
	}
	if err := validateOptions("dashboard.year_options", c.Dashboard.YearOptions, c.Dashboard.YearDefault); err != nil {
		return err
	}
	if _, err := analysis.ParseField(c.Dashboard.DistributionDefault); err != nil {
		return fmt.Errorf("dashboard.distribution_default must be one of: rating, release_year")
	}
	if c.Dashboard.ReadTimeout <= 0 || c.Dashboard.WriteTimeout <= 0 {
		return fmt.Errorf("dashboard.read_timeout and dashboard.write_timeout must be positive")
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}

func validateOptions(key string, options []int, def int) error {
	if len(options) == 0 {
		return fmt.Errorf("%s must contain at least one value", key)
	}
	for _, o := range options {
		if o < 1 {
			return fmt.Errorf("%s values must be at least 1", key)
		}
	}
	if !slices.Contains(options, def) {
		return fmt.Errorf("%s must contain the default %d", key, def)
	}
	return nil
}
