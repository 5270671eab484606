package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/bank-holidays/internal/calendar"
)

// Calendar sources
const (
	SourceComputed = "computed"
	SourceGouv     = "gouv"
	SourceFile     = "file"
	SourceLibrary  = "library"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents holiday source configuration
type CalendarConfig struct {
	Source       string `mapstructure:"source"`        // "computed", "gouv", "file" or "library"
	Zone         string `mapstructure:"zone"`          // calendrier.api.gouv.fr zone, e.g. "metropole"
	APIURL       string `mapstructure:"api_url"`       // calendrier.api.gouv.fr base URL
	FallbackFile string `mapstructure:"fallback_file"` // YAML/JSON "date: name" file
	Timeout      string `mapstructure:"timeout"`
	HoursPerDay  int    `mapstructure:"hours_per_day"`
}

// ServerConfig represents HTTP API configuration
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file.
// Without an explicit path a missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.bank-holidays")
		v.AddConfigPath("/etc/bank-holidays")
	}

	// Read environment variables: BANK_HOLIDAYS_CALENDAR_SOURCE etc.
	v.SetEnvPrefix("BANK_HOLIDAYS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// Defaults are plain values, decoding cannot fail
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.source", SourceComputed)
	v.SetDefault("calendar.zone", calendar.DefaultZone)
	v.SetDefault("calendar.api_url", calendar.DefaultGouvAPIURL)
	v.SetDefault("calendar.fallback_file", "")
	v.SetDefault("calendar.timeout", "10s")
	v.SetDefault("calendar.hours_per_day", calendar.DefaultHoursPerDay)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate Calendar config
	switch c.Calendar.Source {
	case SourceComputed, SourceLibrary:
	case SourceGouv:
		if c.Calendar.APIURL == "" {
			return fmt.Errorf("calendar.api_url is required for gouv source")
		}
		if !slices.Contains(calendar.Zones, c.Calendar.Zone) {
			return fmt.Errorf("calendar.zone must be one of %s, got '%s'",
				strings.Join(calendar.Zones, ", "), c.Calendar.Zone)
		}
	case SourceFile:
		if c.Calendar.FallbackFile == "" {
			return fmt.Errorf("calendar.fallback_file is required for file source")
		}
	default:
		return fmt.Errorf("calendar.source must be 'computed', 'gouv', 'file' or 'library', got '%s'", c.Calendar.Source)
	}

	if c.Calendar.HoursPerDay <= 0 || c.Calendar.HoursPerDay > 24 {
		return fmt.Errorf("calendar.hours_per_day must be between 1 and 24")
	}

	if c.Calendar.Timeout != "" {
		if _, err := time.ParseDuration(c.Calendar.Timeout); err != nil {
			return fmt.Errorf("calendar.timeout: %w", err)
		}
	}

	// Validate Server config
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	return nil
}

// GetTimeout returns HTTP timeout duration for remote sources
func (c *CalendarConfig) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Calendar.APIURL = os.ExpandEnv(c.Calendar.APIURL)
	c.Calendar.FallbackFile = os.ExpandEnv(c.Calendar.FallbackFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
