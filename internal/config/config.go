// Package config reads the configuration of the ledger from a config file,
// a .env file and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBPath           string `mapstructure:"DB_PATH"`
	ListenAddress    string `mapstructure:"LISTEN_ADDRESS"`
	APIURL           string `mapstructure:"API_URL"`
	CORSAllowOrigins string `mapstructure:"CORS_ALLOW_ORIGINS"`
	EnablePprof      bool   `mapstructure:"ENABLE_PPROF"`
	LogFormat        string `mapstructure:"LOG_FORMAT"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	GinMode          string `mapstructure:"GIN_MODE"`
	Currency         string `mapstructure:"CURRENCY"`
}

var defaults = map[string]any{
	"DB_PATH":            filepath.Join("data", "ledger.db"),
	"LISTEN_ADDRESS":     ":8080",
	"API_URL":            "http://localhost:8080",
	"CORS_ALLOW_ORIGINS": "",
	"ENABLE_PPROF":       false,
	"LOG_FORMAT":         "",
	"LOG_LEVEL":          "info",
	"GIN_MODE":           "release",
	"CURRENCY":           "THB",
}

// Load reads the configuration.
//
// Values from a .env file in the working directory are exported to the
// environment first, variables that are already set win. Then the optional
// config file "ledger.env" in path is read. Environment variables
// take precedence over the config file.
func Load(path string) (Config, error) {
	// The .env file is optional
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("ledger")
	v.SetConfigType("env")

	// Keys are only considered by Unmarshal when viper knows about them
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the configuration for values that cannot be used.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("DB_PATH must not be empty")
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE must be one of debug, release or test, got %q", c.GinMode)
	}

	_, err := c.URL()
	if err != nil {
		return err
	}

	_, err = c.Level()
	if err != nil {
		return err
	}

	return nil
}

// URL returns the parsed external URL of the API.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("API_URL is not a valid URL: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("API_URL must be an absolute URL, got %q", c.APIURL)
	}

	return u, nil
}

// Level returns the log level.
//
// When gin runs in debug mode and no level is set explicitly,
// debug logging is enabled.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		if c.GinMode == "debug" {
			return zerolog.DebugLevel, nil
		}
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("LOG_LEVEL %q is not a valid log level", c.LogLevel)
	}

	return level, nil
}

// HumanLogs reports if logs are written in human readable format.
//
// If LOG_FORMAT is not set, logs are human readable in debug mode
// and JSON otherwise.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}

// AllowOrigins returns the origins allowed for CORS requests.
func (c Config) AllowOrigins() []string {
	return strings.Fields(c.CORSAllowOrigins)
}
