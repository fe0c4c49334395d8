package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

type Config struct {
	Server struct {
		Port           string   `yaml:"port"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	API struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"api"`
	Session struct {
		Secret string `yaml:"secret"`
		Secure bool   `yaml:"secure"`
		MaxAge int    `yaml:"max_age"`
	} `yaml:"session"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	League struct {
		Timezone string `yaml:"timezone"`
	} `yaml:"league"`

	location *time.Location
}

func defaultConfig() *Config {
	var config Config
	config.Server.Port = "8080"
	config.API.BaseURL = "http://localhost:8000"
	config.Session.MaxAge = 7 * 24 * 60 * 60
	config.Log.Level = "info"
	config.Log.Pretty = true
	config.League.Timezone = models.DefaultLeagueTimezone
	return &config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// loadConfig reads the YAML file at path over the defaults and then applies
// environment overrides. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Server.Port = getEnv("PORT", config.Server.Port)
	config.API.BaseURL = getEnv("BACKEND_URL", config.API.BaseURL)
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		config.Server.AllowedOrigins = splitList(origins)
	}
	config.Session.Secret = getEnv("SESSION_SECRET", config.Session.Secret)
	config.Session.Secure = getEnvAsBool("SESSION_SECURE", config.Session.Secure)
	config.Session.MaxAge = getEnvAsInt("SESSION_MAX_AGE", config.Session.MaxAge)
	config.Log.Level = getEnv("LOG_LEVEL", config.Log.Level)
	config.Log.Pretty = getEnvAsBool("LOG_PRETTY", config.Log.Pretty)
	config.League.Timezone = getEnv("LEAGUE_TIMEZONE", config.League.Timezone)

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if len(c.Session.Secret) < 32 {
		return errors.New("SESSION_SECRET must be at least 32 bytes")
	}
	if c.API.BaseURL == "" {
		return errors.New("BACKEND_URL is required")
	}
	if c.Session.MaxAge <= 0 {
		return fmt.Errorf("session max_age must be positive, got %d", c.Session.MaxAge)
	}
	// The session cookie is sent cross-origin, so every origin must be named.
	for _, origin := range c.Server.AllowedOrigins {
		if strings.Contains(origin, "*") {
			return fmt.Errorf("CORS origin %q: wildcards are not allowed with credentialed requests", origin)
		}
	}

	loc, err := time.LoadLocation(c.League.Timezone)
	if err != nil {
		return fmt.Errorf("invalid LEAGUE_TIMEZONE %q: %w", c.League.Timezone, err)
	}
	c.location = loc
	return nil
}

// Location is the league time zone, set once the config is validated.
func (c *Config) Location() *time.Location {
	return c.location
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
