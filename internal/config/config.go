package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/cesargomez89/tidarr/internal/constants"
)

// Config holds all application configuration
type Config struct {
	Port         string
	TidalURL     string
	CanonicalURL string
	ScrobblerURL string
	LidarrURL    string
	LidarrAPIKey string
	SessionFile  string
	CacheDBPath  string
	LogLevel     string
	LogFormat    string
	DisableDedup bool
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", constants.DefaultPort),
		TidalURL:     strings.TrimSuffix(getEnv("TIDAL_URL", constants.DefaultTidalURL), "/"),
		CanonicalURL: strings.TrimSuffix(getEnv("CANONICAL_URL", constants.DefaultCanonicalURL), "/"),
		ScrobblerURL: strings.TrimSuffix(getEnv("SCROBBLER_URL", constants.DefaultScrobblerURL), "/"),
		LidarrURL:    strings.TrimSuffix(getEnv("LIDARR_URL", ""), "/"),
		LidarrAPIKey: getEnv("LIDARR_API_KEY", ""),
		SessionFile:  getEnv("SESSION_CONFIG_FILE", constants.DefaultSessionFile),
		CacheDBPath:  getEnv("CACHE_DB_PATH", constants.DefaultCacheDBPath),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		DisableDedup: parseFlag(getEnv("DISABLE_DEDUP", "")),
	}
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errors []string

	// Validate Port
	if c.Port == "" {
		errors = append(errors, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	errors = append(errors, validateURL("TIDAL_URL", c.TidalURL)...)
	errors = append(errors, validateURL("CANONICAL_URL", c.CanonicalURL)...)
	errors = append(errors, validateURL("SCROBBLER_URL", c.ScrobblerURL)...)
	errors = append(errors, c.ValidateLidarr()...)

	if c.SessionFile == "" {
		errors = append(errors, "SESSION_CONFIG_FILE cannot be empty")
	}

	// Validate LogLevel
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	// Validate LogFormat
	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
		"auto": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, auto, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// ValidateLidarr checks only the settings needed to talk to the manager.
// Commands that never serve traffic (refresh-artist) use it on its own.
func (c *Config) ValidateLidarr() []string {
	var errors []string
	errors = append(errors, validateURL("LIDARR_URL", c.LidarrURL)...)
	if c.LidarrAPIKey == "" {
		errors = append(errors, "LIDARR_API_KEY cannot be empty")
	}
	return errors
}

func validateURL(name, value string) []string {
	if value == "" {
		return []string{name + " cannot be empty"}
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return []string{fmt.Sprintf("%s is not a valid URL: %s", name, value)}
	}
	return nil
}

// parseFlag accepts "true" in any case; everything else is false.
func parseFlag(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
