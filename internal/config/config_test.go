package config

import (
	"os"
	"strings"
	"testing"

	"github.com/cesargomez89/tidarr/internal/constants"
)

func TestLoad(t *testing.T) {
	// Test default values
	cfg := Load()

	if cfg.Port != constants.DefaultPort {
		t.Errorf("Expected Port to be %s, got %s", constants.DefaultPort, cfg.Port)
	}

	if cfg.TidalURL != constants.DefaultTidalURL {
		t.Errorf("Expected TidalURL to be %s, got %s", constants.DefaultTidalURL, cfg.TidalURL)
	}

	if cfg.CanonicalURL != constants.DefaultCanonicalURL {
		t.Errorf("Expected CanonicalURL to be %s, got %s", constants.DefaultCanonicalURL, cfg.CanonicalURL)
	}

	if cfg.SessionFile != constants.DefaultSessionFile {
		t.Errorf("Expected SessionFile to be %s, got %s", constants.DefaultSessionFile, cfg.SessionFile)
	}

	if cfg.DisableDedup {
		t.Error("Expected deduplication to be enabled by default")
	}
}

func TestLoadWithEnvVars(t *testing.T) {
	// Set environment variables
	os.Setenv("PORT", "9090")
	os.Setenv("TIDAL_URL", "http://tidal.local:7272/")
	os.Setenv("LIDARR_URL", "http://lidarr.local:8686")
	os.Setenv("LIDARR_API_KEY", "secret")
	os.Setenv("CACHE_DB_PATH", "")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("TIDAL_URL")
		os.Unsetenv("LIDARR_URL")
		os.Unsetenv("LIDARR_API_KEY")
		os.Unsetenv("CACHE_DB_PATH")
	}()

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Expected Port to be 9090, got %s", cfg.Port)
	}

	if cfg.TidalURL != "http://tidal.local:7272" {
		t.Errorf("Expected trailing slash to be trimmed, got %s", cfg.TidalURL)
	}

	if cfg.LidarrAPIKey != "secret" {
		t.Errorf("Expected LidarrAPIKey to be secret, got %s", cfg.LidarrAPIKey)
	}

	if cfg.CacheDBPath != "" {
		t.Errorf("Expected an explicitly empty CACHE_DB_PATH to disable the cache, got %s", cfg.CacheDBPath)
	}
}

func TestDisableDedupFlag(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"1", false},
		{"yes", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("DISABLE_DEDUP", tt.value)
			if got := Load().DisableDedup; got != tt.want {
				t.Errorf("DISABLE_DEDUP=%q gave %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func validConfig() Config {
	return Config{
		Port:         "7171",
		TidalURL:     "http://127.0.0.1:7272",
		CanonicalURL: "https://api.lidarr.audio",
		ScrobblerURL: "https://ws.audioscrobbler.com",
		LidarrURL:    "http://localhost:8686",
		LidarrAPIKey: "key",
		SessionFile:  "session.toml",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *Config) {}, wantErr: false},
		{name: "auto log format", mutate: func(c *Config) { c.LogFormat = "auto" }, wantErr: false},
		{name: "cache disabled", mutate: func(c *Config) { c.CacheDBPath = "" }, wantErr: false},
		{name: "invalid port - not a number", mutate: func(c *Config) { c.Port = "abc" }, wantErr: true},
		{name: "invalid port - out of range", mutate: func(c *Config) { c.Port = "99999" }, wantErr: true},
		{name: "empty port", mutate: func(c *Config) { c.Port = "" }, wantErr: true},
		{name: "relative tidal url", mutate: func(c *Config) { c.TidalURL = "tidal" }, wantErr: true},
		{name: "missing lidarr url", mutate: func(c *Config) { c.LidarrURL = "" }, wantErr: true},
		{name: "missing api key", mutate: func(c *Config) { c.LidarrAPIKey = "" }, wantErr: true},
		{name: "empty session file", mutate: func(c *Config) { c.SessionFile = "" }, wantErr: true},
		{name: "invalid log level", mutate: func(c *Config) { c.LogLevel = "invalid" }, wantErr: true},
		{name: "invalid log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = ""
	cfg.LidarrAPIKey = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "PORT") || !strings.Contains(err.Error(), "LIDARR_API_KEY") {
		t.Errorf("Expected both problems to be reported, got: %v", err)
	}
}

func TestGetEnv(t *testing.T) {
	// Test with existing env var
	os.Setenv("TEST_VAR", "test_value")
	defer os.Unsetenv("TEST_VAR")

	value := getEnv("TEST_VAR", "default")
	if value != "test_value" {
		t.Errorf("Expected 'test_value', got '%s'", value)
	}

	// Test with non-existing env var
	value = getEnv("NON_EXISTING_VAR", "default")
	if value != "default" {
		t.Errorf("Expected 'default', got '%s'", value)
	}
}
