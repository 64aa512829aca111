package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/cesargomez89/tidarr/internal/catalog"
	"github.com/cesargomez89/tidarr/internal/config"
	"github.com/cesargomez89/tidarr/internal/httpclient"
	"github.com/cesargomez89/tidarr/internal/lidarr"
	"github.com/cesargomez89/tidarr/internal/logger"
	"github.com/cesargomez89/tidarr/internal/store"
)

var errCacheDisabled = errors.New("response cache disabled (CACHE_DB_PATH is empty)")

type commandContext struct {
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config

	loggerOnce sync.Once
	log        *logger.Logger
}

func newCommandContext(logLevelFlag *string) *commandContext {
	return &commandContext{logLevelFlag: logLevelFlag}
}

func (c *commandContext) configValue() *config.Config {
	c.configOnce.Do(func() {
		cfg := config.Load()
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.LogLevel = strings.TrimSpace(*c.logLevelFlag)
		}
		c.config = cfg
	})
	return c.config
}

// logger writes to stderr so command output on stdout stays clean.
func (c *commandContext) logger() *logger.Logger {
	c.loggerOnce.Do(func() {
		cfg := c.configValue()
		c.log = logger.New(logger.Config{
			Output: os.Stderr,
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
		})
	})
	return c.log
}

// openCache opens the response cache, or returns errCacheDisabled.
func (c *commandContext) openCache() (*store.DB, error) {
	path := c.configValue().CacheDBPath
	if path == "" {
		return nil, errCacheDisabled
	}
	db, err := store.NewSQLiteDB(path)
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	return db, nil
}

// optionalCache is openCache for callers that work without a cache.
func (c *commandContext) optionalCache() *store.DB {
	db, err := c.openCache()
	if err != nil {
		if !errors.Is(err, errCacheDisabled) {
			c.logger().Warn("Continuing without response cache", "error", err)
		}
		return nil
	}
	return db
}

func (c *commandContext) provider(db *store.DB, auth catalog.Authorizer) catalog.Provider {
	return catalog.NewProvider(catalog.Options{
		BaseURL: c.configValue().TidalURL,
		Client:  httpclient.NewClient(nil, httpclient.Options{}),
		Auth:    auth,
		DB:      db,
		Logger:  c.logger(),
	})
}

func (c *commandContext) lidarrClient() *lidarr.Client {
	cfg := c.configValue()
	return lidarr.NewClient(cfg.LidarrURL, cfg.LidarrAPIKey, httpclient.NewClient(nil, httpclient.Options{}), c.logger())
}

func validationError(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
}
