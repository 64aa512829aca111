package lidarr

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cesargomez89/tidarr/internal/domain"
)

const rosterCacheKey = "lidarr:roster"

type Cache interface {
	GetCache(key string) ([]byte, error)
	SetCache(key string, data []byte, ttl time.Duration) error
}

// CachedRoster keeps the roster for a short while so that a burst of album
// lookups does not list the whole library each time.
type CachedRoster struct {
	client ClientInterface
	cache  Cache
	ttl    time.Duration
}

func NewCachedRoster(client ClientInterface, cache Cache, ttl time.Duration) *CachedRoster {
	return &CachedRoster{
		client: client,
		cache:  cache,
		ttl:    ttl,
	}
}

func (c *CachedRoster) ListArtists(ctx context.Context) ([]domain.RosterArtist, error) {
	data, err := c.cache.GetCache(rosterCacheKey)
	if err != nil {
		return nil, err
	}

	if data != nil {
		var cached []domain.RosterArtist
		if unmarshalErr := json.Unmarshal(data, &cached); unmarshalErr == nil {
			return cached, nil
		}
	}

	artists, err := c.client.ListArtists(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(artists); err == nil {
		_ = c.cache.SetCache(rosterCacheKey, data, c.ttl)
	}
	return artists, nil
}

// RefreshArtist is never cached.
func (c *CachedRoster) RefreshArtist(ctx context.Context, artistID int) (*CommandStatus, error) {
	return c.client.RefreshArtist(ctx, artistID)
}

var _ ClientInterface = (*CachedRoster)(nil)
