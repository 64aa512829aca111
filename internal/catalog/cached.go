package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cesargomez89/tidarr/internal/constants"
	"github.com/cesargomez89/tidarr/internal/domain"
	"github.com/cesargomez89/tidarr/internal/logger"
	"github.com/cesargomez89/tidarr/internal/store"
)

type Cache interface {
	GetCache(key string) ([]byte, error)
	SetCache(key string, data []byte, ttl time.Duration) error
	ClearCache() error
}

// TTLs sets how long each kind of response stays cached.
type TTLs struct {
	Search time.Duration
	Artist time.Duration
	Album  time.Duration
	Tracks time.Duration
}

// DefaultTTLs returns the standard expiry table.
func DefaultTTLs() TTLs {
	return TTLs{
		Search: constants.SearchCacheTTL,
		Artist: constants.ArtistCacheTTL,
		Album:  constants.AlbumCacheTTL,
		Tracks: constants.TracksCacheTTL,
	}
}

// CachedProvider stores successful responses of another Provider.
// Failures and not-found results are never cached.
type CachedProvider struct {
	provider Provider
	cache    Cache
	ttls     TTLs
	log      *logger.Logger
}

func NewCachedProvider(provider Provider, cache Cache, ttls TTLs, log *logger.Logger) *CachedProvider {
	if log == nil {
		log = logger.Default()
	}
	return &CachedProvider{
		provider: provider,
		cache:    cache,
		ttls:     ttls,
		log:      log.WithComponent("catalog_cache"),
	}
}

// cached serves key from the cache or calls fetch and stores its result.
// A broken cache degrades to direct calls.
func cached[T any](c *CachedProvider, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	data, err := c.cache.GetCache(key)
	if err != nil {
		c.log.Warn("Cache read failed", "key", key, "error", err)
	}
	if data != nil {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			return v, nil
		}
	}

	v, err := fetch()
	if err != nil {
		return v, err
	}

	if data, err := json.Marshal(v); err == nil {
		if err := c.cache.SetCache(key, data, ttl); err != nil {
			c.log.Warn("Cache write failed", "key", key, "error", err)
		}
	}
	return v, nil
}

func (c *CachedProvider) SearchArtists(ctx context.Context, query string, offset, limit int) ([]domain.ForeignArtist, error) {
	key := fmt.Sprintf("search:artists:%s:%d:%d", query, offset, limit)
	return cached(c, key, c.ttls.Search, func() ([]domain.ForeignArtist, error) {
		return c.provider.SearchArtists(ctx, query, offset, limit)
	})
}

func (c *CachedProvider) SearchAlbums(ctx context.Context, query string, offset, limit int) ([]domain.ForeignAlbum, error) {
	key := fmt.Sprintf("search:albums:%s:%d:%d", query, offset, limit)
	return cached(c, key, c.ttls.Search, func() ([]domain.ForeignAlbum, error) {
		return c.provider.SearchAlbums(ctx, query, offset, limit)
	})
}

func (c *CachedProvider) GetArtist(ctx context.Context, id int64) (*domain.ForeignArtist, error) {
	return cached(c, fmt.Sprintf("artist:%d", id), c.ttls.Artist, func() (*domain.ForeignArtist, error) {
		return c.provider.GetArtist(ctx, id)
	})
}

func (c *CachedProvider) GetAlbum(ctx context.Context, id int64) (*domain.ForeignAlbum, error) {
	return cached(c, fmt.Sprintf("album:%d", id), c.ttls.Album, func() (*domain.ForeignAlbum, error) {
		return c.provider.GetAlbum(ctx, id)
	})
}

func (c *CachedProvider) GetAlbumTracks(ctx context.Context, albumID int64) ([]domain.ForeignTrack, error) {
	return cached(c, fmt.Sprintf("tracks:%d", albumID), c.ttls.Tracks, func() ([]domain.ForeignTrack, error) {
		return c.provider.GetAlbumTracks(ctx, albumID)
	})
}

func (c *CachedProvider) ClearCache() error {
	return c.cache.ClearCache()
}

var _ Provider = (*CachedProvider)(nil)

type storeCache struct {
	store *store.DB
}

func (s *storeCache) GetCache(key string) ([]byte, error) {
	return s.store.GetCache(key)
}

func (s *storeCache) SetCache(key string, data []byte, ttl time.Duration) error {
	return s.store.SetCache(key, data, ttl)
}

func (s *storeCache) ClearCache() error {
	return s.store.ClearCache()
}

var _ Cache = (*storeCache)(nil)
