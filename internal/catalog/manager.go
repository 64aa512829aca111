package catalog

import (
	"github.com/cesargomez89/tidarr/internal/httpclient"
	"github.com/cesargomez89/tidarr/internal/logger"
	"github.com/cesargomez89/tidarr/internal/store"
)

// Options wires a Provider for the running process.
type Options struct {
	BaseURL string
	Client  *httpclient.Client
	Auth    Authorizer
	DB      *store.DB // nil disables the response cache
	TTLs    TTLs
	Logger  *logger.Logger
}

// NewProvider returns the helper-backed provider, wrapped in the response
// cache when a database is given.
func NewProvider(opts Options) Provider {
	tidal := NewTidalProvider(opts.BaseURL, opts.Client, opts.Auth, opts.Logger)
	if opts.DB == nil {
		return tidal
	}
	ttls := opts.TTLs
	if ttls == (TTLs{}) {
		ttls = DefaultTTLs()
	}
	return NewCachedProvider(tidal, &storeCache{store: opts.DB}, ttls, opts.Logger)
}
