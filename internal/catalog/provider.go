package catalog

import (
	"context"

	"github.com/cesargomez89/tidarr/internal/domain"
)

// Provider is the foreign catalog surface the engine depends on.
type Provider interface {
	SearchArtists(ctx context.Context, query string, offset, limit int) ([]domain.ForeignArtist, error)
	SearchAlbums(ctx context.Context, query string, offset, limit int) ([]domain.ForeignAlbum, error)
	GetArtist(ctx context.Context, id int64) (*domain.ForeignArtist, error)
	GetAlbum(ctx context.Context, id int64) (*domain.ForeignAlbum, error)
	GetAlbumTracks(ctx context.Context, albumID int64) ([]domain.ForeignTrack, error)
}

// Authorizer supplies the Authorization header for catalog requests.
type Authorizer interface {
	Authorization() (string, error)
}
