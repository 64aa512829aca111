// Package engine resolves manager lookups against the foreign catalog and
// returns records in the metadata provider's shape.
package engine

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cesargomez89/tidarr/internal/catalog"
	"github.com/cesargomez89/tidarr/internal/constants"
	"github.com/cesargomez89/tidarr/internal/dedup"
	"github.com/cesargomez89/tidarr/internal/domain"
	"github.com/cesargomez89/tidarr/internal/identity"
	"github.com/cesargomez89/tidarr/internal/logger"
	"github.com/cesargomez89/tidarr/internal/textutil"
	"github.com/cesargomez89/tidarr/internal/translate"
)

type Options struct {
	Dedup  dedup.Options
	Logger *logger.Logger
}

// Engine holds no request state; one instance serves all requests.
type Engine struct {
	provider catalog.Provider
	roster   identity.Roster
	dedup    dedup.Options
	log      *logger.Logger
}

func New(provider catalog.Provider, roster identity.Roster, opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}
	return &Engine{
		provider: provider,
		roster:   roster,
		dedup:    opts.Dedup,
		log:      log.WithComponent("engine"),
	}
}

// unescapeQuery undoes the extra round of encoding the manager applies to
// search terms. A literal "+" survives. Invalid escapes leave the query as
// is.
func unescapeQuery(query string) string {
	if q, err := url.PathUnescape(query); err == nil {
		return q
	}
	return query
}

// Search returns artist records for query, exact and normalized name
// matches first. Catalog failures yield an empty list.
func (e *Engine) Search(ctx context.Context, query string) []domain.Artist {
	query = unescapeQuery(query)
	hits, err := e.provider.SearchArtists(ctx, query, 0, constants.SearchPageSize)
	if err != nil {
		e.log.Warn("Artist search failed", "query", query, "outcome", catalog.Classify(err).String(), "error", err)
		return []domain.Artist{}
	}

	ranked := Rank(hits, query, func(a domain.ForeignArtist) string { return a.Name })
	artists := make([]domain.Artist, 0, len(ranked))
	for _, a := range ranked {
		artists = append(artists, translate.SearchArtist(a))
	}
	e.log.Debug("Artist search", "query", query, "hits", len(artists))
	return artists
}

// SearchEntities wraps Search results for the combined search mode.
func (e *Engine) SearchEntities(ctx context.Context, query string) []domain.SearchEntity {
	artists := e.Search(ctx, query)
	entities := make([]domain.SearchEntity, 0, len(artists))
	for i := range artists {
		entities = append(entities, domain.SearchEntity{
			Album:  nil,
			Artist: &artists[i],
			Score:  constants.SearchScore,
		})
	}
	return entities
}

// Artist returns the artist record with its deduplicated album list.
func (e *Engine) Artist(ctx context.Context, id int64) (*domain.ArtistDetail, error) {
	log := e.log.WithEntity("artist", id)
	foreign, err := e.provider.GetArtist(ctx, id)
	if err != nil {
		log.Warn("Artist lookup failed", "outcome", catalog.Classify(err).String(), "error", err)
		return nil, err
	}

	foreign.Albums = dedup.Dedupe(foreign.Albums, e.dedup)
	detail := translate.Artist(*foreign)
	log.Debug("Artist resolved", "albums", len(detail.Albums))
	return &detail, nil
}

// Album returns the album record. The primary artist must resolve against
// the manager's roster, otherwise no album is produced.
func (e *Engine) Album(ctx context.Context, id int64) (*domain.Album, error) {
	log := e.log.WithEntity("album", id)
	foreign, err := e.provider.GetAlbum(ctx, id)
	if err != nil {
		log.Warn("Album lookup failed", "outcome", catalog.Classify(err).String(), "error", err)
		return nil, err
	}

	roster, err := e.roster.ListArtists(ctx)
	if err != nil {
		log.Warn("Roster lookup failed", "error", err)
		return nil, fmt.Errorf("list roster: %w", err)
	}

	primary, err := identity.Resolve(foreign.Contributors(), roster)
	if err != nil {
		log.Info("Album has no library artist", "artist", foreign.PrimaryArtistName())
		return nil, err
	}

	tracks, err := e.provider.GetAlbumTracks(ctx, id)
	if err != nil {
		log.Warn("Track lookup failed", "outcome", catalog.Classify(err).String(), "error", err)
		return nil, err
	}

	album, err := translate.Album(*foreign, primary, tracks)
	if err != nil {
		log.Warn("Album translation failed", "error", err)
		return nil, err
	}
	log.Debug("Album resolved", "artist", primary.ArtistName, "tracks", len(tracks))
	return album, nil
}

// ArtistAlbums searches the catalog for albums credited to name or to the
// various-artists credit and deduplicates them. A failure after the first
// page returns what was collected so far.
func (e *Engine) ArtistAlbums(ctx context.Context, name string) ([]domain.ForeignAlbum, error) {
	name = unescapeQuery(name)
	var albums []domain.ForeignAlbum

	for page := 0; page < constants.MaxSearchPages; page++ {
		hits, err := e.provider.SearchAlbums(ctx, name, page*constants.SearchPageSize, constants.SearchPageSize)
		if err != nil {
			if page == 0 {
				e.log.Warn("Album search failed", "artist", name, "outcome", catalog.Classify(err).String(), "error", err)
				return nil, err
			}
			e.log.Warn("Album search stopped early", "artist", name, "page", page, "error", err)
			break
		}

		for _, a := range hits {
			if creditedTo(a, name) {
				albums = append(albums, a)
			}
		}
		if len(hits) < constants.SearchPageSize {
			break
		}
	}

	return dedup.Dedupe(albums, e.dedup), nil
}

func creditedTo(a domain.ForeignAlbum, name string) bool {
	primary := a.PrimaryArtistName()
	return textutil.NamesMatch(primary, name) ||
		textutil.NamesMatch(primary, constants.VariousArtistsDutch) ||
		textutil.NamesMatch(primary, constants.VariousArtists)
}
