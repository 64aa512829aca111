// Package routing decides which inbound metadata requests are answered
// from the foreign catalog and which go to the canonical provider.
package routing

import (
	"fmt"
	"strings"

	"github.com/cesargomez89/tidarr/internal/constants"
	"github.com/cesargomez89/tidarr/internal/ids"
)

type Kind int

const (
	RoutePassthrough Kind = iota
	RouteSearch
	RouteForeignArtist
	// RouteSuppressedArtist is an artist lookup for a canonical id. It is
	// answered with not found so the manager only tracks foreign artists.
	RouteSuppressedArtist
	RouteForeignAlbum
)

func (k Kind) String() string {
	switch k {
	case RouteSearch:
		return "search"
	case RouteForeignArtist:
		return "foreign_artist"
	case RouteSuppressedArtist:
		return "suppressed_artist"
	case RouteForeignAlbum:
		return "foreign_album"
	default:
		return "passthrough"
	}
}

// Route is a classified request. ID is the decoded foreign id for the
// foreign routes and zero otherwise.
type Route struct {
	Kind Kind
	ID   int64
}

// Classify maps a request path to its route. A path carrying a synthetic
// tag that does not decode fails with ids.ErrMalformedIdentifier.
func Classify(path string) (Route, error) {
	switch {
	case strings.TrimSuffix(path, "/") == constants.SearchPath:
		return Route{Kind: RouteSearch}, nil

	case strings.HasPrefix(path, constants.ArtistPath):
		value := idSegment(path, constants.ArtistPath)
		if !ids.HasKind(value, ids.Artist) {
			return Route{Kind: RouteSuppressedArtist}, nil
		}
		id, err := decode(value, ids.Artist)
		if err != nil {
			return Route{}, err
		}
		return Route{Kind: RouteForeignArtist, ID: id}, nil

	case strings.HasPrefix(path, constants.AlbumPath):
		value := idSegment(path, constants.AlbumPath)
		if !ids.HasKind(value, ids.Album) {
			return Route{Kind: RoutePassthrough}, nil
		}
		id, err := decode(value, ids.Album)
		if err != nil {
			return Route{}, err
		}
		return Route{Kind: RouteForeignAlbum, ID: id}, nil
	}
	return Route{Kind: RoutePassthrough}, nil
}

// idSegment returns the path element right after prefix.
func idSegment(path, prefix string) string {
	rest := strings.TrimPrefix(path, prefix)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

func decode(value string, want ids.Kind) (int64, error) {
	id, kind, err := ids.Decode(value)
	if err != nil {
		return 0, err
	}
	if kind != want {
		return 0, fmt.Errorf("%w: expected %s id, got %s", ids.ErrMalformedIdentifier, want, kind)
	}
	return id, nil
}
