// Package identity maps foreign catalog artists onto artists the manager
// already knows, so one logical artist never ends up as two library entries.
package identity

import (
	"context"
	"errors"

	"github.com/cesargomez89/tidarr/internal/constants"
	"github.com/cesargomez89/tidarr/internal/domain"
	"github.com/cesargomez89/tidarr/internal/ids"
	"github.com/cesargomez89/tidarr/internal/textutil"
)

// ErrUnresolvedArtist means no roster entry matches any contributor.
var ErrUnresolvedArtist = errors.New("no library artist matches the album contributors")

// Roster lists the artists already in the manager's library.
type Roster interface {
	ListArtists(ctx context.Context) ([]domain.RosterArtist, error)
}

// Resolve picks the primary artist for an album. Roster entries are tried
// in order and, for each, the contributors in order; the first name match
// wins.
func Resolve(contributors []domain.ForeignArtist, roster []domain.RosterArtist) (domain.Artist, error) {
	for _, entry := range roster {
		for _, c := range contributors {
			if textutil.NamesMatch(entry.ArtistName, c.Name) {
				return primaryArtist(entry, c), nil
			}
		}
	}
	return domain.Artist{}, ErrUnresolvedArtist
}

func primaryArtist(entry domain.RosterArtist, c domain.ForeignArtist) domain.Artist {
	id := entry.ForeignArtistID
	if id == "" {
		id = ids.Encode(c.ID, ids.Artist)
	}
	name := entry.ArtistName
	if name == "" {
		name = c.Name
	}
	return domain.Artist{
		ArtistAliases:  []string{},
		ArtistName:     name,
		Disambiguation: "",
		Genres:         []string{},
		ID:             id,
		Images:         []domain.Image{},
		Links:          []domain.Link{},
		OldIDs:         []string{},
		SortName:       textutil.SortName(name),
		Status:         constants.StatusActive,
		Type:           constants.TypeArtist,
	}
}
