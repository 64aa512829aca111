// Package translate turns foreign catalog records into the metadata
// provider's record shapes.
package translate

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cesargomez89/tidarr/internal/constants"
	"github.com/cesargomez89/tidarr/internal/domain"
	"github.com/cesargomez89/tidarr/internal/ids"
	"github.com/cesargomez89/tidarr/internal/textutil"
)

// ErrIncompleteRecord means the foreign catalog returned too little to
// build a record, such as an album without tracks.
var ErrIncompleteRecord = errors.New("incomplete foreign record")

// SearchArtist builds the artist record used in search results.
func SearchArtist(a domain.ForeignArtist) domain.Artist {
	return domain.Artist{
		ArtistAliases:  []string{},
		ArtistName:     a.Name,
		Disambiguation: "",
		Genres:         []string{},
		ID:             ids.Encode(a.ID, ids.Artist),
		Images:         images(constants.CoverTypePoster, a.PictureURL),
		Links:          links(a.ListenURL),
		OldIDs:         []string{},
		Overview:       "",
		SortName:       textutil.SortName(a.Name),
		Status:         constants.StatusActive,
		Type:           constants.TypeArtist,
	}
}

// Artist builds the artist lookup record including its album list.
func Artist(a domain.ForeignArtist) domain.ArtistDetail {
	artist := SearchArtist(a)
	artist.Overview = constants.ForeignOverview

	albums := make([]domain.AlbumSummary, 0, len(a.Albums))
	for _, al := range a.Albums {
		albums = append(albums, AlbumSummary(al))
	}
	return domain.ArtistDetail{Artist: artist, Albums: albums}
}

// AlbumSummary builds one entry of an artist's album list.
func AlbumSummary(a domain.ForeignAlbum) domain.AlbumSummary {
	return domain.AlbumSummary{
		ID:              ids.Encode(a.ID, ids.Album),
		OldIDs:          []string{},
		ReleaseStatuses: []string{constants.ReleaseOfficial},
		SecondaryTypes:  SecondaryTypes(a.Title),
		Title:           a.Title,
		Type:            DisplayType(a.Type),
	}
}

// Album builds the full album record for a, credited to primary.
func Album(a domain.ForeignAlbum, primary domain.Artist, tracks []domain.ForeignTrack) (*domain.Album, error) {
	if len(tracks) == 0 {
		return nil, ErrIncompleteRecord
	}

	released := ReleaseDate(a.ReleaseDate)
	title := textutil.TitleCase(a.Title)
	trackCount := a.NumTracks
	if trackCount == 0 {
		trackCount = len(tracks)
	}
	label := []string{}
	if a.Copyright != "" {
		label = []string{a.Copyright}
	}

	release := domain.Release{
		Country:        []string{constants.CountryWorldwide},
		Disambiguation: "",
		ID:             ids.Encode(a.ID, ids.Release),
		Label:          label,
		Media:          Media(tracks),
		OldIDs:         []string{},
		ReleaseDate:    released,
		Status:         constants.ReleaseOfficial,
		Title:          title,
		TrackCount:     trackCount,
		Tracks:         Tracks(tracks, primary.ID),
	}

	return &domain.Album{
		Aliases:        []string{},
		ArtistID:       primary.ID,
		Artists:        []domain.Artist{primary},
		Disambiguation: "",
		Genres:         []string{},
		ID:             ids.Encode(a.ID, ids.Album),
		Images:         images(constants.CoverTypeCover, a.CoverURL),
		Links:          []domain.Link{},
		OldIDs:         []string{},
		Overview:       constants.ForeignOverview,
		ReleaseDate:    released,
		Releases:       []domain.Release{release},
		SecondaryTypes: SecondaryTypes(a.Title),
		Title:          title,
		Type:           DisplayType(a.Type),
	}, nil
}

// Media returns one CD medium per distinct volume number, ascending.
func Media(tracks []domain.ForeignTrack) []domain.Medium {
	seen := make(map[int]bool)
	var volumes []int
	for _, t := range tracks {
		if !seen[t.VolumeNumber] {
			seen[t.VolumeNumber] = true
			volumes = append(volumes, t.VolumeNumber)
		}
	}
	sort.Ints(volumes)

	media := make([]domain.Medium, 0, len(volumes))
	for _, v := range volumes {
		media = append(media, domain.Medium{Format: constants.MediumFormatCD, Name: "", Position: v})
	}
	return media
}

// Tracks numbers tracks 1..n in the order given. The foreign track id is
// encoded twice: once as the track id and once as the recording id.
func Tracks(tracks []domain.ForeignTrack, artistID string) []domain.Track {
	out := make([]domain.Track, 0, len(tracks))
	for i, t := range tracks {
		pos := i + 1
		out = append(out, domain.Track{
			ArtistID:        artistID,
			DurationMS:      t.Duration * 1000,
			ID:              ids.Encode(t.ID, ids.Track),
			MediumNumber:    t.VolumeNumber,
			OldIDs:          []string{},
			OldRecordingIDs: []string{},
			RecordingID:     ids.Encode(t.ID, ids.Recording),
			TrackName:       t.Title,
			TrackNumber:     strconv.Itoa(pos),
			TrackPosition:   pos,
		})
	}
	return out
}

// DisplayType maps a catalog album type to the provider's spelling.
func DisplayType(raw string) string {
	if strings.EqualFold(raw, "ep") {
		return "EP"
	}
	return textutil.TitleCase(raw)
}

// SecondaryTypes tags live recordings by title.
func SecondaryTypes(title string) []string {
	if strings.Contains(strings.ToLower(title), "live") {
		return []string{constants.SecondaryTypeLive}
	}
	return []string{}
}

var dateLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	time.RFC3339,
	"2006-01-02",
}

// ReleaseDate reformats a catalog timestamp as YYYY-MM-DD. Unknown formats
// yield "".
func ReleaseDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func images(coverType, url string) []domain.Image {
	if url == "" {
		return []domain.Image{}
	}
	return []domain.Image{{CoverType: coverType, URL: url}}
}

func links(url string) []domain.Link {
	if url == "" {
		return []domain.Link{}
	}
	return []domain.Link{{Target: url, Type: constants.LinkTypeTidal}}
}
