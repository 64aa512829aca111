package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cesargomez89/tidarr/internal/constants"
	"github.com/cesargomez89/tidarr/internal/domain"
	"github.com/cesargomez89/tidarr/internal/ids"
)

// parseID reads a numeric catalog id. Ids may come as integers or as
// floats with no fractional part.
func parseID(n json.Number) (int64, error) {
	if n == "" {
		return 0, fmt.Errorf("missing id")
	}
	id, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil || f != float64(int64(f)) {
			return 0, fmt.Errorf("invalid id %q", n.String())
		}
		id = int64(f)
	}
	if id < 0 || id > ids.MaxID {
		return 0, fmt.Errorf("id %d out of range", id)
	}
	return id, nil
}

// ensureAbsoluteURL turns a bare image id such as
// "a1b2c3d4-e5f6-..." into a resources URL of the given size.
func ensureAbsoluteURL(urlOrID, size string) string {
	if urlOrID == "" {
		return ""
	}
	if strings.HasPrefix(urlOrID, "http://") || strings.HasPrefix(urlOrID, "https://") {
		return urlOrID
	}
	path := strings.ReplaceAll(urlOrID, "-", "/")
	return fmt.Sprintf("https://resources.tidal.com/images/%s/%s.jpg", path, size)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func (r APIArtist) ToDomain() (domain.ForeignArtist, error) {
	id, err := parseID(r.ID)
	if err != nil {
		return domain.ForeignArtist{}, fmt.Errorf("artist %q: %w", r.Name, err)
	}
	artist := domain.ForeignArtist{
		ID:         id,
		Name:       r.Name,
		Popularity: r.Popularity,
		PictureURL: ensureAbsoluteURL(firstNonEmpty(r.PictureXL, r.Picture), constants.ArtistImageSize),
		ListenURL:  r.ListenURL,
	}
	for _, a := range r.Albums {
		album, err := a.ToDomain()
		if err != nil {
			continue
		}
		artist.Albums = append(artist.Albums, album)
	}
	return artist, nil
}

func (r APIAlbum) ToDomain() (domain.ForeignAlbum, error) {
	id, err := parseID(r.ID)
	if err != nil {
		return domain.ForeignAlbum{}, fmt.Errorf("album %q: %w", r.Name, err)
	}
	album := domain.ForeignAlbum{
		ID:          id,
		Title:       r.Name,
		Version:     deref(r.Version),
		Type:        r.Type,
		Popularity:  r.Popularity,
		ReleaseDate: r.ReleaseDate,
		Copyright:   r.Copyright,
		CoverURL:    ensureAbsoluteURL(firstNonEmpty(r.CoverXL, r.Cover), constants.AlbumImageSize),
		ListenURL:   r.ListenURL,
		NumTracks:   r.NumTracks,
		NumVolumes:  r.NumVolumes,
		Duration:    r.Duration,
		AudioModes:  r.AudioModes,
		MediaTags:   r.MediaMetadataTags,
		Artists:     convertContributors(r.Artists),
	}
	if r.Artist != nil {
		if main, err := r.Artist.contributor(); err == nil {
			album.Artist = &main
		}
	}
	return album, nil
}

func (r APITrack) ToDomain() (domain.ForeignTrack, error) {
	id, err := parseID(r.ID)
	if err != nil {
		return domain.ForeignTrack{}, fmt.Errorf("track %q: %w", r.Name, err)
	}
	return domain.ForeignTrack{
		ID:           id,
		Title:        r.Name,
		Version:      deref(r.Version),
		Popularity:   r.Popularity,
		Duration:     r.Duration,
		TrackNumber:  r.TrackNum,
		VolumeNumber: r.VolumeNum,
		ISRC:         r.ISRC,
		AudioModes:   r.AudioModes,
		MediaTags:    r.MediaMetadataTags,
		Artists:      convertContributors(r.Artists),
	}, nil
}

// contributor converts a credited artist without its album list; nesting
// stops at one level below the album.
func (r APIArtist) contributor() (domain.ForeignArtist, error) {
	id, err := parseID(r.ID)
	if err != nil || r.Name == "" {
		return domain.ForeignArtist{}, fmt.Errorf("incomplete contributor")
	}
	return domain.ForeignArtist{ID: id, Name: r.Name, Popularity: r.Popularity}, nil
}

func convertContributors(in []APIArtist) []domain.ForeignArtist {
	var out []domain.ForeignArtist
	for _, a := range in {
		c, err := a.contributor()
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}
