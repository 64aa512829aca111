package domain

// ForeignArtist is an artist as read from the foreign catalog.
type ForeignArtist struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Popularity int            `json:"popularity,omitempty"`
	PictureURL string         `json:"picture_url,omitempty"`
	ListenURL  string         `json:"listen_url,omitempty"`
	Albums     []ForeignAlbum `json:"albums,omitempty"`
}

// ForeignAlbum is an album (or EP/single) as read from the foreign catalog.
type ForeignAlbum struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Version     string          `json:"version,omitempty"`
	Type        string          `json:"type,omitempty"`
	Popularity  int             `json:"popularity,omitempty"`
	ReleaseDate string          `json:"release_date,omitempty"`
	Copyright   string          `json:"copyright,omitempty"`
	CoverURL    string          `json:"cover_url,omitempty"`
	ListenURL   string          `json:"listen_url,omitempty"`
	NumTracks   int             `json:"num_tracks,omitempty"`
	NumVolumes  int             `json:"num_volumes,omitempty"`
	Duration    int             `json:"duration,omitempty"`
	AudioModes  []string        `json:"audio_modes,omitempty"`
	MediaTags   []string        `json:"media_tags,omitempty"`
	Artist      *ForeignArtist  `json:"artist,omitempty"`
	Artists     []ForeignArtist `json:"artists,omitempty"`
}

// ForeignTrack is one album track as read from the foreign catalog.
// Duration is in seconds.
type ForeignTrack struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Version      string          `json:"version,omitempty"`
	Popularity   int             `json:"popularity,omitempty"`
	Duration     int             `json:"duration"`
	TrackNumber  int             `json:"track_number"`
	VolumeNumber int             `json:"volume_number"`
	ISRC         string          `json:"isrc,omitempty"`
	AudioModes   []string        `json:"audio_modes,omitempty"`
	MediaTags    []string        `json:"media_tags,omitempty"`
	Artists      []ForeignArtist `json:"artists,omitempty"`
}

// PrimaryArtistName returns the name of the album's main credit.
func (a ForeignAlbum) PrimaryArtistName() string {
	if a.Artist != nil {
		return a.Artist.Name
	}
	if len(a.Artists) > 0 {
		return a.Artists[0].Name
	}
	return ""
}

// Contributors returns every credited artist, main credit first, without
// repeating the same id.
func (a ForeignAlbum) Contributors() []ForeignArtist {
	out := make([]ForeignArtist, 0, len(a.Artists)+1)
	seen := make(map[int64]bool)
	if a.Artist != nil {
		out = append(out, *a.Artist)
		seen[a.Artist.ID] = true
	}
	for _, c := range a.Artists {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}

func (a ForeignAlbum) EditionName() string    { return a.Title }
func (a ForeignAlbum) EditionPopularity() int { return a.Popularity }
func (a ForeignAlbum) EditionVersion() string { return a.Version }

func (t ForeignTrack) EditionName() string    { return t.Title }
func (t ForeignTrack) EditionPopularity() int { return t.Popularity }
func (t ForeignTrack) EditionVersion() string { return t.Version }

// RosterArtist is an artist already present in the manager's library.
type RosterArtist struct {
	ID              int    `json:"id"`
	ArtistName      string `json:"artistName"`
	ForeignArtistID string `json:"foreignArtistId"`
}
