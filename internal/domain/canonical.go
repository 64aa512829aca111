package domain

// The canonical records mirror the metadata provider's JSON exactly. Field
// names and casing are part of the contract with the manager: top level
// artist, album, release and track keys are lowercase while album
// summaries, media and images use capitalised keys.

type Image struct {
	CoverType string `json:"CoverType"`
	URL       string `json:"Url"`
}

type Link struct {
	Target string `json:"target"`
	Type   string `json:"type"`
}

type Artist struct {
	ArtistAliases  []string `json:"artistaliases"`
	ArtistName     string   `json:"artistname"`
	Disambiguation string   `json:"disambiguation"`
	Genres         []string `json:"genres"`
	ID             string   `json:"id"`
	Images         []Image  `json:"images"`
	Links          []Link   `json:"links"`
	OldIDs         []string `json:"oldids"`
	Overview       string   `json:"overview"`
	SortName       string   `json:"sortname"`
	Status         string   `json:"status"`
	Type           string   `json:"type"`
}

// AlbumSummary is one entry of an artist's album list.
type AlbumSummary struct {
	ID              string   `json:"Id"`
	OldIDs          []string `json:"OldIds"`
	ReleaseStatuses []string `json:"ReleaseStatuses"`
	SecondaryTypes  []string `json:"SecondaryTypes"`
	Title           string   `json:"Title"`
	Type            string   `json:"Type"`
}

// ArtistDetail is the artist lookup response: the artist plus its albums.
type ArtistDetail struct {
	Artist
	Albums []AlbumSummary `json:"Albums"`
}

type Medium struct {
	Format   string `json:"Format"`
	Name     string `json:"Name"`
	Position int    `json:"Position"`
}

type Track struct {
	ArtistID        string   `json:"artistid"`
	DurationMS      int      `json:"durationms"`
	ID              string   `json:"id"`
	MediumNumber    int      `json:"mediumnumber"`
	OldIDs          []string `json:"oldids"`
	OldRecordingIDs []string `json:"oldrecordingids"`
	RecordingID     string   `json:"recordingid"`
	TrackName       string   `json:"trackname"`
	TrackNumber     string   `json:"tracknumber"`
	TrackPosition   int      `json:"trackposition"`
}

type Release struct {
	Country        []string `json:"country"`
	Disambiguation string   `json:"disambiguation"`
	ID             string   `json:"id"`
	Label          []string `json:"label"`
	Media          []Medium `json:"media"`
	OldIDs         []string `json:"oldids"`
	ReleaseDate    string   `json:"releasedate"`
	Status         string   `json:"status"`
	Title          string   `json:"title"`
	TrackCount     int      `json:"track_count"`
	Tracks         []Track  `json:"tracks"`
}

type Album struct {
	Aliases        []string  `json:"aliases"`
	ArtistID       string    `json:"artistid"`
	Artists        []Artist  `json:"artists"`
	Disambiguation string    `json:"disambiguation"`
	Genres         []string  `json:"genres"`
	ID             string    `json:"id"`
	Images         []Image   `json:"images"`
	Links          []Link    `json:"links"`
	OldIDs         []string  `json:"oldids"`
	Overview       string    `json:"overview"`
	ReleaseDate    string    `json:"releasedate"`
	Releases       []Release `json:"releases"`
	SecondaryTypes []string  `json:"secondarytypes"`
	Title          string    `json:"title"`
	Type           string    `json:"type"`
}

// SearchEntity is one hit of a mixed ("all") search. Album is always null
// for artist hits.
type SearchEntity struct {
	Album  *Album  `json:"album"`
	Artist *Artist `json:"artist"`
	Score  int     `json:"score"`
}
