// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort         = "7171"
	DefaultTidalURL     = "http://127.0.0.1:7272"
	DefaultCanonicalURL = "https://api.lidarr.audio"
	DefaultScrobblerURL = "https://ws.audioscrobbler.com"
	DefaultSessionFile  = "tidal-session.toml"
	DefaultCacheDBPath  = "tidarr-cache.db"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultRetryCount   = 3
	DefaultRetryBase    = 1 * time.Second
	DefaultRateLimit    = 10 // requests per second
	DefaultRateBurst    = 5
)

// Response cache TTLs, keyed by catalog operation
const (
	SearchCacheTTL = 1 * time.Hour
	ArtistCacheTTL = 12 * time.Hour
	AlbumCacheTTL  = 24 * time.Hour
	TracksCacheTTL = 24 * time.Hour
	RosterCacheTTL = 1 * time.Minute
)

// Catalog paging
const (
	SearchPageSize = 100
	MaxSearchPages = 10
)

// Canonical record values
const (
	ForeignOverview     = "!!--Imported from Tidal--!!"
	StatusActive        = "active"
	TypeArtist          = "Artist"
	ReleaseOfficial     = "Official"
	CountryWorldwide    = "Worldwide"
	MediumFormatCD      = "CD"
	CoverTypePoster     = "Poster"
	CoverTypeCover      = "Cover"
	LinkTypeTidal       = "tidal"
	SecondaryTypeLive   = "Live"
	SearchScore         = 100
	VariousArtistsDutch = "Verschillende artiesten"
	VariousArtists      = "Various Artists"
)

// Tidal image sizes
const (
	ArtistImageSize = "750x750"
	AlbumImageSize  = "1280x1280"
)

// Canonical provider paths intercepted by the proxy
const (
	SearchPath = "/api/v0.4/search"
	ArtistPath = "/api/v0.4/artist/"
	AlbumPath  = "/api/v0.4/album/"
)

// Proxy headers
const (
	ProxyHostHeader = "X-Proxy-Host"
	ScrobblerHost   = "ws.audioscrobbler.com"
	LidarrKeyHeader = "X-Api-Key"
)

// FilePermissions applies to the session file.
const FilePermissions = 0600
