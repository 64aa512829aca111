package catalog

import (
	"encoding/json"
)

// The helper API serialises its catalog objects field by field, so most
// nested values can be null and ids arrive as plain JSON numbers.

type apiResponse[T any] struct {
	Data T `json:"data"`
}

type APIArtist struct {
	ID         json.Number `json:"id"`
	Name       string      `json:"name"`
	Picture    string      `json:"picture"`
	PictureXL  string      `json:"picture_xl"`
	ListenURL  string      `json:"listen_url"`
	Popularity int         `json:"popularity"`
	Albums     []APIAlbum  `json:"albums"`
}

type APIAlbum struct {
	ID                json.Number `json:"id"`
	Name              string      `json:"name"`
	Version           *string     `json:"version"`
	Type              string      `json:"type"`
	Popularity        int         `json:"popularity"`
	ReleaseDate       string      `json:"release_date"`
	Copyright         string      `json:"copyright"`
	Cover             string      `json:"cover"`
	CoverXL           string      `json:"cover_xl"`
	ListenURL         string      `json:"listen_url"`
	NumTracks         int         `json:"num_tracks"`
	NumVolumes        int         `json:"num_volumes"`
	Duration          int         `json:"duration"`
	AudioModes        []string    `json:"audio_modes"`
	MediaMetadataTags []string    `json:"media_metadata_tags"`
	Artist            *APIArtist  `json:"artist"`
	Artists           []APIArtist `json:"artists"`
}

type APITrack struct {
	ID                json.Number `json:"id"`
	Name              string      `json:"name"`
	Version           *string     `json:"version"`
	Popularity        int         `json:"popularity"`
	Duration          int         `json:"duration"`
	TrackNum          int         `json:"track_num"`
	VolumeNum         int         `json:"volume_num"`
	ISRC              string      `json:"isrc"`
	AudioModes        []string    `json:"audio_modes"`
	MediaMetadataTags []string    `json:"media_metadata_tags"`
	Artists           []APIArtist `json:"artists"`
}
