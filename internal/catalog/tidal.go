package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cesargomez89/tidarr/internal/domain"
	"github.com/cesargomez89/tidarr/internal/httpclient"
	"github.com/cesargomez89/tidarr/internal/logger"
)

// TidalProvider reads the foreign catalog through the local helper API.
type TidalProvider struct {
	BaseURL string
	client  *httpclient.Client
	auth    Authorizer
	log     *logger.Logger
}

// NewTidalProvider builds a provider for the helper at baseURL. auth may be
// nil when the helper holds its own session.
func NewTidalProvider(baseURL string, client *httpclient.Client, auth Authorizer, log *logger.Logger) *TidalProvider {
	if client == nil {
		client = httpclient.NewClient(nil, httpclient.Options{})
	}
	if log == nil {
		log = logger.Default()
	}
	return &TidalProvider{
		BaseURL: baseURL,
		client:  client,
		auth:    auth,
		log:     log.WithComponent("tidal"),
	}
}

func searchQuery(query string, offset, limit int) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("offset", strconv.Itoa(offset))
	v.Set("limit", strconv.Itoa(limit))
	return v.Encode()
}

func (p *TidalProvider) SearchArtists(ctx context.Context, query string, offset, limit int) ([]domain.ForeignArtist, error) {
	u := fmt.Sprintf("%s/search/artists?%s", p.BaseURL, searchQuery(query, offset, limit))
	var resp apiResponse[[]APIArtist]
	if err := p.get(ctx, u, &resp); err != nil {
		return nil, err
	}

	artists := make([]domain.ForeignArtist, 0, len(resp.Data))
	for _, item := range resp.Data {
		a, err := item.ToDomain()
		if err != nil {
			p.log.Debug("Skipping artist hit", "error", err)
			continue
		}
		artists = append(artists, a)
	}
	return artists, nil
}

func (p *TidalProvider) SearchAlbums(ctx context.Context, query string, offset, limit int) ([]domain.ForeignAlbum, error) {
	u := fmt.Sprintf("%s/search/albums?%s", p.BaseURL, searchQuery(query, offset, limit))
	var resp apiResponse[[]APIAlbum]
	if err := p.get(ctx, u, &resp); err != nil {
		return nil, err
	}

	albums := make([]domain.ForeignAlbum, 0, len(resp.Data))
	for _, item := range resp.Data {
		a, err := item.ToDomain()
		if err != nil {
			p.log.Debug("Skipping album hit", "error", err)
			continue
		}
		albums = append(albums, a)
	}
	return albums, nil
}

// GetArtist returns the artist with its albums, EPs and singles.
func (p *TidalProvider) GetArtist(ctx context.Context, id int64) (*domain.ForeignArtist, error) {
	u := fmt.Sprintf("%s/artists/%d", p.BaseURL, id)
	var resp apiResponse[*APIArtist]
	if err := p.get(ctx, u, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("artist %d: %w", id, ErrNotFound)
	}

	artist, err := resp.Data.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return &artist, nil
}

func (p *TidalProvider) GetAlbum(ctx context.Context, id int64) (*domain.ForeignAlbum, error) {
	u := fmt.Sprintf("%s/albums/%d", p.BaseURL, id)
	var resp apiResponse[*APIAlbum]
	if err := p.get(ctx, u, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("album %d: %w", id, ErrNotFound)
	}

	album, err := resp.Data.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return &album, nil
}

// GetAlbumTracks returns the album's tracks in catalog order.
func (p *TidalProvider) GetAlbumTracks(ctx context.Context, albumID int64) ([]domain.ForeignTrack, error) {
	u := fmt.Sprintf("%s/album/%d/tracks", p.BaseURL, albumID)
	var resp apiResponse[[]APITrack]
	if err := p.get(ctx, u, &resp); err != nil {
		return nil, err
	}

	tracks := make([]domain.ForeignTrack, 0, len(resp.Data))
	for _, item := range resp.Data {
		t, err := item.ToDomain()
		if err != nil {
			p.log.Debug("Skipping track", "album_id", albumID, "error", err)
			continue
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

func (p *TidalProvider) get(ctx context.Context, url string, target interface{}) error {
	p.log.Debug("API request", "url", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if p.auth != nil {
		if header, err := p.auth.Authorization(); err == nil {
			req.Header.Set("Authorization", header)
		} else {
			p.log.Debug("Sending request without authorization", "url", url, "error", err)
		}
	}

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: API request failed: %s", ErrUpstreamUnavailable, resp.Status)
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}

var _ Provider = (*TidalProvider)(nil)
