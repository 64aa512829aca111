// Package lidarr talks to the music-library manager's own API: the artist
// roster used for identity resolution and the command endpoint.
package lidarr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cesargomez89/tidarr/internal/constants"
	"github.com/cesargomez89/tidarr/internal/domain"
	"github.com/cesargomez89/tidarr/internal/httpclient"
	"github.com/cesargomez89/tidarr/internal/logger"
)

// ErrUnauthorized means the manager rejected the API key.
var ErrUnauthorized = errors.New("lidarr rejected the api key")

const (
	artistEndpoint  = "/api/v1/artist"
	commandEndpoint = "/api/v1/command"

	CommandRefreshArtist = "RefreshArtist"
)

type ClientInterface interface {
	ListArtists(ctx context.Context) ([]domain.RosterArtist, error)
	RefreshArtist(ctx context.Context, artistID int) (*CommandStatus, error)
}

var _ ClientInterface = (*Client)(nil)

type command struct {
	Name     string `json:"name"`
	ArtistID int    `json:"artistId"`
}

// CommandStatus is the manager's acknowledgement of a queued command.
type CommandStatus struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Client struct {
	httpClient *httpclient.Client
	log        *logger.Logger
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string, client *httpclient.Client, log *logger.Logger) *Client {
	if client == nil {
		client = httpclient.NewClient(nil, httpclient.Options{})
	}
	if log == nil {
		log = logger.Default()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: client,
		log:        log.WithComponent("lidarr"),
	}
}

// ListArtists returns every artist in the manager's library, in the order
// the manager lists them.
func (c *Client) ListArtists(ctx context.Context) ([]domain.RosterArtist, error) {
	var artists []domain.RosterArtist
	if err := c.do(ctx, http.MethodGet, artistEndpoint, nil, &artists); err != nil {
		return nil, err
	}
	if artists == nil {
		artists = []domain.RosterArtist{}
	}
	c.log.Debug("Fetched roster", "artists", len(artists))
	return artists, nil
}

// RefreshArtist queues a metadata refresh of one library artist.
func (c *Client) RefreshArtist(ctx context.Context, artistID int) (*CommandStatus, error) {
	body, err := json.Marshal(command{Name: CommandRefreshArtist, ArtistID: artistID})
	if err != nil {
		return nil, err
	}

	var status CommandStatus
	if err := c.do(ctx, http.MethodPost, commandEndpoint, body, &status); err != nil {
		return nil, err
	}
	c.log.Info("Queued artist refresh", "artist_id", artistID, "command_id", status.ID, "status", status.Status)
	return &status, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, target interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(constants.LidarrKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("lidarr returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
