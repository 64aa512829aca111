package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/cesargomez89/tidarr/internal/domain"
)

// MockProvider is an in-memory Provider. Err, when set, fails every call.
type MockProvider struct {
	ArtistHits []domain.ForeignArtist
	AlbumHits  []domain.ForeignAlbum
	Artists    map[int64]domain.ForeignArtist
	Albums     map[int64]domain.ForeignAlbum
	Tracks     map[int64][]domain.ForeignTrack
	Err        error

	mu        sync.Mutex
	calls     map[string]int
	lastQuery string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		Artists: make(map[int64]domain.ForeignArtist),
		Albums:  make(map[int64]domain.ForeignAlbum),
		Tracks:  make(map[int64][]domain.ForeignTrack),
	}
}

// Calls returns how many times method was invoked.
func (p *MockProvider) Calls(method string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[method]
}

// LastQuery returns the term of the most recent search.
func (p *MockProvider) LastQuery() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastQuery
}

func (p *MockProvider) recordQuery(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastQuery = query
}

func (p *MockProvider) record(method string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.calls == nil {
		p.calls = make(map[string]int)
	}
	p.calls[method]++
	return p.Err
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func (p *MockProvider) SearchArtists(ctx context.Context, query string, offset, limit int) ([]domain.ForeignArtist, error) {
	p.recordQuery(query)
	if err := p.record("SearchArtists"); err != nil {
		return nil, err
	}
	return page(p.ArtistHits, offset, limit), nil
}

func (p *MockProvider) SearchAlbums(ctx context.Context, query string, offset, limit int) ([]domain.ForeignAlbum, error) {
	p.recordQuery(query)
	if err := p.record("SearchAlbums"); err != nil {
		return nil, err
	}
	return page(p.AlbumHits, offset, limit), nil
}

func (p *MockProvider) GetArtist(ctx context.Context, id int64) (*domain.ForeignArtist, error) {
	if err := p.record("GetArtist"); err != nil {
		return nil, err
	}
	a, ok := p.Artists[id]
	if !ok {
		return nil, fmt.Errorf("artist %d: %w", id, ErrNotFound)
	}
	return &a, nil
}

func (p *MockProvider) GetAlbum(ctx context.Context, id int64) (*domain.ForeignAlbum, error) {
	if err := p.record("GetAlbum"); err != nil {
		return nil, err
	}
	a, ok := p.Albums[id]
	if !ok {
		return nil, fmt.Errorf("album %d: %w", id, ErrNotFound)
	}
	return &a, nil
}

func (p *MockProvider) GetAlbumTracks(ctx context.Context, albumID int64) ([]domain.ForeignTrack, error) {
	if err := p.record("GetAlbumTracks"); err != nil {
		return nil, err
	}
	return p.Tracks[albumID], nil
}

var _ Provider = (*MockProvider)(nil)
