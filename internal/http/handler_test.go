package httpapp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/cesargomez89/tidarr/internal/catalog"
	"github.com/cesargomez89/tidarr/internal/dedup"
	"github.com/cesargomez89/tidarr/internal/domain"
	"github.com/cesargomez89/tidarr/internal/engine"
	"github.com/cesargomez89/tidarr/internal/httpclient"
	"github.com/cesargomez89/tidarr/internal/ids"
	"github.com/cesargomez89/tidarr/internal/logger"
)

type staticRoster []domain.RosterArtist

func (r staticRoster) ListArtists(ctx context.Context) ([]domain.RosterArtist, error) {
	return r, nil
}

type testEnv struct {
	server       *httptest.Server
	canonicalHit chan *http.Request
	scrobbler    *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	p := catalog.NewMockProvider()
	p.ArtistHits = []domain.ForeignArtist{{ID: 2, Name: "Beyonce Knowles"}, {ID: 1, Name: "Beyoncé"}}
	p.Artists[1] = domain.ForeignArtist{ID: 1, Name: "Beyoncé", Albums: []domain.ForeignAlbum{{ID: 10, Title: "Lemonade", Type: "ALBUM"}}}
	p.Albums[10] = domain.ForeignAlbum{ID: 10, Title: "Lemonade", Type: "ALBUM", Artist: &domain.ForeignArtist{ID: 1, Name: "Beyoncé"}}
	p.Tracks[10] = []domain.ForeignTrack{{ID: 100, Title: "Pray You Catch Me", Duration: 196, VolumeNumber: 1}}
	p.Albums[11] = domain.ForeignAlbum{ID: 11, Title: "Orphan", Artist: &domain.ForeignArtist{ID: 99, Name: "Nobody"}}

	e := engine.New(p, staticRoster{{ID: 1, ArtistName: "Beyonce"}}, engine.Options{Dedup: dedup.Options{}, Logger: logger.Nop()})

	env := &testEnv{canonicalHit: make(chan *http.Request, 1)}
	canonical := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.canonicalHit <- r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"source":"canonical"}`))
	}))
	t.Cleanup(canonical.Close)

	env.scrobbler = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2.0/" || r.URL.Query().Get("method") != "artist.getinfo" {
			t.Errorf("unexpected scrobbler request %s", r.URL.String())
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"artist":{"name":"Beyoncé","mbid":"859d0860","similar":{"artist":[{"name":"Rihanna","mbid":"db36a76f"}]}}}`))
	}))
	t.Cleanup(env.scrobbler.Close)

	canonicalProxy, err := NewCanonicalProxy(canonical.URL, logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	hc := httpclient.NewClient(nil, httpclient.Options{Rate: rate.Inf, Burst: 1, RetryCount: 1, RetryBase: time.Millisecond})
	scrobbler := NewScrobblerProxy(env.scrobbler.URL, hc, logger.Nop())

	h := NewHandler(e, canonicalProxy, scrobbler, logger.Nop())
	env.server = httptest.NewServer(NewRouter(h))
	t.Cleanup(env.server.Close)
	return env
}

func get(t *testing.T, url string, header http.Header) (int, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, strings.TrimSpace(string(body))
}

func TestDispatch_Search(t *testing.T) {
	env := newTestEnv(t)

	status, body := get(t, env.server.URL+"/api/v0.4/search?type=artist&query=Beyonce", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var artists []domain.Artist
	if err := json.Unmarshal([]byte(body), &artists); err != nil {
		t.Fatalf("bad body %s: %v", body, err)
	}
	if len(artists) != 2 || artists[0].ArtistName != "Beyoncé" {
		t.Errorf("unexpected ranking %+v", artists)
	}

	status, body = get(t, env.server.URL+"/api/v0.4/search?type=all&query=Beyonce", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var entities []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &entities); err != nil {
		t.Fatalf("bad body %s: %v", body, err)
	}
	if len(entities) != 2 || string(entities[0]["album"]) != "null" || string(entities[0]["score"]) != "100" {
		t.Errorf("unexpected entities %s", body)
	}

	status, body = get(t, env.server.URL+"/api/v0.4/search?type=all", nil)
	if status != http.StatusOK || body != "[]" {
		t.Errorf("empty query = %d %s, want 200 []", status, body)
	}
}

func TestDispatch_Artist(t *testing.T) {
	env := newTestEnv(t)

	status, body := get(t, env.server.URL+"/api/v0.4/artist/"+ids.Encode(1, ids.Artist), nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %s", status, body)
	}
	var detail map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &detail); err != nil {
		t.Fatal(err)
	}
	if _, ok := detail["Albums"]; !ok {
		t.Errorf("missing Albums in %s", body)
	}

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "unknown foreign artist", path: "/api/v0.4/artist/" + ids.Encode(5, ids.Artist), status: http.StatusNotFound},
		{name: "canonical artist", path: "/api/v0.4/artist/f59c5520-5f46-4d2c-b2c4-822eabf53419", status: http.StatusNotFound},
		{name: "malformed", path: "/api/v0.4/artist/aaaaaaaa-aaaa-aaaa-aaaa-00000000000x", status: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, env.server.URL+tt.path, nil)
			if status != tt.status || body != "{}" {
				t.Errorf("got %d %s, want %d {}", status, body, tt.status)
			}
		})
	}

	select {
	case r := <-env.canonicalHit:
		t.Errorf("unexpected canonical request %s", r.URL.Path)
	default:
	}
}

func TestDispatch_Album(t *testing.T) {
	env := newTestEnv(t)

	status, body := get(t, env.server.URL+"/api/v0.4/album/"+ids.Encode(10, ids.Album), nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %s", status, body)
	}
	var album domain.Album
	if err := json.Unmarshal([]byte(body), &album); err != nil {
		t.Fatal(err)
	}
	if album.ArtistID != ids.Encode(1, ids.Artist) || len(album.Releases) != 1 {
		t.Errorf("unexpected album %+v", album)
	}

	status, body = get(t, env.server.URL+"/api/v0.4/album/"+ids.Encode(11, ids.Album), nil)
	if status != http.StatusNotFound || body != "{}" {
		t.Errorf("unresolved album = %d %s, want 404 {}", status, body)
	}
}

func TestDispatch_Passthrough(t *testing.T) {
	env := newTestEnv(t)

	status, body := get(t, env.server.URL+"/api/v0.4/album/6e335887-60ba-38f0-95af-fae7774336bf?x=1", nil)
	if status != http.StatusOK || body != `{"source":"canonical"}` {
		t.Errorf("got %d %s", status, body)
	}
	r := <-env.canonicalHit
	if r.URL.Path != "/api/v0.4/album/6e335887-60ba-38f0-95af-fae7774336bf" || r.URL.RawQuery != "x=1" {
		t.Errorf("unexpected forwarded request %s", r.URL.String())
	}

	if status, _ := get(t, env.server.URL+"/", nil); status != http.StatusOK {
		t.Errorf("root status = %d", status)
	}
	<-env.canonicalHit
}

func TestDispatch_Scrobbler(t *testing.T) {
	env := newTestEnv(t)

	header := http.Header{"X-Proxy-Host": []string{"ws.audioscrobbler.com"}}
	status, body := get(t, env.server.URL+"/2.0/?method=artist.getinfo&artist=Beyonce", header)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if strings.Contains(body, "mbid") {
		t.Errorf("mbid not scrubbed: %s", body)
	}
	if !strings.Contains(body, "Rihanna") {
		t.Errorf("payload lost: %s", body)
	}
}

func TestScrub(t *testing.T) {
	doc := map[string]interface{}{
		"mbid": "x",
		"list": []interface{}{map[string]interface{}{"mbid": "y", "name": "n"}, "s", 1.0},
	}
	got := scrub(doc, "mbid", 0).(map[string]interface{})
	if _, ok := got["mbid"]; ok {
		t.Error("top-level key kept")
	}
	inner := got["list"].([]interface{})[0].(map[string]interface{})
	if _, ok := inner["mbid"]; ok || inner["name"] != "n" {
		t.Errorf("unexpected inner %v", inner)
	}

	// Build a document deeper than the walk limit.
	var deep interface{} = map[string]interface{}{"mbid": "bottom"}
	for i := 0; i < maxScrubDepth+5; i++ {
		deep = map[string]interface{}{"child": deep}
	}
	scrub(deep, "mbid", 0)
	node := deep
	for i := 0; i < maxScrubDepth+5; i++ {
		node = node.(map[string]interface{})["child"]
	}
	if node.(map[string]interface{})["mbid"] != "bottom" {
		t.Error("walk exceeded its depth limit")
	}
}

func TestNewCanonicalProxy_InvalidURL(t *testing.T) {
	if _, err := NewCanonicalProxy("not a url", logger.Nop()); err == nil {
		t.Error("expected an error")
	}
}
