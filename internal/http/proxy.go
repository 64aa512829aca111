package httpapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/cesargomez89/tidarr/internal/httpclient"
	"github.com/cesargomez89/tidarr/internal/logger"
)

// maxScrubDepth bounds the walk over scrobbler responses.
const maxScrubDepth = 32

const scrubbedKey = "mbid"

// NewCanonicalProxy forwards requests unchanged to the canonical metadata
// provider at target.
func NewCanonicalProxy(target string, log *logger.Logger) (http.Handler, error) {
	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid canonical url %q", target)
	}
	if log == nil {
		log = logger.Default()
	}
	log = log.WithComponent("canonical_proxy")

	proxy := httputil.NewSingleHostReverseProxy(u)
	director := proxy.Director
	proxy.Director = func(r *http.Request) {
		director(r)
		r.Host = u.Host
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Error("Canonical provider unreachable", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadGateway, emptyObject)
	}
	return proxy, nil
}

// ScrobblerProxy relays scrobbler API calls and removes every mbid key from
// the JSON answer, so the manager does not look those ids up elsewhere.
type ScrobblerProxy struct {
	baseURL string
	client  *httpclient.Client
	log     *logger.Logger
}

func NewScrobblerProxy(baseURL string, client *httpclient.Client, log *logger.Logger) *ScrobblerProxy {
	if client == nil {
		client = httpclient.NewClient(nil, httpclient.Options{})
	}
	if log == nil {
		log = logger.Default()
	}
	return &ScrobblerProxy{
		baseURL: baseURL,
		client:  client,
		log:     log.WithComponent("scrobbler_proxy"),
	}
}

func (p *ScrobblerProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := p.baseURL + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, emptyObject)
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, bytes.NewReader(body))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, emptyObject)
		return
	}
	req.Header = r.Header.Clone()
	req.Header.Del("Host")
	req.Header.Del("Connection")
	// Let the transport negotiate compression so the body can be decoded.
	req.Header.Del("Accept-Encoding")

	resp, err := p.client.Do(r.Context(), req)
	if err != nil {
		p.log.Error("Scrobbler unreachable", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadGateway, emptyObject)
		return
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		p.log.Error("Scrobbler response unreadable", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadGateway, emptyObject)
		return
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Not JSON: relay as is.
		if ct := resp.Header.Get("Content-Type"); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = w.Write(raw)
		return
	}

	writeJSON(w, resp.StatusCode, scrub(doc, scrubbedKey, 0))
}

// scrub removes key from every object in v. Values nested deeper than
// maxScrubDepth are left untouched.
func scrub(v interface{}, key string, depth int) interface{} {
	if depth >= maxScrubDepth {
		return v
	}
	switch t := v.(type) {
	case map[string]interface{}:
		delete(t, key)
		for k, child := range t {
			t[k] = scrub(child, key, depth+1)
		}
		return t
	case []interface{}:
		for i, child := range t {
			t[i] = scrub(child, key, depth+1)
		}
		return t
	default:
		return v
	}
}
