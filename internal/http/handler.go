package httpapp

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cesargomez89/tidarr/internal/constants"
	"github.com/cesargomez89/tidarr/internal/engine"
	"github.com/cesargomez89/tidarr/internal/logger"
	"github.com/cesargomez89/tidarr/internal/routing"
)

type Handler struct {
	Engine    *engine.Engine
	Canonical http.Handler
	Scrobbler http.Handler
	Logger    *logger.Logger
}

func NewHandler(e *engine.Engine, canonical, scrobbler http.Handler, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}
	return &Handler{
		Engine:    e,
		Canonical: canonical,
		Scrobbler: scrobbler,
		Logger:    log.WithComponent("http"),
	}
}

// NewRouter serves every path through Dispatch behind the standard
// middleware stack.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	h.RegisterRoutes(r)
	return r
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Handle("/", http.HandlerFunc(h.Dispatch))
	r.Handle("/*", http.HandlerFunc(h.Dispatch))
}

// Dispatch answers intercepted lookups from the foreign catalog and hands
// everything else to the matching upstream.
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	if strings.EqualFold(r.Header.Get(constants.ProxyHostHeader), constants.ScrobblerHost) {
		h.Scrobbler.ServeHTTP(w, r)
		return
	}

	log := h.Logger.WithRequest(r.Method, r.URL.Path)
	route, err := routing.Classify(r.URL.Path)
	if err != nil {
		log.Warn("Rejected identifier", "error", err)
		writeJSON(w, http.StatusBadRequest, emptyObject)
		return
	}

	switch route.Kind {
	case routing.RouteSearch:
		h.Search(w, r)
	case routing.RouteForeignArtist:
		h.Artist(w, r, route.ID)
	case routing.RouteForeignAlbum:
		h.Album(w, r, route.ID)
	case routing.RouteSuppressedArtist:
		log.Debug("Suppressed canonical artist lookup")
		writeJSON(w, http.StatusNotFound, emptyObject)
	default:
		h.Canonical.ServeHTTP(w, r)
	}
}
