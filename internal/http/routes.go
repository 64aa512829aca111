package httpapp

import (
	"net/http"

	"github.com/cesargomez89/tidarr/internal/http/dto"
)

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	req, errs := dto.ParseSearch(r.URL.Query())
	if len(errs) > 0 {
		h.Logger.Debug("Empty search", "reason", dto.ToResponse(errs))
		writeJSON(w, http.StatusOK, emptyList)
		return
	}

	if req.All {
		writeJSON(w, http.StatusOK, h.Engine.SearchEntities(r.Context(), req.Query))
		return
	}
	writeJSON(w, http.StatusOK, h.Engine.Search(r.Context(), req.Query))
}

func (h *Handler) Artist(w http.ResponseWriter, r *http.Request, id int64) {
	artist, err := h.Engine.Artist(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, emptyObject)
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (h *Handler) Album(w http.ResponseWriter, r *http.Request, id int64) {
	album, err := h.Engine.Album(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, emptyObject)
		return
	}
	writeJSON(w, http.StatusOK, album)
}
