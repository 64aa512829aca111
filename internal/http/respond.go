package httpapp

import (
	"encoding/json"
	"net/http"
)

var (
	emptyObject = struct{}{}
	emptyList   = []struct{}{}
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		data = []byte("{}")
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
