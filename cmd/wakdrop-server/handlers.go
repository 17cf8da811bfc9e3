package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// decodeJson rejects the request itself on malformed bodies, the
// handler only sees valid input.
func decodeJson[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var body T
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return body, false
	}
	return body, true
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Warn("encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
