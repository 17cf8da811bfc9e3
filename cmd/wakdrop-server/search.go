package main

import (
	"net/http"
	"strings"

	"github.com/mmangon/wakdrop-backend/services/catalog"
	"github.com/mmangon/wakdrop-backend/services/search"
)

type searchRequest struct {
	Queries       []string `json:"queries"`
	Threshold     float64  `json:"threshold,omitempty"`
	MaxCandidates int      `json:"max_candidates,omitempty"`
}

type buildFromTextRequest struct {
	Text string `json:"text"`
}

func InitSearch(mux *http.ServeMux, catalogService catalog.Service) {
	mux.HandleFunc("POST /search/items", func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeJson[searchRequest](w, r)
		if !ok {
			return
		}
		items, err := catalogService.GetAllItems(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		result := search.ResolveAll(r.Context(), req.Queries, items, search.Options{
			Threshold:     req.Threshold,
			MaxCandidates: req.MaxCandidates,
		})
		writeJson(w, http.StatusOK, result)
	})

	mux.HandleFunc("POST /search/build-from-text", func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeJson[buildFromTextRequest](w, r)
		if !ok {
			return
		}
		items, err := catalogService.GetAllItems(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		result := search.ResolveAll(r.Context(), splitItemLines(req.Text), items,
			search.Options{Threshold: search.ThresholdBulk})
		writeJson(w, http.StatusOK, result)
	})
}

// splitItemLines turns pasted build text into one query per line,
// comma-separated lines are split too.
func splitItemLines(text string) []string {
	var queries []string
	for _, line := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ','
	}) {
		line = strings.TrimSpace(line)
		if line != "" {
			queries = append(queries, line)
		}
	}
	return queries
}
