package main

import (
	"net/http"

	"github.com/mmangon/wakdrop-backend/services/catalog"
	"github.com/mmangon/wakdrop-backend/services/roadmap"
	syncsvc "github.com/mmangon/wakdrop-backend/services/sync"
)

type roadmapRequest struct {
	ItemIDs []int64 `json:"item_ids"`
}

type importRequest struct {
	Drops []syncsvc.DropRecord `json:"drops"`
}

func InitDrops(mux *http.ServeMux, catalogService catalog.Service, roadmapService roadmap.Service) {
	mux.HandleFunc("POST /drops/farm-roadmap", func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeJson[roadmapRequest](w, r)
		if !ok {
			return
		}
		result, err := roadmapService.BuildRoadmap(r.Context(), req.ItemIDs)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJson(w, http.StatusOK, result)
	})

	mux.HandleFunc("POST /drops/import", func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeJson[importRequest](w, r)
		if !ok {
			return
		}
		stats, err := syncsvc.ImportDrops(r.Context(), catalogService, req.Drops)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJson(w, http.StatusOK, stats)
	})

	mux.HandleFunc("GET /drops/stats", func(w http.ResponseWriter, r *http.Request) {
		stats, err := catalogService.GetDropStats(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJson(w, http.StatusOK, stats)
	})
}
