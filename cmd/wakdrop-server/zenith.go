package main

import (
	"net/http"

	"github.com/mmangon/wakdrop-backend/services/catalog"
	"github.com/mmangon/wakdrop-backend/services/roadmap"
	"github.com/mmangon/wakdrop-backend/services/search"
	"github.com/mmangon/wakdrop-backend/services/zenith"
)

type zenithAnalyzeRequest struct {
	Url string `json:"url"`
}

type zenithAnalyzeResponse struct {
	BuildID    string                 `json:"build_id"`
	Equipment  []zenith.EquipmentItem `json:"equipment"`
	Resolved   []search.Resolved      `json:"resolved"`
	Unresolved []string               `json:"unresolved"`
	Roadmap    roadmap.Result         `json:"roadmap"`
}

func InitZenith(
	mux *http.ServeMux,
	client *zenith.Client,
	catalogService catalog.Service,
	roadmapService roadmap.Service,
) {
	mux.HandleFunc("POST /zenith/analyze", func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeJson[zenithAnalyzeRequest](w, r)
		if !ok {
			return
		}
		buildID, err := zenith.ExtractBuildID(req.Url)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		equipment, err := client.FetchEquipment(r.Context(), req.Url)
		if err != nil {
			writeError(w, err)
			return
		}
		items, err := catalogService.GetAllItems(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		queries := make([]search.Query, len(equipment))
		for i, eq := range equipment {
			queries[i] = search.Query{Text: eq.Name, RarityHint: eq.Rarity}
		}
		result := search.ResolveQueries(r.Context(), queries, items,
			search.Options{Threshold: search.ThresholdBulk})

		itemIDs := make([]int64, len(result.Resolved))
		for i, res := range result.Resolved {
			itemIDs[i] = res.WakfuID
		}
		plan, err := roadmapService.BuildRoadmap(r.Context(), itemIDs)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJson(w, http.StatusOK, zenithAnalyzeResponse{
			BuildID:    buildID,
			Equipment:  equipment,
			Resolved:   result.Resolved,
			Unresolved: result.Unresolved,
			Roadmap:    plan,
		})
	})
}
