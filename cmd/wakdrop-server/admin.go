package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mmangon/wakdrop-backend/lib/serviceutil"
	syncsvc "github.com/mmangon/wakdrop-backend/services/sync"
	"github.com/mmangon/wakdrop-backend/services/zones"
)

type initializeRequest struct {
	Drops []syncsvc.DropRecord `json:"drops,omitempty"`
}

type assignMonsterRequest struct {
	MonsterID int64  `json:"monster_id"`
	Zone      string `json:"zone"`
}

type suggestLinksRequest struct {
	Monsters []zones.MonsterRef `json:"monsters"`
	Spawns   []string           `json:"spawns"`
}

func InitAdmin(
	ctx context.Context,
	mux *http.ServeMux,
	accessToken string,
	initializer *syncsvc.Initializer,
	zoneService zones.Service,
) {
	handle := func(pattern string, handler http.HandlerFunc) {
		mux.Handle(pattern, serviceutil.VerifyAccessToken(accessToken, handler))
	}

	handle("POST /admin/initialize", func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeJson[initializeRequest](w, r)
		if !ok {
			return
		}
		// long-running, poll /admin/init-status for progress. The flow
		// outlives the request so it runs on the server context.
		go func() {
			err := initializer.Run(ctx, req.Drops)
			if err != nil {
				slog.Error("initialization run", "err", err)
			}
		}()
		writeJson(w, http.StatusAccepted, initializer.Status())
	})

	handle("GET /admin/init-status", func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusOK, initializer.Status())
	})

	handle("GET /admin/zones", func(w http.ResponseWriter, r *http.Request) {
		list, err := zoneService.ListZones(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJson(w, http.StatusOK, list)
	})

	handle("POST /admin/zones", func(w http.ResponseWriter, r *http.Request) {
		info, ok := decodeJson[zones.ZoneInfo](w, r)
		if !ok {
			return
		}
		if info.Name == "" {
			http.Error(w, "zone name is required", http.StatusBadRequest)
			return
		}
		id, err := zoneService.EnsureZone(r.Context(), info)
		if err != nil {
			writeError(w, err)
			return
		}
		info.ID = id
		writeJson(w, http.StatusOK, info)
	})

	handle("POST /admin/zones/assign", func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeJson[assignMonsterRequest](w, r)
		if !ok {
			return
		}
		if req.MonsterID == 0 || req.Zone == "" {
			http.Error(w, "monster_id and zone are required", http.StatusBadRequest)
			return
		}
		err := zoneService.AssignMonster(r.Context(), req.MonsterID, req.Zone)
		if err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	handle("POST /admin/zones/suggest-links", func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeJson[suggestLinksRequest](w, r)
		if !ok {
			return
		}
		writeJson(w, http.StatusOK, zones.SuggestSpawnLinks(req.Monsters, req.Spawns))
	})
}
