package main

import (
	"flag"
	"net/http"

	"github.com/mmangon/wakdrop-backend/lib/configutil"
	"github.com/mmangon/wakdrop-backend/lib/serviceutil"
	"github.com/mmangon/wakdrop-backend/lib/sqliteutil"
	"github.com/mmangon/wakdrop-backend/services/catalog"
	"github.com/mmangon/wakdrop-backend/services/catalog/cdn"
	"github.com/mmangon/wakdrop-backend/services/catalog/db"
	"github.com/mmangon/wakdrop-backend/services/roadmap"
	syncsvc "github.com/mmangon/wakdrop-backend/services/sync"
	"github.com/mmangon/wakdrop-backend/services/zenith"
	"github.com/mmangon/wakdrop-backend/services/zones"
)

type Config struct {
	Database    string `json:"database"`
	AccessToken string `json:"access_token"`
	CdnBaseUrl  string `json:"cdn_base_url"`
	ZenithUrl   string `json:"zenith_url"`
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	syncOnStart := flag.Bool("sync", false, "Refresh the item catalog from the CDN on startup.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Database == "" {
		cfg.Database = "wakdrop.db"
	}

	database, err := sqliteutil.OpenDB(db.Schema, cfg.Database)
	if err != nil {
		serviceutil.Fatal("open database", err)
	}

	catalogService := catalog.NewService(database)
	roadmapService := roadmap.NewService(catalogService)
	zoneService := zones.NewService(database)
	cdnClient := cdn.NewClient(cdn.ClientOptions{BaseUrl: cfg.CdnBaseUrl})
	zenithClient, err := zenith.NewClient(zenith.ClientOptions{BaseUrl: cfg.ZenithUrl})
	if err != nil {
		serviceutil.Fatal("init zenith client", err)
	}
	initializer := syncsvc.NewInitializer(cdnClient, catalogService)

	if *syncOnStart {
		if err := initializer.Run(ctx, nil); err != nil {
			serviceutil.Fatal("startup catalog sync", err)
		}
	}

	mux := http.NewServeMux()
	InitSearch(mux, catalogService)
	InitDrops(mux, catalogService, roadmapService)
	InitZenith(mux, zenithClient, catalogService, roadmapService)
	InitAdmin(ctx, mux, cfg.AccessToken, initializer, zoneService)

	go serviceutil.StartHttpServer(8000, mux)
	<-ctx.Done()
}
