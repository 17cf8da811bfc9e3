package cmd

import (
	"fmt"
	"os"

	"github.com/mmangon/wakdrop-backend/lib/sqliteutil"
	"github.com/mmangon/wakdrop-backend/services/catalog"
	"github.com/mmangon/wakdrop-backend/services/catalog/db"
	"github.com/mmangon/wakdrop-backend/services/roadmap"
	"github.com/mmangon/wakdrop-backend/services/zones"

	"github.com/spf13/cobra"
)

var DbPath string

var catalogService catalog.Service
var roadmapService roadmap.Service
var zoneService zones.Service

var rootCmd = &cobra.Command{
	Use:   "wakdrop-cli",
	Short: "wakdrop-cli inspects the item catalog and drop data from a local database.",
}

func Execute() {
	database, err := sqliteutil.OpenDB(db.Schema, DbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open database:", err)
		os.Exit(1)
	}
	catalogService = catalog.NewService(database)
	roadmapService = roadmap.NewService(catalogService)
	zoneService = zones.NewService(database)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
