package sync

import (
	"context"
	"log/slog"

	"github.com/mmangon/wakdrop-backend/lib/jobs"
	"github.com/mmangon/wakdrop-backend/services/catalog"
	"github.com/mmangon/wakdrop-backend/services/catalog/cdn"
)

// Initializer owns the one-shot data initialization flow: refresh the
// item catalog from the CDN, then import a drop file if one was
// provided. Progress is exposed through a pollable job status.
type Initializer struct {
	status  jobs.Status
	cdn     *cdn.Client
	catalog catalog.Service
}

func NewInitializer(cdnClient *cdn.Client, catalogService catalog.Service) *Initializer {
	return &Initializer{
		cdn:     cdnClient,
		catalog: catalogService,
	}
}

// Status returns a snapshot of the current (or last) run.
func (i *Initializer) Status() jobs.Snapshot {
	return i.status.Poll()
}

// Run executes the initialization flow. Returns jobs.ErrAlreadyRunning
// when a run is in flight; any other error is also recorded on the
// status so pollers see it.
func (i *Initializer) Run(ctx context.Context, drops []DropRecord) error {
	if err := i.status.Start(); err != nil {
		return err
	}

	i.status.SetStep("cdn_sync", "refreshing item catalog")
	syncStats, err := cdn.SyncCatalog(ctx, i.cdn, i.catalog)
	if err != nil {
		i.status.AddError(err)
		i.status.Finish("failed", "catalog sync failed")
		return err
	}
	i.status.SetCount("items_imported", syncStats.Imported)
	i.status.SetCount("items_skipped", syncStats.Skipped)

	if len(drops) > 0 {
		i.status.SetStep("import", "importing drop records")
		importStats, err := ImportDrops(ctx, i.catalog, drops)
		i.status.SetCount("drops_imported", importStats.Imported)
		i.status.SetCount("drops_skipped", importStats.Skipped)
		if err != nil {
			i.status.AddError(err)
			i.status.Finish("failed", "drop import failed")
			return err
		}
	}

	slog.InfoContext(ctx, "initialization complete",
		"catalog_version", syncStats.Version,
		"items", syncStats.Imported,
		"drops", len(drops))
	i.status.Finish("completed", "initialization complete")
	return nil
}
