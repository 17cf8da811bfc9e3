package cdn

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mmangon/wakdrop-backend/services/catalog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type SyncStats struct {
	Version  string `json:"version"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

// SyncCatalog refreshes the cached item catalog from the CDN: current
// version, item list, obtention classification, upsert. Records
// without an id or a usable name are skipped and counted, a single
// bad record never aborts the sync.
func SyncCatalog(ctx context.Context, client *Client, catalogService catalog.Service) (SyncStats, error) {
	ctx, span := tracer.Start(ctx, "SyncCatalog")
	defer span.End()

	fail := func(err error) (SyncStats, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return SyncStats{}, err
	}

	version, err := client.CurrentVersion(ctx)
	if err != nil {
		return fail(err)
	}
	items, err := client.Items(ctx, version)
	if err != nil {
		return fail(err)
	}
	recipes, err := client.RecipeResults(ctx, version)
	if err != nil {
		return fail(err)
	}
	loots, err := client.HarvestLoots(ctx, version)
	if err != nil {
		return fail(err)
	}

	obtentions := IndexObtentions(recipes, loots)
	stats := SyncStats{Version: version}

	for _, raw := range items {
		def := raw.Definition.Item
		name := raw.Name()
		if def.ID == 0 || name == "" {
			stats.Skipped++
			continue
		}

		err := catalogService.UpsertItem(ctx, catalog.Item{
			WakfuID:       def.ID,
			Name:          name,
			Level:         def.Level,
			ItemType:      strconv.FormatInt(def.BaseParameters.ItemTypeID, 10),
			Rarity:        catalog.Rarity(def.BaseParameters.Rarity),
			ObtentionType: obtentions.Classify(raw),
		})
		if err != nil {
			return fail(fmt.Errorf("upserting item %d: %w", def.ID, err))
		}
		stats.Imported++
	}

	slog.InfoContext(ctx, "catalog sync complete",
		"version", version, "imported", stats.Imported, "skipped", stats.Skipped)
	span.SetAttributes(
		attribute.String("version", version),
		attribute.Int("imported", stats.Imported),
		attribute.Int("skipped", stats.Skipped),
	)
	return stats, nil
}
