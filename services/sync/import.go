// Package sync supervises the long-running data jobs: catalog refresh
// from the CDN and bulk drop imports, with a pollable status.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmangon/wakdrop-backend/services/catalog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/sync")

// Rate decodes a drop rate that source files carry either as a number
// or as a percent string ("12.5%"). Normalization happens here, at
// the ingestion boundary, everything downstream sees float64.
type Rate float64

func (r *Rate) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*r = Rate(num)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("drop rate is neither number nor string: %s", data)
	}
	str = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(str), "%"))
	str = strings.ReplaceAll(str, ",", ".")
	num, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return fmt.Errorf("unparseable drop rate %q: %w", str, err)
	}
	*r = Rate(num)
	return nil
}

// DropRecord is one line of a bestiary import file.
type DropRecord struct {
	ItemID       int64  `json:"item_id"`
	MonsterID    int64  `json:"monster_id"`
	MonsterName  string `json:"monster_name"`
	MonsterLevel int64  `json:"monster_level,omitempty"`
	Zone         string `json:"zone,omitempty"`
	Rate         Rate   `json:"drop_rate"`
}

type ImportStats struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportDrops records a batch of drop observations. Records missing
// an item or monster id are counted and skipped, storage errors abort
// the batch.
func ImportDrops(ctx context.Context, catalogService catalog.Service, records []DropRecord) (ImportStats, error) {
	ctx, span := tracer.Start(ctx, "ImportDrops")
	defer span.End()
	span.SetAttributes(attribute.Int("records", len(records)))

	var stats ImportStats
	for _, rec := range records {
		if rec.ItemID == 0 || rec.MonsterID == 0 {
			stats.Skipped++
			continue
		}
		var zones []string
		if rec.Zone != "" {
			zones = []string{rec.Zone}
		}
		err := catalogService.RecordDrop(ctx, catalog.Drop{
			MonsterID:    rec.MonsterID,
			MonsterName:  rec.MonsterName,
			MonsterLevel: rec.MonsterLevel,
			ItemID:       rec.ItemID,
			Rate:         float64(rec.Rate),
			Zones:        zones,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return stats, fmt.Errorf("recording drop (monster %d, item %d): %w",
				rec.MonsterID, rec.ItemID, err)
		}
		stats.Imported++
	}

	span.SetAttributes(
		attribute.Int("imported", stats.Imported),
		attribute.Int("skipped", stats.Skipped),
	)
	return stats, nil
}
