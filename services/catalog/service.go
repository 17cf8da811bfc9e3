package catalog

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/mmangon/wakdrop-backend/services/catalog/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/catalog")

// rate differences at or below this are scrape noise, not updates
const rateTolerance = 0.01

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

func nullableInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}

func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

// GetAllItems returns a full catalog snapshot. Callers resolving a
// batch of queries should fetch once and reuse the snapshot so a
// concurrent sync cannot be observed mid-batch.
func (s Service) GetAllItems(ctx context.Context) ([]Item, error) {
	ctx, span := tracer.Start(ctx, "GetAllItems")
	defer span.End()

	rows, err := s.qry.GetAllItems(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	items := make([]Item, len(rows))
	for i, r := range rows {
		items[i] = Item{
			WakfuID:       r.WakfuID,
			Name:          r.Name,
			Level:         r.Level.Int64,
			ItemType:      r.ItemType.String,
			Rarity:        Rarity(r.Rarity),
			ObtentionType: r.ObtentionType,
		}
	}
	span.SetAttributes(attribute.Int("count", len(items)))
	return items, nil
}

func (s Service) GetItem(ctx context.Context, wakfuID int64) (Item, error) {
	ctx, span := tracer.Start(ctx, "GetItem")
	defer span.End()

	r, err := s.qry.GetItem(ctx, wakfuID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Item{}, err
	}
	return Item{
		WakfuID:       r.WakfuID,
		Name:          r.Name,
		Level:         r.Level.Int64,
		ItemType:      r.ItemType.String,
		Rarity:        Rarity(r.Rarity),
		ObtentionType: r.ObtentionType,
	}, nil
}

func (s Service) UpsertItem(ctx context.Context, item Item) error {
	ctx, span := tracer.Start(ctx, "UpsertItem")
	defer span.End()

	err := s.qry.UpsertItem(ctx, db.UpsertItemParams{
		WakfuID:       item.WakfuID,
		Name:          item.Name,
		Level:         nullableInt(item.Level),
		ItemType:      nullableString(item.ItemType),
		Rarity:        int64(item.Rarity),
		ObtentionType: item.ObtentionType,
		LastUpdated:   time.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// GetDropsForItems fetches the drop records of every requested item,
// ordered rate-descending per item, with the monsters' linked zone
// names attached. Items without drop data simply contribute nothing.
func (s Service) GetDropsForItems(ctx context.Context, itemIDs []int64) ([]Drop, error) {
	ctx, span := tracer.Start(ctx, "GetDropsForItems")
	defer span.End()
	span.SetAttributes(attribute.Int("items", len(itemIDs)))

	var all []db.MonsterDrop
	monsterIDs := map[int64]struct{}{}
	for _, itemID := range itemIDs {
		drops, err := s.qry.GetDropsForItem(ctx, itemID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		for _, d := range drops {
			monsterIDs[d.MonsterID] = struct{}{}
		}
		all = append(all, drops...)
	}

	ids := make([]int64, 0, len(monsterIDs))
	for id := range monsterIDs {
		ids = append(ids, id)
	}
	zonesByMonster, err := s.qry.GetZonesForMonsters(ctx, ids)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]Drop, len(all))
	for i, d := range all {
		zones := zonesByMonster[d.MonsterID]
		if len(zones) == 0 && d.ZoneName.Valid && d.ZoneName.String != "" {
			zones = []string{d.ZoneName.String}
		}
		out[i] = Drop{
			MonsterID:    d.MonsterID,
			MonsterName:  d.MonsterName,
			MonsterLevel: d.MonsterLevel.Int64,
			ItemID:       d.ItemID,
			Rate:         d.DropRate,
			Zones:        zones,
		}
	}
	return out, nil
}

// RecordDrop stores or refreshes one (monster, item) observation. A
// re-observation whose rate differs from the stored one by no more
// than the tolerance is dropped as noise.
func (s Service) RecordDrop(ctx context.Context, drop Drop) error {
	ctx, span := tracer.Start(ctx, "RecordDrop")
	defer span.End()

	existing, err := s.qry.GetDropRate(ctx, db.GetDropRateParams{
		MonsterID: drop.MonsterID,
		ItemID:    drop.ItemID,
	})
	if err == nil && math.Abs(existing-drop.Rate) <= rateTolerance {
		span.SetAttributes(attribute.Bool("noise", true))
		return nil
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	zoneName := ""
	if len(drop.Zones) > 0 {
		zoneName = drop.Zones[0]
	}
	err = s.qry.UpsertDrop(ctx, db.UpsertDropParams{
		MonsterID:    drop.MonsterID,
		MonsterName:  drop.MonsterName,
		MonsterLevel: nullableInt(drop.MonsterLevel),
		ItemID:       drop.ItemID,
		DropRate:     drop.Rate,
		ZoneName:     nullableString(zoneName),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

type DropStats struct {
	TotalDrops       int64 `json:"total_drops"`
	DistinctMonsters int64 `json:"distinct_monsters"`
	DistinctItems    int64 `json:"distinct_items"`
}

func (s Service) GetDropStats(ctx context.Context) (DropStats, error) {
	ctx, span := tracer.Start(ctx, "GetDropStats")
	defer span.End()

	row, err := s.qry.GetDropStats(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return DropStats{}, err
	}
	return DropStats{
		TotalDrops:       row.TotalDrops,
		DistinctMonsters: row.DistinctMonsters,
		DistinctItems:    row.DistinctItems,
	}, nil
}

func (s Service) ClearDrops(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "ClearDrops")
	defer span.End()

	err := s.qry.ClearDrops(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
