package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const getAllItems = `
SELECT wakfu_id, name, level, item_type, rarity, obtention_type, last_updated
FROM cached_items
ORDER BY wakfu_id
`

func (q *Queries) GetAllItems(ctx context.Context) ([]CachedItem, error) {
	rows, err := q.db.QueryContext(ctx, getAllItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CachedItem
	for rows.Next() {
		var i CachedItem
		err := rows.Scan(
			&i.WakfuID,
			&i.Name,
			&i.Level,
			&i.ItemType,
			&i.Rarity,
			&i.ObtentionType,
			&i.LastUpdated,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getItem = `
SELECT wakfu_id, name, level, item_type, rarity, obtention_type, last_updated
FROM cached_items
WHERE wakfu_id = ?
`

func (q *Queries) GetItem(ctx context.Context, wakfuID int64) (CachedItem, error) {
	var i CachedItem
	err := q.db.QueryRowContext(ctx, getItem, wakfuID).Scan(
		&i.WakfuID,
		&i.Name,
		&i.Level,
		&i.ItemType,
		&i.Rarity,
		&i.ObtentionType,
		&i.LastUpdated,
	)
	return i, err
}

const upsertItem = `
INSERT INTO cached_items (wakfu_id, name, level, item_type, rarity, obtention_type, last_updated)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (wakfu_id) DO UPDATE SET
    name = excluded.name,
    level = excluded.level,
    item_type = excluded.item_type,
    rarity = excluded.rarity,
    obtention_type = excluded.obtention_type,
    last_updated = excluded.last_updated
`

type UpsertItemParams struct {
	WakfuID       int64
	Name          string
	Level         sql.NullInt64
	ItemType      sql.NullString
	Rarity        int64
	ObtentionType string
	LastUpdated   int64
}

func (q *Queries) UpsertItem(ctx context.Context, arg UpsertItemParams) error {
	_, err := q.db.ExecContext(ctx, upsertItem,
		arg.WakfuID,
		arg.Name,
		arg.Level,
		arg.ItemType,
		arg.Rarity,
		arg.ObtentionType,
		arg.LastUpdated,
	)
	return err
}

const getDropsForItem = `
SELECT monster_id, monster_name, monster_level, item_id, drop_rate, zone_name
FROM monster_drops
WHERE item_id = ?
ORDER BY drop_rate DESC
`

func (q *Queries) GetDropsForItem(ctx context.Context, itemID int64) ([]MonsterDrop, error) {
	rows, err := q.db.QueryContext(ctx, getDropsForItem, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drops []MonsterDrop
	for rows.Next() {
		var d MonsterDrop
		err := rows.Scan(
			&d.MonsterID,
			&d.MonsterName,
			&d.MonsterLevel,
			&d.ItemID,
			&d.DropRate,
			&d.ZoneName,
		)
		if err != nil {
			return nil, err
		}
		drops = append(drops, d)
	}
	return drops, rows.Err()
}

const getDropRate = `
SELECT drop_rate FROM monster_drops
WHERE monster_id = ? AND item_id = ?
`

type GetDropRateParams struct {
	MonsterID int64
	ItemID    int64
}

func (q *Queries) GetDropRate(ctx context.Context, arg GetDropRateParams) (float64, error) {
	var rate float64
	err := q.db.QueryRowContext(ctx, getDropRate, arg.MonsterID, arg.ItemID).Scan(&rate)
	return rate, err
}

const upsertDrop = `
INSERT INTO monster_drops (monster_id, monster_name, monster_level, item_id, drop_rate, zone_name)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (monster_id, item_id) DO UPDATE SET
    monster_name = excluded.monster_name,
    monster_level = excluded.monster_level,
    drop_rate = excluded.drop_rate,
    zone_name = excluded.zone_name
`

type UpsertDropParams struct {
	MonsterID    int64
	MonsterName  string
	MonsterLevel sql.NullInt64
	ItemID       int64
	DropRate     float64
	ZoneName     sql.NullString
}

func (q *Queries) UpsertDrop(ctx context.Context, arg UpsertDropParams) error {
	_, err := q.db.ExecContext(ctx, upsertDrop,
		arg.MonsterID,
		arg.MonsterName,
		arg.MonsterLevel,
		arg.ItemID,
		arg.DropRate,
		arg.ZoneName,
	)
	return err
}

const clearDrops = `
DELETE FROM monster_drops
`

func (q *Queries) ClearDrops(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, clearDrops)
	return err
}

const getDropStats = `
SELECT
    COUNT(*),
    COUNT(DISTINCT monster_id),
    COUNT(DISTINCT item_id)
FROM monster_drops
`

type GetDropStatsRow struct {
	TotalDrops       int64
	DistinctMonsters int64
	DistinctItems    int64
}

func (q *Queries) GetDropStats(ctx context.Context) (GetDropStatsRow, error) {
	var row GetDropStatsRow
	err := q.db.QueryRowContext(ctx, getDropStats).Scan(
		&row.TotalDrops,
		&row.DistinctMonsters,
		&row.DistinctItems,
	)
	return row, err
}

const createZone = `
INSERT INTO zones (name, description, min_level, max_level)
VALUES (?, ?, ?, ?)
ON CONFLICT (name) DO UPDATE SET
    description = excluded.description,
    min_level = excluded.min_level,
    max_level = excluded.max_level
`

type CreateZoneParams struct {
	Name        string
	Description sql.NullString
	MinLevel    sql.NullInt64
	MaxLevel    sql.NullInt64
}

func (q *Queries) CreateZone(ctx context.Context, arg CreateZoneParams) error {
	_, err := q.db.ExecContext(ctx, createZone,
		arg.Name,
		arg.Description,
		arg.MinLevel,
		arg.MaxLevel,
	)
	return err
}

const getZoneByName = `
SELECT id, name, description, min_level, max_level FROM zones
WHERE name = ?
`

func (q *Queries) GetZoneByName(ctx context.Context, name string) (Zone, error) {
	var z Zone
	err := q.db.QueryRowContext(ctx, getZoneByName, name).Scan(
		&z.ID,
		&z.Name,
		&z.Description,
		&z.MinLevel,
		&z.MaxLevel,
	)
	return z, err
}

const listZones = `
SELECT id, name, description, min_level, max_level FROM zones
ORDER BY name
`

func (q *Queries) ListZones(ctx context.Context) ([]Zone, error) {
	rows, err := q.db.QueryContext(ctx, listZones)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []Zone
	for rows.Next() {
		var z Zone
		err := rows.Scan(&z.ID, &z.Name, &z.Description, &z.MinLevel, &z.MaxLevel)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

const linkMonsterZone = `
INSERT INTO monster_zones (monster_id, zone_id)
VALUES (?, ?)
ON CONFLICT (monster_id, zone_id) DO NOTHING
`

type LinkMonsterZoneParams struct {
	MonsterID int64
	ZoneID    int64
}

func (q *Queries) LinkMonsterZone(ctx context.Context, arg LinkMonsterZoneParams) error {
	_, err := q.db.ExecContext(ctx, linkMonsterZone, arg.MonsterID, arg.ZoneID)
	return err
}

const getZonesForMonster = `
SELECT z.name FROM monster_zones mz
JOIN zones z ON mz.zone_id = z.id
WHERE mz.monster_id = ?
ORDER BY z.name
`

func (q *Queries) GetZonesForMonster(ctx context.Context, monsterID int64) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, getZonesForMonster, monsterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetZonesForMonsters fetches the zone names of every monster in one
// round trip, keyed by monster id.
func (q *Queries) GetZonesForMonsters(ctx context.Context, monsterIDs []int64) (map[int64][]string, error) {
	if len(monsterIDs) == 0 {
		return map[int64][]string{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(monsterIDs)), ",")
	query := fmt.Sprintf(`
SELECT mz.monster_id, z.name FROM monster_zones mz
JOIN zones z ON mz.zone_id = z.id
WHERE mz.monster_id IN (%s)
ORDER BY mz.monster_id, z.name
`, placeholders)

	args := make([]interface{}, len(monsterIDs))
	for i, id := range monsterIDs {
		args[i] = id
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64][]string{}
	for rows.Next() {
		var monsterID int64
		var name string
		if err := rows.Scan(&monsterID, &name); err != nil {
			return nil, err
		}
		out[monsterID] = append(out[monsterID], name)
	}
	return out, rows.Err()
}
