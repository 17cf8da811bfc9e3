package db

import "database/sql"

type CachedItem struct {
	WakfuID       int64
	Name          string
	Level         sql.NullInt64
	ItemType      sql.NullString
	Rarity        int64
	ObtentionType string
	LastUpdated   int64
}

type MonsterDrop struct {
	MonsterID    int64
	MonsterName  string
	MonsterLevel sql.NullInt64
	ItemID       int64
	DropRate     float64
	ZoneName     sql.NullString
}

type Zone struct {
	ID          int64
	Name        string
	Description sql.NullString
	MinLevel    sql.NullInt64
	MaxLevel    sql.NullInt64
}
