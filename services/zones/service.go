package zones

import (
	"context"
	"database/sql"

	"github.com/mmangon/wakdrop-backend/services/catalog/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/zones")

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

type ZoneInfo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MinLevel    int64  `json:"min_level,omitempty"`
	MaxLevel    int64  `json:"max_level,omitempty"`
}

func (s Service) EnsureZone(ctx context.Context, info ZoneInfo) (int64, error) {
	ctx, span := tracer.Start(ctx, "EnsureZone")
	defer span.End()
	span.SetAttributes(attribute.String("zone", info.Name))

	err := s.qry.CreateZone(ctx, db.CreateZoneParams{
		Name:        info.Name,
		Description: sql.NullString{String: info.Description, Valid: info.Description != ""},
		MinLevel:    sql.NullInt64{Int64: info.MinLevel, Valid: info.MinLevel != 0},
		MaxLevel:    sql.NullInt64{Int64: info.MaxLevel, Valid: info.MaxLevel != 0},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	zone, err := s.qry.GetZoneByName(ctx, info.Name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	return zone.ID, nil
}

func (s Service) ListZones(ctx context.Context) ([]ZoneInfo, error) {
	ctx, span := tracer.Start(ctx, "ListZones")
	defer span.End()

	rows, err := s.qry.ListZones(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	zones := make([]ZoneInfo, len(rows))
	for i, z := range rows {
		zones[i] = ZoneInfo{
			ID:          z.ID,
			Name:        z.Name,
			Description: z.Description.String,
			MinLevel:    z.MinLevel.Int64,
			MaxLevel:    z.MaxLevel.Int64,
		}
	}
	return zones, nil
}

// AssignMonster attaches a monster to a zone, creating the zone if it
// does not exist yet.
func (s Service) AssignMonster(ctx context.Context, monsterID int64, zoneName string) error {
	ctx, span := tracer.Start(ctx, "AssignMonster")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("monster", monsterID),
		attribute.String("zone", zoneName),
	)

	zoneID, err := s.EnsureZone(ctx, ZoneInfo{Name: zoneName})
	if err != nil {
		return err
	}
	err = s.qry.LinkMonsterZone(ctx, db.LinkMonsterZoneParams{
		MonsterID: monsterID,
		ZoneID:    zoneID,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
