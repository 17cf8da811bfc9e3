package roadmap

import (
	"context"

	"github.com/mmangon/wakdrop-backend/services/catalog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/roadmap")

type Service struct {
	catalog catalog.Service
}

func NewService(catalogService catalog.Service) Service {
	return Service{catalog: catalogService}
}

// BuildRoadmap fetches a drop snapshot for the requested items and
// aggregates it. An entirely empty roadmap is not an error here, the
// caller decides whether that is worth surfacing.
func (s Service) BuildRoadmap(ctx context.Context, itemIDs []int64) (Result, error) {
	ctx, span := tracer.Start(ctx, "BuildRoadmap")
	defer span.End()
	span.SetAttributes(attribute.Int("items", len(itemIDs)))

	drops, err := s.catalog.GetDropsForItems(ctx, itemIDs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	result := Build(itemIDs, drops)
	span.SetAttributes(
		attribute.Int("zones", result.Summary.TotalZones),
		attribute.Int("monsters", result.Summary.TotalMonsters),
	)
	return result, nil
}
