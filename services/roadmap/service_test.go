package roadmap

import (
	"context"
	"testing"
	"time"

	"github.com/mmangon/wakdrop-backend/lib/testutil"
	"github.com/mmangon/wakdrop-backend/services/catalog"
	"github.com/mmangon/wakdrop-backend/services/catalog/db"

	"github.com/stretchr/testify/require"
)

func TestBuildRoadmapFromStore(t *testing.T) {
	result, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/roadmap",
		DbSchema: db.Schema,
	})
	defer cleanup()
	catalogService := catalog.NewService(result.DB)
	service := NewService(catalogService)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	drops := []catalog.Drop{
		{MonsterID: 5001, MonsterName: "Bouftou", ItemID: 101, Rate: 15.0, Zones: []string{"Plaine d'Amakna"}},
		{MonsterID: 5002, MonsterName: "Bworker", ItemID: 102, Rate: 8.5, Zones: []string{"Astrub"}},
	}
	for _, d := range drops {
		require.NoError(t, catalogService.RecordDrop(ctx, d))
	}

	plan, err := service.BuildRoadmap(ctx, []int64{102})
	require.NoError(t, err)
	require.Len(t, plan.Zones, 1)
	require.Equal(t, "Astrub", plan.Zones[0].Name)
	require.Equal(t, 1, plan.Zones[0].TotalItems)
	require.InDelta(t, 8.5, plan.Zones[0].AvgDropRate, 1e-9)
	require.Equal(t, "Bworker", plan.Zones[0].Monsters[0].Name)

	// an item without drop data contributes nothing, not an error
	plan, err = service.BuildRoadmap(ctx, []int64{102, 999})
	require.NoError(t, err)
	require.Equal(t, 2, plan.Summary.RequestedItems)
	require.Equal(t, 1, plan.Summary.CoveredItems)
}
