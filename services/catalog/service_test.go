package catalog

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/mmangon/wakdrop-backend/lib/testutil"
	"github.com/mmangon/wakdrop-backend/services/catalog/db"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setup(t *testing.T) (Service, *sql.DB, func()) {
	result, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	return NewService(result.DB), result.DB, cleanup
}

func TestItemRoundtrip(t *testing.T) {
	service, _, cleanup := setup(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := service.UpsertItem(ctx, Item{
		WakfuID:       101,
		Name:          "Casque du Bouffon",
		Level:         215,
		ItemType:      "Casque",
		Rarity:        RarityRare,
		ObtentionType: "drop",
	})
	require.NoError(t, err)

	// same id again, the later observation wins
	err = service.UpsertItem(ctx, Item{
		WakfuID:       101,
		Name:          "Casque du Bouffon",
		Rarity:        RarityLegendary,
		ObtentionType: "drop",
	})
	require.NoError(t, err)

	items, err := service.GetAllItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, RarityLegendary, items[0].Rarity)
}

func TestRecordDropTolerance(t *testing.T) {
	service, database, cleanup := setup(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	drop := Drop{
		MonsterID:   5001,
		MonsterName: "Bouftou",
		ItemID:      101,
		Rate:        15.0,
	}
	require.NoError(t, service.RecordDrop(ctx, drop))

	// within tolerance: stored rate stays as first observed
	drop.Rate = 15.005
	require.NoError(t, service.RecordDrop(ctx, drop))

	qry := db.New(database)
	rate, err := qry.GetDropRate(ctx, db.GetDropRateParams{MonsterID: 5001, ItemID: 101})
	require.NoError(t, err)
	require.InDelta(t, 15.0, rate, 1e-9)

	// beyond tolerance: the later observation supersedes
	drop.Rate = 17.5
	require.NoError(t, service.RecordDrop(ctx, drop))
	rate, err = qry.GetDropRate(ctx, db.GetDropRateParams{MonsterID: 5001, ItemID: 101})
	require.NoError(t, err)
	require.InDelta(t, 17.5, rate, 1e-9)
}

func TestGetDropsForItems(t *testing.T) {
	service, database, cleanup := setup(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	require.NoError(t, service.RecordDrop(ctx, Drop{
		MonsterID: 5001, MonsterName: "Bouftou", ItemID: 101, Rate: 2.5,
	}))
	require.NoError(t, service.RecordDrop(ctx, Drop{
		MonsterID: 5002, MonsterName: "Bworker", ItemID: 101, Rate: 8.5,
	}))
	require.NoError(t, service.RecordDrop(ctx, Drop{
		MonsterID: 5002, MonsterName: "Bworker", ItemID: 102, Rate: 1.0,
		Zones: []string{"Astrub"},
	}))

	qry := db.New(database)
	require.NoError(t, qry.CreateZone(ctx, db.CreateZoneParams{Name: "Plaine d'Amakna"}))
	zone, err := qry.GetZoneByName(ctx, "Plaine d'Amakna")
	require.NoError(t, err)
	require.NoError(t, qry.LinkMonsterZone(ctx, db.LinkMonsterZoneParams{
		MonsterID: 5001, ZoneID: zone.ID,
	}))

	drops, err := service.GetDropsForItems(ctx, []int64{101, 102, 999})
	require.NoError(t, err)
	require.Len(t, drops, 3)

	// per item, rate descending
	require.Equal(t, int64(5002), drops[0].MonsterID)
	require.Equal(t, int64(5001), drops[1].MonsterID)

	// linked zones win over the scrape-time zone_name fallback
	require.Equal(t, []string{"Plaine d'Amakna"}, drops[1].Zones)
	require.Equal(t, []string{"Astrub"}, drops[2].Zones)

	stats, err := service.GetDropStats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.TotalDrops)
	require.Equal(t, int64(2), stats.DistinctMonsters)
	require.Equal(t, int64(2), stats.DistinctItems)
}
