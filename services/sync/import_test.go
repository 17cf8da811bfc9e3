package sync

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mmangon/wakdrop-backend/lib/testutil"
	"github.com/mmangon/wakdrop-backend/services/catalog"
	"github.com/mmangon/wakdrop-backend/services/catalog/db"

	"github.com/stretchr/testify/require"
)

func TestRateUnmarshal(t *testing.T) {
	var rec DropRecord

	require.NoError(t, json.Unmarshal(
		[]byte(`{"item_id":1,"monster_id":2,"drop_rate":12.5}`), &rec))
	require.Equal(t, Rate(12.5), rec.Rate)

	require.NoError(t, json.Unmarshal(
		[]byte(`{"item_id":1,"monster_id":2,"drop_rate":"12,5 %"}`), &rec))
	require.Equal(t, Rate(12.5), rec.Rate)

	require.Error(t, json.Unmarshal(
		[]byte(`{"item_id":1,"monster_id":2,"drop_rate":"beaucoup"}`), &rec))
	require.Error(t, json.Unmarshal(
		[]byte(`{"item_id":1,"monster_id":2,"drop_rate":[1]}`), &rec))
}

func TestImportDrops(t *testing.T) {
	result, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/sync",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := catalog.NewService(result.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	records := []DropRecord{
		{ItemID: 500, MonsterID: 10, MonsterName: "Bouftou", Zone: "Astrub", Rate: 8.5},
		{ItemID: 500, MonsterID: 0, MonsterName: "sans id", Rate: 1},
		{ItemID: 0, MonsterID: 11, MonsterName: "sans item", Rate: 1},
	}

	stats, err := ImportDrops(ctx, service, records)
	require.NoError(t, err)
	require.Equal(t, ImportStats{Imported: 1, Skipped: 2}, stats)

	drops, err := service.GetDropsForItems(ctx, []int64{500})
	require.NoError(t, err)
	require.Len(t, drops, 1)
	require.Equal(t, "Bouftou", drops[0].MonsterName)
	require.Equal(t, 8.5, drops[0].Rate)
	require.Equal(t, []string{"Astrub"}, drops[0].Zones)
}
