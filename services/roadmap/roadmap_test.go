package roadmap

import (
	"testing"

	"github.com/mmangon/wakdrop-backend/services/catalog"

	"github.com/stretchr/testify/require"
)

func TestBuildEmpty(t *testing.T) {
	result := Build(nil, nil)
	require.Empty(t, result.Zones)
	require.Equal(t, Summary{}, result.Summary)

	// requested items with no drop data show up in the summary gap
	result = Build([]int64{1, 2, 3}, nil)
	require.Equal(t, 3, result.Summary.RequestedItems)
	require.Equal(t, 0, result.Summary.CoveredItems)
	require.Empty(t, result.Zones)
}

func TestBuildAstrub(t *testing.T) {
	drops := []catalog.Drop{
		{MonsterID: 10, MonsterName: "Bouftou", MonsterLevel: 12, ItemID: 500, Rate: 8.5, Zones: []string{"Astrub"}},
	}

	result := Build([]int64{500}, drops)
	require.Len(t, result.Zones, 1)

	zone := result.Zones[0]
	require.Equal(t, "Astrub", zone.Name)
	require.Equal(t, 1, zone.TotalItems)
	require.InDelta(t, 8.5, zone.AvgDropRate, 1e-9)
	require.Len(t, zone.Monsters, 1)
	require.Equal(t, "Bouftou", zone.Monsters[0].Name)

	require.Equal(t, Summary{
		RequestedItems: 1,
		CoveredItems:   1,
		TotalZones:     1,
		TotalMonsters:  1,
	}, result.Summary)
}

func TestBuildMonsterInSeveralZones(t *testing.T) {
	// the same monster drops to both zones, each zone counts its items
	// but the global monster tally counts it once
	drops := []catalog.Drop{
		{MonsterID: 10, MonsterName: "Bouftou", ItemID: 500, Rate: 10, Zones: []string{"Astrub", "Bonta"}},
		{MonsterID: 10, MonsterName: "Bouftou", ItemID: 501, Rate: 2, Zones: []string{"Astrub", "Bonta"}},
		{MonsterID: 20, MonsterName: "Tofu", ItemID: 502, Rate: 50, Zones: []string{"Bonta"}},
	}

	result := Build([]int64{500, 501, 502}, drops)
	require.Equal(t, 2, result.Summary.TotalZones)
	require.Equal(t, 2, result.Summary.TotalMonsters)
	require.Equal(t, 3, result.Summary.CoveredItems)

	// Bonta covers three items to Astrub's two
	require.Equal(t, "Bonta", result.Zones[0].Name)
	require.Equal(t, 3, result.Zones[0].TotalItems)
	require.Equal(t, "Astrub", result.Zones[1].Name)
	require.Equal(t, 2, result.Zones[1].TotalItems)

	// within Bonta the higher summed rate leads
	require.Equal(t, "Tofu", result.Zones[0].Monsters[0].Name)
	require.Equal(t, "Bouftou", result.Zones[0].Monsters[1].Name)
	require.Len(t, result.Zones[0].Monsters[1].Items, 2)
}

func TestBuildUnknownZone(t *testing.T) {
	drops := []catalog.Drop{
		{MonsterID: 10, MonsterName: "Chafer", ItemID: 500, Rate: 5},
	}
	result := Build([]int64{500}, drops)
	require.Len(t, result.Zones, 1)
	require.Equal(t, UnknownZone, result.Zones[0].Name)
}

func TestBuildZoneOrdering(t *testing.T) {
	// equal item counts fall back to average drop rate
	drops := []catalog.Drop{
		{MonsterID: 1, MonsterName: "A", ItemID: 500, Rate: 1, Zones: []string{"Lente"}},
		{MonsterID: 2, MonsterName: "B", ItemID: 500, Rate: 30, Zones: []string{"Rapide"}},
	}
	result := Build([]int64{500}, drops)
	require.Equal(t, "Rapide", result.Zones[0].Name)
	require.Equal(t, "Lente", result.Zones[1].Name)
}
