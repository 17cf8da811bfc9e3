package search

import (
	"testing"

	"github.com/mmangon/wakdrop-backend/services/catalog"

	"github.com/stretchr/testify/require"
)

func TestExtractRarityHint(t *testing.T) {
	cases := []struct {
		text   string
		rarity catalog.Rarity
		found  bool
	}{
		{"Casque du Bouffon Légendaire", catalog.RarityLegendary, true},
		{"legendary helmet", catalog.RarityLegendary, true},
		{"Objet inhabituel", catalog.RarityUnusual, true},
		{"Anneau PvP", catalog.RaritySouvenir, true},
		{"Épée Rare", catalog.RarityRare, true},
		{"Relique du Craqueleur", catalog.RarityRelic, true},
		{"Bouftou Royal", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		rarity, found := ExtractRarityHint(c.text)
		require.Equal(t, c.found, found, c.text)
		if c.found {
			require.Equal(t, c.rarity, rarity, c.text)
		}
	}
}

func TestDisambiguateWithHint(t *testing.T) {
	candidates := []Candidate{
		{Item: catalog.Item{WakfuID: 101, Rarity: catalog.RarityRare}, Score: 0.5},
		{Item: catalog.Item{WakfuID: 102, Rarity: catalog.RarityLegendary}, Score: 0.48},
	}

	best, ok := Disambiguate(candidates, catalog.RarityLegendary, true)
	require.True(t, ok)
	require.Equal(t, int64(102), best.Item.WakfuID)
	require.InDelta(t, 0.68, best.Score, 1e-9)

	// without a hint the top candidate wins unmodified
	best, ok = Disambiguate(candidates, 0, false)
	require.True(t, ok)
	require.Equal(t, int64(101), best.Item.WakfuID)
	require.Equal(t, 0.5, best.Score)

	// a hint matching nothing falls back to the top candidate
	best, ok = Disambiguate(candidates, catalog.RarityMythic, true)
	require.True(t, ok)
	require.Equal(t, int64(101), best.Item.WakfuID)
}

func TestDisambiguateBoostCap(t *testing.T) {
	candidates := []Candidate{
		{Item: catalog.Item{WakfuID: 7, Rarity: catalog.RarityEpic}, Score: 0.95},
	}
	best, ok := Disambiguate(candidates, catalog.RarityEpic, true)
	require.True(t, ok)
	require.Equal(t, 1.0, best.Score)
}

func TestDisambiguateEmpty(t *testing.T) {
	_, ok := Disambiguate(nil, catalog.RarityRare, true)
	require.False(t, ok)
}
