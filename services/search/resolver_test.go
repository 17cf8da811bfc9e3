package search

import (
	"context"
	"testing"

	"github.com/mmangon/wakdrop-backend/services/catalog"

	"github.com/stretchr/testify/require"
)

func testItems() []catalog.Item {
	return []catalog.Item{
		{WakfuID: 101, Name: "Casque du Bouffon", Rarity: catalog.RarityRare},
		{WakfuID: 102, Name: "Casque du Bouffon", Rarity: catalog.RarityLegendary},
		{WakfuID: 201, Name: "Amulette du Craqueleur", Rarity: catalog.RarityMythic},
		{WakfuID: 301, Name: "Heaume Creux", Rarity: catalog.RarityCommon},
	}
}

func TestResolveExactAndUnknown(t *testing.T) {
	result := ResolveAll(context.Background(),
		[]string{"amulette du craqueleur", "Pioute Dorée"},
		testItems(), Options{})

	require.Len(t, result.Resolved, 1)
	require.Equal(t, int64(201), result.Resolved[0].WakfuID)
	require.Equal(t, 1.0, result.Resolved[0].Score)
	require.Equal(t, []string{"Pioute Dorée"}, result.Unresolved)
}

func TestResolveThresholdBoundary(t *testing.T) {
	// a pure word-order swap scores exactly at the short circuit
	queries := []string{"Creux Heaume"}

	result := ResolveAll(context.Background(), queries, testItems(),
		Options{Threshold: wordShortCircuit})
	require.Len(t, result.Resolved, 1)
	require.Equal(t, int64(301), result.Resolved[0].WakfuID)

	// one notch above the score and the same query must fail
	result = ResolveAll(context.Background(), queries, testItems(),
		Options{Threshold: wordShortCircuit + 0.0001})
	require.Empty(t, result.Resolved)
	require.Equal(t, queries, result.Unresolved)
}

func TestResolveShortQuery(t *testing.T) {
	result := ResolveAll(context.Background(),
		[]string{"ab", "12", ""},
		testItems(), Options{})
	require.Empty(t, result.Resolved)
	require.Len(t, result.Unresolved, 3)
}

func TestResolveSkipsMalformedItems(t *testing.T) {
	items := append(testItems(), catalog.Item{WakfuID: 999, Name: ""})
	result := ResolveAll(context.Background(),
		[]string{"Heaume Creux"}, items, Options{})
	require.Len(t, result.Resolved, 1)
	require.Equal(t, int64(301), result.Resolved[0].WakfuID)
}

func TestResolveDuplicatesIndependently(t *testing.T) {
	result := ResolveAll(context.Background(),
		[]string{"Heaume Creux", "Heaume Creux"},
		testItems(), Options{})
	require.Len(t, result.Resolved, 2)
	require.Equal(t, result.Resolved[0].WakfuID, result.Resolved[1].WakfuID)
}

func TestResolveRarityDisambiguation(t *testing.T) {
	// both helmets tie on name score, the embedded keyword must pick
	// the legendary one and the boost caps at 1
	result := ResolveAll(context.Background(),
		[]string{"casque du bouffon légendaire"},
		testItems(), Options{})
	require.Len(t, result.Resolved, 1)
	require.Equal(t, int64(102), result.Resolved[0].WakfuID)
	require.Equal(t, catalog.RarityLegendary, result.Resolved[0].Rarity)
	require.Equal(t, 1.0, result.Resolved[0].Score)

	// without any hint the tie breaks on lowest id
	result = ResolveAll(context.Background(),
		[]string{"bouffon casque"},
		testItems(), Options{})
	require.Len(t, result.Resolved, 1)
	require.Equal(t, int64(101), result.Resolved[0].WakfuID)
}

func TestResolveStructuredHintPrecedence(t *testing.T) {
	result := ResolveQueries(context.Background(),
		[]Query{{Text: "Casque du Bouffon", RarityHint: "rarity-legendaire"}},
		testItems(), Options{})
	require.Len(t, result.Resolved, 1)
	require.Equal(t, int64(102), result.Resolved[0].WakfuID)
}
