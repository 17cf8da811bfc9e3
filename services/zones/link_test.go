package zones

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSuggestSpawnLinks(t *testing.T) {
	cases := []struct {
		name     string
		monsters []MonsterRef
		spawns   []string
		expected []SpawnLink
	}{
		{
			name: "exact matches win over fuzzy ones",
			monsters: []MonsterRef{
				{ID: 1, Name: "Bouftou"},
				{ID: 2, Name: "Bouftou Noir"},
			},
			spawns: []string{"Bouftou Noir", "bouftou"},
			expected: []SpawnLink{
				{Monster: MonsterRef{ID: 1, Name: "Bouftou"}, SpawnName: "bouftou", Correlation: 1},
				{Monster: MonsterRef{ID: 2, Name: "Bouftou Noir"}, SpawnName: "Bouftou Noir", Correlation: 1},
			},
		},
		{
			name: "accents fold before comparing",
			monsters: []MonsterRef{
				{ID: 3, Name: "Tofu Maléfique"},
			},
			spawns: []string{"tofu malefique"},
			expected: []SpawnLink{
				{Monster: MonsterRef{ID: 3, Name: "Tofu Maléfique"}, SpawnName: "tofu malefique", Correlation: 1},
			},
		},
		{
			name: "leftovers pair by similarity",
			monsters: []MonsterRef{
				{ID: 4, Name: "Chafer Lancier"},
			},
			spawns: []string{"Chafer Lancie"},
			expected: []SpawnLink{
				{Monster: MonsterRef{ID: 4, Name: "Chafer Lancier"}, SpawnName: "Chafer Lancie"},
			},
		},
		{
			name: "each spawn claimed once",
			monsters: []MonsterRef{
				{ID: 5, Name: "Tofu"},
				{ID: 6, Name: "Tofu"},
			},
			spawns: []string{"Tofu"},
			expected: []SpawnLink{
				{Monster: MonsterRef{ID: 5, Name: "Tofu"}, SpawnName: "Tofu", Correlation: 1},
			},
		},
		{
			name:     "no spawns no links",
			monsters: []MonsterRef{{ID: 7, Name: "Bouftou"}},
			spawns:   nil,
			expected: nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SuggestSpawnLinks(c.monsters, c.spawns)
			require.Len(t, got, len(c.expected))
			for i, link := range got {
				want := c.expected[i]
				if want.Correlation == 0 {
					// fuzzy pass, assert the pairing but not the
					// exact similarity value
					require.Greater(t, link.Correlation, 0.8)
					link.Correlation = 0
				}
				if diff := cmp.Diff(want, link); diff != "" {
					t.Fatalf("link mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
