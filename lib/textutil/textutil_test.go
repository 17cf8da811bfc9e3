package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   \t\n", ""},
		{"Épée Céleste", "epee celeste"},
		{"Epee Celeste", "epee celeste"},
		{"Heaume du Chevalier Creux", "heaume du chevalier creux"},
		{"L'Anneau d'Amakna", "l anneau d amakna"},
		{"Casque-du-Bouffon", "casque du bouffon"},
		{"Cape du Feu (niv. 230)", "cape du feu"},
		{"Bouftou Royal 12", "bouftou royal"},
		{"  Plaine   d'Amakna  ", "plaine d amakna"},
		{"Âme çà-et-là", "ame ca et la"},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, NormalizeName(tc.input), "input: %q", tc.input)
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{
		"Épée Céleste",
		"Casque du Bouffon légendaire",
		"Heaume du Chevalier Creux niv. 215",
		"",
		"déjà-vu",
	}
	for _, s := range inputs {
		once := NormalizeName(s)
		require.Equal(t, once, NormalizeName(once), "input: %q", s)
	}
}

func TestMatchName(t *testing.T) {
	require.True(t, MatchName("Casque du Bouffon Légendaire", []string{"legendaire"}))
	require.False(t, MatchName("Casque du Bouffon", []string{"legendaire"}))
}
