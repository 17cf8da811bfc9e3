package search

import (
	"strings"

	"github.com/mmangon/wakdrop-backend/lib/textutil"
	"github.com/mmangon/wakdrop-backend/services/catalog"
)

// scanned in order, first substring match wins. Longer and more
// specific keywords come first so "rare" cannot shadow "légendaire"
// or "inhabituel".
var rarityKeywords = []struct {
	keyword string
	rarity  catalog.Rarity
}{
	{"legendaire", catalog.RarityLegendary},
	{"legendary", catalog.RarityLegendary},
	{"inhabituel", catalog.RarityUnusual},
	{"uncommon", catalog.RarityUnusual},
	{"unusual", catalog.RarityUnusual},
	{"mythique", catalog.RarityMythic},
	{"souvenir", catalog.RaritySouvenir},
	{"mythic", catalog.RarityMythic},
	{"relique", catalog.RarityRelic},
	{"relic", catalog.RarityRelic},
	{"epique", catalog.RarityEpic},
	{"commun", catalog.RarityCommon},
	{"common", catalog.RarityCommon},
	{"epic", catalog.RarityEpic},
	{"rare", catalog.RarityRare},
	{"pvp", catalog.RaritySouvenir},
}

// ExtractRarityHint scans free text for a rarity keyword (French or
// English, accents and case immaterial).
func ExtractRarityHint(text string) (catalog.Rarity, bool) {
	normalized := textutil.NormalizeName(text)
	if normalized == "" {
		return 0, false
	}
	for _, entry := range rarityKeywords {
		if strings.Contains(normalized, entry.keyword) {
			return entry.rarity, true
		}
	}
	return 0, false
}

// Candidate is the result of scoring a query against one catalog
// item, never persisted.
type Candidate struct {
	Item   catalog.Item
	Score  float64
	Detail SubScores
}

// the score lift granted when a candidate's rarity confirms the hint
const rarityBoost = 0.2

// Disambiguate picks from score-descending candidates: with a hint,
// the best candidate of the hinted rarity wins and its score is
// boosted, without one (or when nothing matches the hint) the top
// candidate is returned unmodified. An empty candidate list reports
// no match rather than failing.
func Disambiguate(candidates []Candidate, hint catalog.Rarity, hasHint bool) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	if hasHint {
		for _, c := range candidates {
			if c.Item.Rarity == hint {
				c.Score += rarityBoost
				if c.Score > 1 {
					c.Score = 1
				}
				return c, true
			}
		}
	}
	return candidates[0], true
}
