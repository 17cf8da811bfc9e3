package zones

import (
	"github.com/antzucaro/matchr"

	"github.com/mmangon/wakdrop-backend/lib/textutil"
)

// MonsterRef identifies a catalog monster by id and display name.
type MonsterRef struct {
	ID   int64
	Name string
}

// SpawnLink associates a monster with one entry of a zone's scraped
// spawn list, with a correlation in (0,1], 1 meaning the names agree
// exactly after normalization.
type SpawnLink struct {
	Monster     MonsterRef
	SpawnName   string
	Correlation float64
}

// SuggestSpawnLinks correlates monster names with a zone's scraped
// spawn list. Exact (normalized) matches are claimed first, the
// leftovers are paired greedily by Jaro-Winkler similarity. Each
// spawn entry is claimed at most once.
func SuggestSpawnLinks(monsters []MonsterRef, spawnNames []string) []SpawnLink {
	normSpawns := make([]string, len(spawnNames))
	for i, s := range spawnNames {
		normSpawns[i] = textutil.NormalizeName(s)
	}

	var result []SpawnLink
	matchedMonsters := make(map[int64]struct{})
	matchedSpawns := make(map[int]struct{})

	for _, monster := range monsters {
		norm := textutil.NormalizeName(monster.Name)
		for i, spawn := range normSpawns {
			if _, claimed := matchedSpawns[i]; claimed {
				continue
			}
			if norm == spawn && norm != "" {
				result = append(result, SpawnLink{
					Monster:     monster,
					SpawnName:   spawnNames[i],
					Correlation: 1,
				})
				matchedMonsters[monster.ID] = struct{}{}
				matchedSpawns[i] = struct{}{}
				break
			}
		}
	}

	for _, monster := range monsters {
		if _, done := matchedMonsters[monster.ID]; done {
			continue
		}
		norm := textutil.NormalizeName(monster.Name)
		if norm == "" {
			continue
		}

		var mostSimilarity float64
		mostSimilar := -1

		for i, spawn := range normSpawns {
			if _, claimed := matchedSpawns[i]; claimed {
				continue
			}
			similarity := matchr.JaroWinkler(norm, spawn, false)
			if similarity > mostSimilarity {
				mostSimilarity = similarity
				mostSimilar = i
			}
		}

		if mostSimilar >= 0 && mostSimilarity > 0 {
			result = append(result, SpawnLink{
				Monster:     monster,
				SpawnName:   spawnNames[mostSimilar],
				Correlation: mostSimilarity,
			})
			matchedMonsters[monster.ID] = struct{}{}
			matchedSpawns[mostSimilar] = struct{}{}
		}
	}

	return result
}
