package search

import (
	"strings"

	"github.com/mmangon/wakdrop-backend/lib/textutil"
)

// the word-overlap short circuit: one side containing every word of
// the other is a high-confidence match regardless of word order
const wordShortCircuit = 0.95

// SubScores holds the similarity signals computed between a query and
// one candidate name, each in [0,1]. Kept around for diagnostics.
type SubScores struct {
	Exact     float64
	Substring float64
	Sequence  float64
	Words     float64
}

// Composite collapses the sub-scores into the weighted match score
// used for ranking. An exact match is pinned to 1.0 and the word
// short circuit floors the result at its confidence.
func (s SubScores) Composite() float64 {
	if s.Exact >= 1 {
		return 1
	}
	c := (s.Exact*2.0 + s.Substring*1.5 + s.Sequence*1.0 + s.Words*0.8) / 5.3
	if s.Words >= wordShortCircuit && c < wordShortCircuit {
		c = wordShortCircuit
	}
	if c > 1 {
		c = 1
	}
	return c
}

// Score computes the similarity sub-scores between a free-text query
// and a candidate catalog name. Pure, no I/O.
func Score(query, candidate string) SubScores {
	return scoreNormalized(
		textutil.NormalizeName(query), query,
		textutil.NormalizeName(candidate), candidate,
	)
}

func scoreNormalized(normQuery, rawQuery, normCandidate, rawCandidate string) SubScores {
	if normQuery == "" || normCandidate == "" {
		return SubScores{}
	}

	var s SubScores
	if normQuery == normCandidate || strings.EqualFold(rawQuery, rawCandidate) {
		s.Exact = 1
	}
	s.Substring = substringScore(normQuery, normCandidate)
	s.Sequence = sequenceRatio(normQuery, normCandidate)
	s.Words = wordScore(normQuery, normCandidate)
	return s
}

// substringScore rewards close-length containment: a one-word
// difference scores lower than near-identical length.
func substringScore(a, b string) float64 {
	if !strings.Contains(a, b) && !strings.Contains(b, a) {
		return 0
	}
	shorter, longer := len(a), len(b)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	return float64(shorter) / float64(longer)
}

// sequenceRatio is a character-level edit-similarity ratio:
// 2 * total-matching-run length / combined length. Matching runs are
// found by taking the longest common substring and recursing on the
// pieces to its left and right.
func sequenceRatio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 0
	}
	return 2 * float64(matchingRuns(a, b)) / float64(total)
}

func matchingRuns(a, b string) int {
	aStart, bStart, size := longestCommonRun(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingRuns(a[:aStart], b[:bStart]) +
		matchingRuns(a[aStart+size:], b[bStart+size:])
}

func longestCommonRun(a, b string) (aStart, bStart, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// lengths of common suffixes ending at a[i-1]/b[j-1], rolling row
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > size {
					size = curr[j]
					aStart = i - size
					bStart = j - size
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return aStart, bStart, size
}

// wordScore compares whitespace-split word sets. If either side
// contains every word of the other it short-circuits at 0.95,
// otherwise partial overlap is scored at 0.7 weight with a 0.3
// bonus when the candidate starts with the query.
func wordScore(normQuery, normCandidate string) float64 {
	queryWords := strings.Fields(normQuery)
	candidateWords := strings.Fields(normCandidate)
	if len(queryWords) == 0 || len(candidateWords) == 0 {
		return 0
	}

	if containsAllWords(queryWords, candidateWords) || containsAllWords(candidateWords, queryWords) {
		return wordShortCircuit
	}

	matched := 0
	for _, qw := range queryWords {
		for _, cw := range candidateWords {
			if wordsMatch(qw, cw) {
				matched++
				break
			}
		}
	}

	score := float64(matched) / float64(len(queryWords)) * 0.7
	if strings.HasPrefix(normCandidate, normQuery) {
		score += 0.3
	}
	if score > 1 {
		score = 1
	}
	return score
}

// superset reports whether every word of sub appears in super as an
// exact member
func containsAllWords(super, sub []string) bool {
	set := make(map[string]struct{}, len(super))
	for _, w := range super {
		set[w] = struct{}{}
	}
	for _, w := range sub {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}

// short words (length <= 2, think "du", "de") only match exactly,
// longer words match by containment in either direction
func wordsMatch(a, b string) bool {
	if len(a) <= 2 && len(b) <= 2 {
		return a == b
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
