package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)
var levelTokenRegex = regexp.MustCompile(`\b(niv|niveau|lvl|level)\s*\.?\s*\d+\b`)
var isolatedDigitsRegex = regexp.MustCompile(`\b\d+\b`)
var punctuationRegex = regexp.MustCompile(`[^a-z0-9 ]`)

// accents are folded with a fixed table covering the characters that
// actually occur in item names, this is intentionally not full unicode
// normalization
var accentFolder = strings.NewReplacer(
	"à", "a",
	"â", "a",
	"ç", "c",
	"é", "e",
	"è", "e",
	"ê", "e",
	"ë", "e",
	"î", "i",
	"ï", "i",
	"ô", "o",
	"ù", "u",
	"û", "u",
)

// NormalizeName canonicalizes a display name for comparison:
// lowercase, apostrophes/hyphens to spaces, accent folding, level
// tokens ("niv. 230") and isolated digits removed, remaining
// punctuation to spaces, whitespace collapsed. The result of
// NormalizeName is a fixed point of NormalizeName.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "'", " ")
	name = strings.ReplaceAll(name, "’", " ")
	name = strings.ReplaceAll(name, "-", " ")
	name = accentFolder.Replace(name)
	name = levelTokenRegex.ReplaceAllString(name, " ")
	name = isolatedDigitsRegex.ReplaceAllString(name, " ")
	name = punctuationRegex.ReplaceAllString(name, " ")
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// MatchName reports whether the normalized name contains any of the
// given matchers, matchers are expected to be normalized already.
func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}
