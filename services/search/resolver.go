package search

import (
	"context"
	"sort"

	"github.com/mmangon/wakdrop-backend/lib/textutil"
	"github.com/mmangon/wakdrop-backend/services/catalog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("services/search")

const (
	// accept resolutions a human will review
	ThresholdSearch = 0.3
	// automated pipelines have no manual fallback, so the bar is higher
	ThresholdBulk = 0.6

	// candidates scoring at or below this are not worth retaining
	candidateFloor = 0.1
	// normalized queries shorter than this carry too little signal
	minQueryLength = 3
)

type Options struct {
	// how many candidates to retain for disambiguation, default 3
	MaxCandidates int
	// minimum final score to accept, a candidate exactly at the
	// threshold is accepted; default ThresholdSearch
	Threshold float64
}

func (o Options) withDefaults() Options {
	if o.MaxCandidates <= 0 {
		o.MaxCandidates = 3
	}
	if o.Threshold == 0 {
		o.Threshold = ThresholdSearch
	}
	return o
}

// Query is one free-text name to resolve. RarityHint optionally
// carries a rarity keyword from source metadata (a CSS class, say);
// it takes precedence over keywords embedded in the text.
type Query struct {
	Text       string
	RarityHint string
}

type Resolved struct {
	Query         string
	WakfuID       int64
	Name          string
	Rarity        catalog.Rarity
	ObtentionType string
	Score         float64
}

type Result struct {
	Resolved []Resolved
	// inputs that matched nothing, original text retained for
	// diagnostics
	Unresolved []string
}

// ResolveAll resolves free-text item names against a catalog
// snapshot. Duplicate queries are resolved independently; the caller
// decides whether to dedup the resulting ids.
func ResolveAll(ctx context.Context, queries []string, items []catalog.Item, opts Options) Result {
	qs := make([]Query, len(queries))
	for i, text := range queries {
		qs[i] = Query{Text: text}
	}
	return ResolveQueries(ctx, qs, items, opts)
}

func ResolveQueries(ctx context.Context, queries []Query, items []catalog.Item, opts Options) Result {
	ctx, span := tracer.Start(ctx, "ResolveQueries")
	defer span.End()
	opts = opts.withDefaults()

	var result Result
	for _, q := range queries {
		resolved, ok := resolveOne(q, items, opts)
		if !ok {
			result.Unresolved = append(result.Unresolved, q.Text)
			continue
		}
		result.Resolved = append(result.Resolved, resolved)
	}

	span.SetAttributes(
		attribute.Int("resolved", len(result.Resolved)),
		attribute.Int("unresolved", len(result.Unresolved)),
	)
	return result
}

func resolveOne(q Query, items []catalog.Item, opts Options) (Resolved, bool) {
	normQuery := textutil.NormalizeName(q.Text)
	if len(normQuery) < minQueryLength {
		return Resolved{}, false
	}

	var candidates []Candidate
	for _, item := range items {
		// source data is not guaranteed clean, malformed records must
		// never fail the batch
		if item.Name == "" {
			continue
		}
		detail := scoreNormalized(
			normQuery, q.Text,
			textutil.NormalizeName(item.Name), item.Name,
		)
		score := detail.Composite()
		if score <= candidateFloor {
			continue
		}
		candidates = append(candidates, Candidate{
			Item:   item,
			Score:  score,
			Detail: detail,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Item.WakfuID < candidates[j].Item.WakfuID
	})
	if len(candidates) > opts.MaxCandidates {
		candidates = candidates[:opts.MaxCandidates]
	}

	hint, hasHint := ExtractRarityHint(q.RarityHint)
	if !hasHint {
		hint, hasHint = ExtractRarityHint(q.Text)
	}

	best, ok := Disambiguate(candidates, hint, hasHint)
	if !ok || best.Score < opts.Threshold {
		return Resolved{}, false
	}

	return Resolved{
		Query:         q.Text,
		WakfuID:       best.Item.WakfuID,
		Name:          best.Item.Name,
		Rarity:        best.Item.Rarity,
		ObtentionType: best.Item.ObtentionType,
		Score:         best.Score,
	}, true
}
