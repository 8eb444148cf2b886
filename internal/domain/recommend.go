package domain

import (
	"slices"
)

// Scoring weights and result cutoff. These are fixed product constants.
const (
	EmotionWeight   = 3
	SituationWeight = 3
	BothMatchBonus  = 2

	// MaxScore is the score of a prayer matching both selected facets.
	MaxScore = EmotionWeight + SituationWeight + BothMatchBonus

	// MaxRecommendations is how many prayers a recommendation returns at most.
	MaxRecommendations = 3
)

// ScoredPrayer pairs a prayer with its score for one selection.
type ScoredPrayer struct {
	Prayer Prayer
	Score  int
}

// Recommendation is the ranked result for one selection.
type Recommendation struct {
	Selection Selection

	// Items holds at most MaxRecommendations prayers, best first.
	Items []Prayer

	// Fallback is true when a facet was selected but nothing matched it,
	// so Items is the generic zero-score, title-ordered set.
	Fallback bool
}

// Featured returns the top-ranked prayer, if any.
func (r *Recommendation) Featured() (Prayer, bool) {
	if len(r.Items) == 0 {
		return Prayer{}, false
	}

	return r.Items[0], true
}

// Score computes the match score of p for sel.
func Score(p *Prayer, sel Selection) int {
	emotionMatch := sel.Emotion != "" && p.HasEmotion(sel.Emotion)
	situationMatch := sel.Situation != "" && p.HasSituation(sel.Situation)

	score := 0
	if emotionMatch {
		score += EmotionWeight
	}

	if situationMatch {
		score += SituationWeight
	}

	if emotionMatch && situationMatch {
		score += BothMatchBonus
	}

	return score
}

// Rank scores every prayer and sorts by score descending, then title in
// Korean collation order. The input slice is not modified.
func Rank(prayers []Prayer, sel Selection) []ScoredPrayer {
	scored := make([]ScoredPrayer, len(prayers))
	for i := range prayers {
		scored[i] = ScoredPrayer{Prayer: prayers[i], Score: Score(&prayers[i], sel)}
	}

	slices.SortStableFunc(scored, func(a, b ScoredPrayer) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}

		return CompareLocale(a.Prayer.Title, b.Prayer.Title)
	})

	return scored
}

// Recommend returns up to MaxRecommendations prayers for sel.
//
// With no facet selected the whole catalog is ordered by title. With a
// selection, only prayers scoring above zero are kept; when none do, the
// zero-score title ordering is returned instead of an empty result.
func Recommend(prayers []Prayer, sel Selection) Recommendation {
	scored := Rank(prayers, sel)
	rec := Recommendation{Selection: sel}

	candidates := scored
	if !sel.IsEmpty() {
		matched := slices.DeleteFunc(slices.Clone(scored), func(sp ScoredPrayer) bool {
			return sp.Score <= 0
		})

		if len(matched) > 0 {
			candidates = matched
		} else {
			rec.Fallback = len(scored) > 0
		}
	}

	n := min(MaxRecommendations, len(candidates))
	rec.Items = make([]Prayer, n)

	for i := range n {
		rec.Items[i] = candidates[i].Prayer.clone()
	}

	return rec
}
