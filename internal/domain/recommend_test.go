package domain

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prayer(id, title string, emotions, situations []string) Prayer {
	return Prayer{
		ID:         id,
		Title:      title,
		Body:       title + " 본문",
		Emotions:   emotions,
		Situations: situations,
	}
}

// sampleCatalog mirrors the three-record example: A(sad,night), B(sad,work), C(joy,night).
func sampleCatalog() []Prayer {
	return []Prayer{
		prayer("c", "C", []string{"joy"}, []string{"night"}),
		prayer("b", "B", []string{"sad"}, []string{"work"}),
		prayer("a", "A", []string{"sad"}, []string{"night"}),
	}
}

func titles(ps []Prayer) []string {
	out := make([]string, len(ps))
	for i := range ps {
		out[i] = ps[i].Title
	}

	return out
}

func TestScore(t *testing.T) {
	p := prayer("a", "A", []string{"sad", "tired"}, []string{"night"})

	tests := []struct {
		name string
		sel  Selection
		want int
	}{
		{"nothing selected", Selection{}, 0},
		{"emotion match", Selection{Emotion: "sad"}, EmotionWeight},
		{"situation match", Selection{Situation: "night"}, SituationWeight},
		{"both match earns bonus", Selection{Emotion: "tired", Situation: "night"}, MaxScore},
		{"emotion match situation miss", Selection{Emotion: "sad", Situation: "work"}, EmotionWeight},
		{"situation match emotion miss", Selection{Emotion: "joy", Situation: "night"}, SituationWeight},
		{"unknown labels", Selection{Emotion: "anger", Situation: "beach"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(&p, tt.sel))
		})
	}

	assert.Equal(t, 8, MaxScore)
}

func TestRecommend_BothFacetsExample(t *testing.T) {
	rec := Recommend(sampleCatalog(), Selection{Emotion: "sad", Situation: "night"})

	if diff := cmp.Diff([]string{"A", "B", "C"}, titles(rec.Items)); diff != "" {
		t.Errorf("recommendation order mismatch (-want +got):\n%s", diff)
	}

	assert.False(t, rec.Fallback)

	scored := Rank(sampleCatalog(), rec.Selection)
	assert.Equal(t, []int{8, 3, 3}, []int{scored[0].Score, scored[1].Score, scored[2].Score})
}

func TestRecommend_NoSelectionIsTitleOrder(t *testing.T) {
	catalog := append(sampleCatalog(),
		prayer("d", "D", []string{"sad"}, []string{"night"}),
	)

	rec := Recommend(catalog, Selection{})

	assert.Equal(t, []string{"A", "B", "C"}, titles(rec.Items))
	assert.False(t, rec.Fallback)
}

func TestRecommend_OnlyMatchesWhenSomethingMatches(t *testing.T) {
	catalog := []Prayer{
		prayer("1", "가", []string{"기쁨"}, []string{"아침"}),
		prayer("2", "나", []string{"슬픔"}, []string{"저녁"}),
		prayer("3", "다", []string{"기쁨"}, []string{"저녁"}),
		prayer("4", "라", []string{"불안"}, []string{"직장"}),
	}

	rec := Recommend(catalog, Selection{Emotion: "기쁨"})

	assert.Equal(t, []string{"가", "다"}, titles(rec.Items), "zero-score records are filtered out")
	assert.False(t, rec.Fallback)
}

func TestRecommend_UnknownLabelFallsBack(t *testing.T) {
	rec := Recommend(sampleCatalog(), Selection{Emotion: "anger"})

	assert.Equal(t, []string{"A", "B", "C"}, titles(rec.Items))
	assert.True(t, rec.Fallback)
}

func TestRecommend_ResultLength(t *testing.T) {
	selections := []Selection{
		{},
		{Emotion: "sad"},
		{Situation: "night"},
		{Emotion: "sad", Situation: "night"},
		{Emotion: "none", Situation: "none"},
	}

	catalogs := map[string][]Prayer{
		"empty": {},
		"one":   sampleCatalog()[:1],
		"two":   sampleCatalog()[:2],
		"three": sampleCatalog(),
		"five": append(sampleCatalog(),
			prayer("d", "D", []string{"sad"}, []string{"night"}),
			prayer("e", "E", []string{"joy"}, []string{"work"}),
		),
	}

	for name, catalog := range catalogs {
		for _, sel := range selections {
			rec := Recommend(catalog, sel)
			want := min(MaxRecommendations, len(catalog))

			// Filtering by score>0 can only shrink below the cutoff when fewer records match.
			matched := 0
			for i := range catalog {
				if Score(&catalog[i], sel) > 0 {
					matched++
				}
			}

			if !sel.IsEmpty() && matched > 0 {
				want = min(want, matched)
			}

			assert.Len(t, rec.Items, want, "catalog=%s selection=%+v", name, sel)
		}
	}
}

func TestRecommend_SortedByScoreThenTitle(t *testing.T) {
	catalog := []Prayer{
		prayer("1", "평안의 기도", []string{"불안"}, []string{"아침"}),
		prayer("2", "감사의 기도", []string{"기쁨"}, []string{"아침"}),
		prayer("3", "위로의 기도", []string{"불안"}, []string{"밤"}),
		prayer("4", "새 힘을 구하는 기도", []string{"지침"}, []string{"아침"}),
		prayer("5", "고요한 밤의 기도", []string{"불안"}, []string{"아침"}),
	}
	sel := Selection{Emotion: "불안", Situation: "아침"}

	rec := Recommend(catalog, sel)
	require.Len(t, rec.Items, MaxRecommendations)

	for i := 1; i < len(rec.Items); i++ {
		prev, cur := rec.Items[i-1], rec.Items[i]
		ps, cs := Score(&prev, sel), Score(&cur, sel)

		assert.GreaterOrEqual(t, ps, cs)

		if ps == cs {
			assert.Negative(t, CompareLocale(prev.Title, cur.Title))
		}
	}

	assert.Equal(t, []string{"고요한 밤의 기도", "평안의 기도", "감사의 기도"}, titles(rec.Items))
}

func TestRecommend_IsPureAndIdempotent(t *testing.T) {
	catalog := sampleCatalog()
	before := slices.Clone(catalog)
	sel := Selection{Emotion: "sad", Situation: "night"}

	first := Recommend(catalog, sel)
	second := Recommend(catalog, sel)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated calls differ (-first +second):\n%s", diff)
	}

	if diff := cmp.Diff(before, catalog); diff != "" {
		t.Errorf("catalog was mutated (-before +after):\n%s", diff)
	}

	// Mutating the result must not reach the catalog.
	first.Items[0].Emotions[0] = "changed"
	assert.Equal(t, "sad", catalog[2].Emotions[0])
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	rec := Recommend(nil, Selection{Emotion: "sad"})

	assert.Empty(t, rec.Items)
	assert.False(t, rec.Fallback)

	_, ok := rec.Featured()
	assert.False(t, ok)
}

func TestRecommendation_Featured(t *testing.T) {
	rec := Recommend(sampleCatalog(), Selection{Situation: "work"})

	featured, ok := rec.Featured()
	require.True(t, ok)
	assert.Equal(t, "b", featured.ID)
}
