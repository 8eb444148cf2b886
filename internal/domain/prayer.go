package domain

import "slices"

// Default labels shown when a facet is unselected.
const (
	AllEmotionsLabel   = "전체 감정"
	AllSituationsLabel = "전체 상황"
)

// Prayer is a single devotional text in the catalog.
// This is a domain entity - it has no knowledge of where the catalog came from.
type Prayer struct {
	// ID is the unique, stable identifier.
	ID string

	// Title is the short display string, also used as the ranking tie-break.
	Title string

	// Body is the multi-line prayer text.
	Body string

	// Tags are display-only labels. They never influence scoring.
	Tags []string

	// Emotions are the emotion-facet labels this prayer is relevant to.
	Emotions []string

	// Situations are the situation-facet labels this prayer is relevant to.
	Situations []string
}

// HasEmotion reports whether the prayer carries the given emotion label.
func (p *Prayer) HasEmotion(label string) bool {
	return slices.Contains(p.Emotions, label)
}

// HasSituation reports whether the prayer carries the given situation label.
func (p *Prayer) HasSituation(label string) bool {
	return slices.Contains(p.Situations, label)
}

// clone returns a deep copy so catalog state never leaks to callers.
func (p *Prayer) clone() Prayer {
	return Prayer{
		ID:         p.ID,
		Title:      p.Title,
		Body:       p.Body,
		Tags:       slices.Clone(p.Tags),
		Emotions:   slices.Clone(p.Emotions),
		Situations: slices.Clone(p.Situations),
	}
}

// Facet names one of the two independent filter dimensions.
type Facet string

const (
	// FacetEmotion selects Prayer.Emotions.
	FacetEmotion Facet = "emotion"

	// FacetSituation selects Prayer.Situations.
	FacetSituation Facet = "situation"
)

// Valid reports whether f is a known facet.
func (f Facet) Valid() bool {
	return f == FacetEmotion || f == FacetSituation
}

// labels returns the labels of p for this facet.
func (f Facet) labels(p *Prayer) []string {
	switch f {
	case FacetEmotion:
		return p.Emotions
	case FacetSituation:
		return p.Situations
	default:
		return nil
	}
}

// Selection is the pair of optional facet choices.
// An empty string means "no constraint" for that facet.
type Selection struct {
	Emotion   string
	Situation string
}

// IsEmpty reports whether neither facet is selected.
func (s Selection) IsEmpty() bool {
	return s.Emotion == "" && s.Situation == ""
}

// EmotionLabel returns the selected emotion or the "all emotions" placeholder.
func (s Selection) EmotionLabel() string {
	if s.Emotion == "" {
		return AllEmotionsLabel
	}

	return s.Emotion
}

// SituationLabel returns the selected situation or the "all situations" placeholder.
func (s Selection) SituationLabel() string {
	if s.Situation == "" {
		return AllSituationsLabel
	}

	return s.Situation
}

// Label is the badge text shown next to the featured prayer, e.g. "불안 · 아침".
func (s Selection) Label() string {
	return s.EmotionLabel() + " · " + s.SituationLabel()
}
