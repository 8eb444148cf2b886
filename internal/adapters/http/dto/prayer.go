package dto

import (
	"errors"

	"github.com/jsamuelsen/maeumgido/internal/domain"
)

// SelectionQuery is the emotion/situation pair from the query string.
// Empty values mean "all".
type SelectionQuery struct {
	Emotion   string `form:"emotion"   validate:"omitempty,max=64"`
	Situation string `form:"situation" validate:"omitempty,max=64"`
}

// Selection converts the query to the domain selection.
func (q *SelectionQuery) Selection() domain.Selection {
	return domain.Selection{Emotion: q.Emotion, Situation: q.Situation}
}

// PrayerListQuery is the query for the paginated catalog listing.
type PrayerListQuery struct {
	PaginationRequest
}

// Validate rejects cursors that do not decode or were not issued by this listing.
func (q *PrayerListQuery) Validate() error {
	cursor, err := q.DecodeCursor()
	if errors.Is(err, ErrNoCursor) {
		return nil
	}

	if err != nil {
		return err
	}

	if cursor.Field != CursorFieldTitle || cursor.ID == "" {
		return ErrInvalidCursor
	}

	return nil
}

// After returns the id the page starts after, or "" for the first page.
func (q *PrayerListQuery) After() string {
	cursor, err := q.DecodeCursor()
	if err != nil {
		return ""
	}

	return cursor.ID
}

// CursorFieldTitle marks cursors over the title-ordered listing.
const CursorFieldTitle = "title"

// PrayerResponse is one prayer.
type PrayerResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Tags       []string `json:"tags"`
	Emotions   []string `json:"emotions"`
	Situations []string `json:"situations"`
}

// NewPrayerResponse converts a domain prayer.
func NewPrayerResponse(p *domain.Prayer) PrayerResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return PrayerResponse{
		ID:         p.ID,
		Title:      p.Title,
		Body:       p.Body,
		Tags:       tags,
		Emotions:   p.Emotions,
		Situations: p.Situations,
	}
}

// PrayerCursor builds the listing cursor positioned after p.
func PrayerCursor(p PrayerResponse) *CursorData {
	return NewCursor(CursorFieldTitle, p.Title, p.ID)
}

// FacetsResponse lists the selectable labels.
type FacetsResponse struct {
	Emotions   []string `json:"emotions"`
	Situations []string `json:"situations"`
}

// SelectionResponse echoes the selection with display labels.
type SelectionResponse struct {
	Emotion   string `json:"emotion"`
	Situation string `json:"situation"`

	// Label is the badge text, e.g. "불안 · 전체 상황".
	Label string `json:"label"`
}

// NewSelectionResponse converts a domain selection.
func NewSelectionResponse(sel domain.Selection) SelectionResponse {
	return SelectionResponse{
		Emotion:   sel.Emotion,
		Situation: sel.Situation,
		Label:     sel.Label(),
	}
}

// RecommendationResponse is the ranked result for a selection.
type RecommendationResponse struct {
	Selection SelectionResponse `json:"selection"`
	Featured  *PrayerResponse   `json:"featured"`
	Items     []PrayerResponse  `json:"items"`
	Fallback  bool              `json:"fallback"`

	// Message is set when there is nothing to show.
	Message string `json:"message,omitempty"`
}

// NewRecommendationResponse converts a domain recommendation.
func NewRecommendationResponse(rec *domain.Recommendation, emptyMessage string) RecommendationResponse {
	resp := RecommendationResponse{
		Selection: NewSelectionResponse(rec.Selection),
		Items:     make([]PrayerResponse, 0, len(rec.Items)),
		Fallback:  rec.Fallback,
	}

	for i := range rec.Items {
		resp.Items = append(resp.Items, NewPrayerResponse(&rec.Items[i]))
	}

	if len(resp.Items) > 0 {
		featured := resp.Items[0]
		resp.Featured = &featured
	} else {
		resp.Message = emptyMessage
	}

	return resp
}

// ShareResponse is the share payload for clients that run the share sheet themselves.
type ShareResponse struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	URL      string `json:"url,omitempty"`
	CopyText string `json:"copyText"`
}

// NewShareResponse converts a share payload.
func NewShareResponse(p domain.SharePayload) ShareResponse {
	return ShareResponse{
		Title:    p.Title,
		Text:     p.Text,
		URL:      p.URL,
		CopyText: p.CopyText(),
	}
}
