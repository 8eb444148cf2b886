package domain

import "strings"

// Share text constants.
const (
	ShareHeader      = "[마음기도 추천]"
	ShareTitlePrefix = "마음기도 - "
)

// ComposeShareText builds the plain-text block shared or copied for a prayer:
//
//	[마음기도 추천]
//	감정: <emotion or 전체 감정>
//	상황: <situation or 전체 상황>
//
//	<title>
//	<body>
func ComposeShareText(title, body string, sel Selection) string {
	var b strings.Builder

	b.WriteString(ShareHeader)
	b.WriteString("\n감정: ")
	b.WriteString(sel.EmotionLabel())
	b.WriteString("\n상황: ")
	b.WriteString(sel.SituationLabel())
	b.WriteString("\n\n")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(body)

	return b.String()
}

// SharePayload is everything a share or copy strategy needs.
type SharePayload struct {
	// Title is the share sheet title, "마음기도 - <prayer title>".
	Title string

	// Text is the composed share text without the URL.
	Text string

	// URL links back to the recommendation page. May be empty.
	URL string
}

// NewSharePayload builds the payload for the featured prayer of a selection.
func NewSharePayload(featured *Prayer, sel Selection, url string) SharePayload {
	return SharePayload{
		Title: ShareTitlePrefix + featured.Title,
		Text:  ComposeShareText(featured.Title, featured.Body, sel),
		URL:   url,
	}
}

// CopyText is the clipboard form: the share text, a blank line, then the URL.
func (p SharePayload) CopyText() string {
	if p.URL == "" {
		return p.Text
	}

	return p.Text + "\n\n" + p.URL
}
