package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen/maeumgido/internal/app"
	"github.com/jsamuelsen/maeumgido/internal/domain"
)

func renderFacets(w io.Writer, f domain.FacetSets) {
	fmt.Fprintf(w, "감정: %s\n", strings.Join(f.Emotions, ", "))
	fmt.Fprintf(w, "상황: %s\n", strings.Join(f.Situations, ", "))
}

// renderRecommendation prints the badge, the featured prayer in full and the
// whole result list, the way the recommendation page lays them out.
func renderRecommendation(w io.Writer, rec *domain.Recommendation) {
	fmt.Fprintf(w, "추천 기도문 [%s]\n\n", rec.Selection.Label())

	featured, ok := rec.Featured()
	if !ok {
		fmt.Fprintln(w, app.EmptyCatalogMessage)
		return
	}

	renderPrayer(w, &featured)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "함께 보는 추천 목록")

	for i := range rec.Items {
		fmt.Fprintf(w, "%d. %s%s\n", i+1, rec.Items[i].Title, tagSuffix(rec.Items[i].Tags))
	}
}

func renderPrayer(w io.Writer, p *domain.Prayer) {
	fmt.Fprintln(w, p.Title)
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.Body)

	if len(p.Tags) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, hashtags(p.Tags))
	}
}

func renderList(w io.Writer, prayers []domain.Prayer) {
	for i := range prayers {
		fmt.Fprintf(w, "%s\t%s\n", prayers[i].ID, prayers[i].Title)
	}
}

func hashtags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}

	return strings.Join(out, " ")
}

func tagSuffix(tags []string) string {
	if len(tags) == 0 {
		return ""
	}

	return "  " + hashtags(tags)
}
