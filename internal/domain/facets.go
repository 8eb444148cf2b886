package domain

import "slices"

// FacetSets holds the selectable labels of both facets.
type FacetSets struct {
	Emotions   []string
	Situations []string
}

// ExtractFacets returns the de-duplicated union of the facet's labels across
// prayers, in Korean collation order. Unknown facets yield an empty result.
func ExtractFacets(prayers []Prayer, facet Facet) []string {
	seen := make(map[string]struct{})
	labels := make([]string, 0)

	for i := range prayers {
		for _, label := range facet.labels(&prayers[i]) {
			if _, dup := seen[label]; dup {
				continue
			}

			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}

	slices.SortFunc(labels, CompareLocale)

	return labels
}
