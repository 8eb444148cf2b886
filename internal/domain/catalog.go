package domain

import (
	"slices"
	"strings"
)

// Catalog is the fixed, ordered collection of prayers.
// It is built once at startup and never mutated, so it is safe for concurrent use.
type Catalog struct {
	prayers []Prayer
	byID    map[string]int
	facets  FacetSets
}

// NewCatalog validates the catalog invariants and takes a private copy of prayers.
// Every record needs a non-blank id, unique across the catalog, and at least
// one emotion and one situation.
func NewCatalog(prayers []Prayer) (*Catalog, error) {
	c := &Catalog{
		prayers: make([]Prayer, len(prayers)),
		byID:    make(map[string]int, len(prayers)),
	}

	for i := range prayers {
		p := &prayers[i]

		if strings.TrimSpace(p.ID) == "" {
			return nil, NewCatalogError(i, "", "id is required")
		}

		if _, dup := c.byID[p.ID]; dup {
			return nil, NewCatalogError(i, p.ID, "duplicate id")
		}

		if len(p.Emotions) == 0 {
			return nil, NewCatalogError(i, p.ID, "emotions must not be empty")
		}

		if len(p.Situations) == 0 {
			return nil, NewCatalogError(i, p.ID, "situations must not be empty")
		}

		c.byID[p.ID] = i
		c.prayers[i] = p.clone()
	}

	c.facets = FacetSets{
		Emotions:   ExtractFacets(c.prayers, FacetEmotion),
		Situations: ExtractFacets(c.prayers, FacetSituation),
	}

	return c, nil
}

// Len returns the number of prayers.
func (c *Catalog) Len() int {
	return len(c.prayers)
}

// All returns a copy of every prayer in catalog order.
func (c *Catalog) All() []Prayer {
	out := make([]Prayer, len(c.prayers))
	for i := range c.prayers {
		out[i] = c.prayers[i].clone()
	}

	return out
}

// Get returns the prayer with the given id.
func (c *Catalog) Get(id string) (Prayer, error) {
	i, ok := c.byID[id]
	if !ok {
		return Prayer{}, NewNotFoundError("prayer", id)
	}

	return c.prayers[i].clone(), nil
}

// Facets returns the cached facet labels.
func (c *Catalog) Facets() FacetSets {
	return FacetSets{
		Emotions:   slices.Clone(c.facets.Emotions),
		Situations: slices.Clone(c.facets.Situations),
	}
}

// Labels returns the cached labels of one facet.
func (c *Catalog) Labels(f Facet) []string {
	switch f {
	case FacetEmotion:
		return slices.Clone(c.facets.Emotions)
	case FacetSituation:
		return slices.Clone(c.facets.Situations)
	default:
		return []string{}
	}
}

// Recommend ranks the catalog for sel.
func (c *Catalog) Recommend(sel Selection) Recommendation {
	return Recommend(c.prayers, sel)
}

// SortedByTitle returns every prayer ordered by title collation.
func (c *Catalog) SortedByTitle() []Prayer {
	out := c.All()
	slices.SortStableFunc(out, func(a, b Prayer) int {
		return CompareLocale(a.Title, b.Title)
	})

	return out
}
