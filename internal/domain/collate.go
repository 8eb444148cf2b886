package domain

import (
	"cmp"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Locale is the single supported locale for label and title ordering.
var Locale = language.Korean

// A collate.Collator keeps internal buffers and is not safe for concurrent use.
var collators = sync.Pool{
	New: func() any {
		return collate.New(Locale)
	},
}

// CompareLocale orders two strings by Korean collation.
// Strings that collate equal are ordered by their bytes so the result is total.
func CompareLocale(a, b string) int {
	c, _ := collators.Get().(*collate.Collator)
	defer collators.Put(c)

	if r := c.CompareString(a, b); r != 0 {
		return r
	}

	return cmp.Compare(a, b)
}
