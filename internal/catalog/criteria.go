// Package catalog narrows and orders the marketplace listing set for display.
//
// Everything here is pure: Apply never performs I/O and never mutates its
// input, so it is safe to call from any number of goroutines.
package catalog

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

const (
	DefaultPriceCeiling = 100000
	DefaultMinLength    = 1
	DefaultMaxLength    = 20
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortLengthAsc SortKey = "length-asc"
)

var sortKeys = map[SortKey]struct{}{
	SortNewest:    {},
	SortPriceAsc:  {},
	SortPriceDesc: {},
	SortNameAsc:   {},
	SortNameDesc:  {},
	SortLengthAsc: {},
}

// ParseSortKey falls back to SortNewest for anything it does not recognise.
func ParseSortKey(s string) SortKey {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := sortKeys[k]; ok {
		return k
	}
	return SortNewest
}

// PriceRange is an inclusive USD price bound.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r PriceRange) Contains(p float64) bool {
	return p >= r.Min && p <= r.Max
}

// LengthRange is an inclusive bound on the number of characters in a label.
type LengthRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r LengthRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// SetFilter is either Unrestricted or RestrictedTo a non-empty set of values.
// The zero value is Unrestricted.
//
// An empty accepted set means "no restriction", never "reject all", so a
// visitor who deselects every option sees the whole catalog again. That is
// indistinguishable from never having chosen anything.
type SetFilter struct {
	restricted bool
	members    map[string]struct{}
}

func Unrestricted() SetFilter {
	return SetFilter{}
}

// RestrictedTo drops blank values and returns Unrestricted when none remain.
func RestrictedTo(values ...string) SetFilter {
	members := make(map[string]struct{}, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			members[v] = struct{}{}
		}
	}
	if len(members) == 0 {
		return Unrestricted()
	}
	return SetFilter{restricted: true, members: members}
}

// RestrictedToTLDs normalises each value to ".tld" form. Like RestrictedTo,
// an input with no usable values is Unrestricted.
func RestrictedToTLDs(values ...string) SetFilter {
	normalized := make([]string, 0, len(values))
	for _, v := range values {
		if n := entity.NormalizeTLD(v); n != "" {
			normalized = append(normalized, n)
		}
	}
	return RestrictedTo(normalized...)
}

func (f SetFilter) IsRestricted() bool {
	return f.restricted
}

func (f SetFilter) Allows(v string) bool {
	if !f.restricted {
		return true
	}
	_, ok := f.members[v]
	return ok
}

// Members returns the accepted values in sorted order, nil when unrestricted.
func (f SetFilter) Members() []string {
	if !f.restricted {
		return nil
	}
	out := make([]string, 0, len(f.members))
	for m := range f.members {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

func (f SetFilter) MarshalJSON() ([]byte, error) {
	if !f.restricted {
		return []byte("null"), nil
	}
	return json.Marshal(f.Members())
}

// Criteria is the visitor's current search, filter and sort selection.
// It is a value: the With* methods return modified copies.
type Criteria struct {
	Query      string      `json:"query"`
	TLDs       SetFilter   `json:"tlds"`
	Categories SetFilter   `json:"categories"`
	Price      PriceRange  `json:"price"`
	Length     LengthRange `json:"length"`
	Sort       SortKey     `json:"sort"`
}

// DefaultCriteria spans the full observed price range and seeds the query from search.
func DefaultCriteria(listings []entity.Listing, search string) Criteria {
	return Criteria{
		Query:      search,
		TLDs:       Unrestricted(),
		Categories: Unrestricted(),
		Price:      PriceRange{Min: 0, Max: maxPrice(listings)},
		Length:     LengthRange{Min: DefaultMinLength, Max: DefaultMaxLength},
		Sort:       SortNewest,
	}
}

func (c Criteria) WithQuery(q string) Criteria {
	c.Query = q
	return c
}

func (c Criteria) WithTLDs(f SetFilter) Criteria {
	c.TLDs = f
	return c
}

func (c Criteria) WithCategories(f SetFilter) Criteria {
	c.Categories = f
	return c
}

func (c Criteria) WithPrice(min, max float64) Criteria {
	c.Price = PriceRange{Min: min, Max: max}
	return c
}

func (c Criteria) WithLength(min, max int) Criteria {
	c.Length = LengthRange{Min: min, Max: max}
	return c
}

func (c Criteria) WithSort(k SortKey) Criteria {
	c.Sort = k
	return c
}
