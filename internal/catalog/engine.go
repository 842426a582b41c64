package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Apply returns a new slice holding the listings that satisfy every predicate
// of c, ordered by c.Sort. The input slice is left untouched.
func Apply(listings []entity.Listing, c Criteria) []entity.Listing {
	out := make([]entity.Listing, 0, len(listings))
	query := normalizeQuery(c.Query)
	for _, l := range listings {
		if matches(l, query, c) {
			out = append(out, l)
		}
	}
	sortListings(out, c.Sort)
	return out
}

func matches(l entity.Listing, query string, c Criteria) bool {
	return matchesQuery(l, query) &&
		matchesTLD(l, c.TLDs) &&
		matchesCategory(l, c.Categories) &&
		matchesPrice(l, c.Price) &&
		matchesLength(l, c.Length)
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func matchesQuery(l entity.Listing, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Name), query) ||
		strings.Contains(strings.ToLower(l.Description), query) ||
		strings.Contains(strings.ToLower(l.Category), query)
}

func matchesTLD(l entity.Listing, f SetFilter) bool {
	if !f.IsRestricted() {
		return true
	}
	return f.Allows(listingTLD(l))
}

// listingTLD falls back to the name's suffix when the stored TLD is blank.
func listingTLD(l entity.Listing) string {
	tld := l.TLD
	if tld == "" {
		tld = entity.TLDOf(l.Name)
	}
	return entity.NormalizeTLD(tld)
}

func matchesCategory(l entity.Listing, f SetFilter) bool {
	return f.Allows(l.Category)
}

func matchesPrice(l entity.Listing, r PriceRange) bool {
	return r.Contains(entity.SanitizePrice(l.Price))
}

// matchesLength measures the label only ("abc" for "abc.co.uk").
func matchesLength(l entity.Listing, r LengthRange) bool {
	return r.Contains(utf8.RuneCountInString(l.Label()))
}

func sortListings(ls []entity.Listing, key SortKey) {
	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(ls, func(a, b entity.Listing) int {
			return cmp.Compare(entity.SanitizePrice(a.Price), entity.SanitizePrice(b.Price))
		})
	case SortPriceDesc:
		slices.SortStableFunc(ls, func(a, b entity.Listing) int {
			return cmp.Compare(entity.SanitizePrice(b.Price), entity.SanitizePrice(a.Price))
		})
	case SortNameAsc, SortNameDesc:
		// collate.Collator keeps scratch buffers and is not safe for concurrent use.
		col := collate.New(language.English)
		desc := key == SortNameDesc
		slices.SortStableFunc(ls, func(a, b entity.Listing) int {
			if desc {
				return col.CompareString(b.Name, a.Name)
			}
			return col.CompareString(a.Name, b.Name)
		})
	case SortLengthAsc:
		// Unlike the length filter, this orders by the full name including the TLD.
		slices.SortStableFunc(ls, func(a, b entity.Listing) int {
			return cmp.Compare(utf8.RuneCountInString(a.Name), utf8.RuneCountInString(b.Name))
		})
	default:
		slices.SortStableFunc(ls, func(a, b entity.Listing) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
}

// Facets are the filter options offered for a loaded listing set.
type Facets struct {
	TLDs       []string `json:"tlds"`
	Categories []string `json:"categories"`
	MaxPrice   float64  `json:"max_price"`
}

// BuildFacets collects unique non-blank TLDs and categories in first-seen order.
// TLDs are reported in the same normalised form the TLD filter compares.
func BuildFacets(listings []entity.Listing) Facets {
	f := Facets{
		TLDs:       make([]string, 0),
		Categories: make([]string, 0),
		MaxPrice:   maxPrice(listings),
	}
	seenTLD := make(map[string]struct{})
	seenCat := make(map[string]struct{})
	for _, l := range listings {
		if tld := listingTLD(l); tld != "" {
			if _, ok := seenTLD[tld]; !ok {
				seenTLD[tld] = struct{}{}
				f.TLDs = append(f.TLDs, tld)
			}
		}
		if l.Category != "" {
			if _, ok := seenCat[l.Category]; !ok {
				seenCat[l.Category] = struct{}{}
				f.Categories = append(f.Categories, l.Category)
			}
		}
	}
	return f
}

// maxPrice never drops below DefaultPriceCeiling.
func maxPrice(listings []entity.Listing) float64 {
	m := float64(DefaultPriceCeiling)
	for _, l := range listings {
		if p := entity.SanitizePrice(l.Price); p > m {
			m = p
		}
	}
	return m
}

func Summary(n int) string {
	return fmt.Sprintf("Found %d premium assets matching your criteria", n)
}
