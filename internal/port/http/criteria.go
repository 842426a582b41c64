package http

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/catalog"
)

// ParseCriteria layers query parameters over defaults. A parameter that is
// absent keeps its default. tld and category accept repeated or
// comma-separated values; a present but blank list (the visitor cleared every
// option) means no restriction.
// Unparsable numbers keep their default bound.
func ParseCriteria(q url.Values, defaults catalog.Criteria) catalog.Criteria {
	c := defaults

	if _, ok := q["search"]; ok {
		c = c.WithQuery(q.Get("search"))
	}
	if tlds, ok := listParam(q, "tld"); ok {
		c = c.WithTLDs(catalog.RestrictedToTLDs(tlds...))
	}
	if cats, ok := listParam(q, "category"); ok {
		c = c.WithCategories(catalog.RestrictedTo(cats...))
	}

	minPrice := floatParam(q, "price_min", c.Price.Min)
	maxPrice := floatParam(q, "price_max", c.Price.Max)
	c = c.WithPrice(minPrice, maxPrice)

	minLen := intParam(q, "len_min", c.Length.Min)
	maxLen := intParam(q, "len_max", c.Length.Max)
	c = c.WithLength(minLen, maxLen)

	if _, ok := q["sort"]; ok {
		c = c.WithSort(catalog.ParseSortKey(q.Get("sort")))
	}
	return c
}

func listParam(q url.Values, key string) ([]string, bool) {
	raw, ok := q[key]
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out, true
}

func floatParam(q url.Values, key string, def float64) float64 {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) {
		return def
	}
	return f
}

func intParam(q url.Values, key string, def int) int {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
