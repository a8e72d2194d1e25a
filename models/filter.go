// ABOUTME: Product filter state and its canonical query encoding
// ABOUTME: Unset fields mean "no constraint" and are never sent as empty strings

package models

import (
	"net/url"
	"strconv"
)

// ProductFilter holds the shop page filter selections. Price bounds are
// pointers so the zero price is distinguishable from "no constraint".
type ProductFilter struct {
	Category string
	Search   string
	Ordering string
	MinPrice *float64
	MaxPrice *float64
}

// Values renders the filter into query parameters, emitting only set
// fields. An unset field contributes nothing, not an empty value.
func (f ProductFilter) Values() url.Values {
	params := url.Values{}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Ordering != "" {
		params.Set("ordering", f.Ordering)
	}
	if f.MinPrice != nil {
		params.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		params.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	return params
}

// CacheKey returns the canonical cache-key suffix for this filter.
// url.Values.Encode sorts by key, so two filters with the same effective
// values always produce the same key.
func (f ProductFilter) CacheKey() string {
	return f.Values().Encode()
}

// IsZero reports whether no filter field is set.
func (f ProductFilter) IsZero() bool {
	return f.Category == "" && f.Search == "" && f.Ordering == "" &&
		f.MinPrice == nil && f.MaxPrice == nil
}
