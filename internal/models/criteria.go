package models

import "strings"

// FilterCriteria is the immutable set of user-chosen constraints for a
// catalog query. Empty strings and nil numerics mean "no constraint"; a new
// value replaces the whole object, so Equal decides whether a re-fetch is
// needed.
type FilterCriteria struct {
	ListingType  string   `json:"listing_type"`
	PropertyType string   `json:"property_type"`
	City         string   `json:"city"`
	MinPrice     *float64 `json:"min_price,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *int     `json:"bathrooms,omitempty"`
}

func (c FilterCriteria) Equal(o FilterCriteria) bool {
	return c.ListingType == o.ListingType &&
		c.PropertyType == o.PropertyType &&
		c.City == o.City &&
		floatPtrEqual(c.MinPrice, o.MinPrice) &&
		floatPtrEqual(c.MaxPrice, o.MaxPrice) &&
		intPtrEqual(c.Bedrooms, o.Bedrooms) &&
		intPtrEqual(c.Bathrooms, o.Bathrooms)
}

// IsZero reports whether no field constrains the result set.
func (c FilterCriteria) IsZero() bool {
	return c.Equal(FilterCriteria{})
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// SortColumn values are the only columns a row query may be ordered by.
// Never interpolated from raw request input.
type SortColumn string

const (
	SortByCreatedAt SortColumn = "created_at"
	SortByPrice     SortColumn = "price"
	SortByArea      SortColumn = "area"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type SortSpec struct {
	Column    SortColumn    `json:"column"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort orders newest listings first.
func DefaultSort() SortSpec {
	return SortSpec{Column: SortByCreatedAt, Direction: SortDesc}
}

func (s SortSpec) Valid() bool {
	switch s.Column {
	case SortByCreatedAt, SortByPrice, SortByArea:
	default:
		return false
	}
	return s.Direction == SortAsc || s.Direction == SortDesc
}

// ParseSortSpec understands the "price_desc" request form. Unknown values
// fall back to the default sort.
func ParseSortSpec(s string) SortSpec {
	idx := strings.LastIndex(s, "_")
	if idx <= 0 {
		return DefaultSort()
	}
	spec := SortSpec{
		Column:    SortColumn(s[:idx]),
		Direction: SortDirection(s[idx+1:]),
	}
	if !spec.Valid() {
		return DefaultSort()
	}
	return spec
}

func (s SortSpec) String() string {
	return string(s.Column) + "_" + string(s.Direction)
}
