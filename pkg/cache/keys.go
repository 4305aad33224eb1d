package cache

import (
	"fmt"

	"primecasa-catalog/internal/models"
)

// cache key for one materialized listing page.
func ListingPageKey(criteria models.FilterCriteria, sort models.SortSpec, page int) string {
	return fmt.Sprintf("listing:page:%s:%s:%d", criteriaKey(criteria), sort.String(), page)
}

// stable key fragment for a filter-criteria value. Nil numerics render as
// "-" so that "no constraint" never collides with a real zero.
func criteriaKey(c models.FilterCriteria) string {
	return fmt.Sprintf("lt=%s:pt=%s:city=%s:minp=%s:maxp=%s:bed=%s:bath=%s",
		c.ListingType, c.PropertyType, c.City,
		floatKey(c.MinPrice), floatKey(c.MaxPrice),
		intKey(c.Bedrooms), intKey(c.Bathrooms))
}

func floatKey(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

func intKey(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

// cache key for the set of listing-page keys that contain a property.
func PropertyKeysSetKey(propertyID string) string {
	return fmt.Sprintf("property:keys:%s", propertyID)
}
