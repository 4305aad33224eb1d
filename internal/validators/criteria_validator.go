package validators

import (
	"primecasa-catalog/internal/models"
)

type criteriaValidator struct{}

func NewCriteriaValidator() CriteriaValidator {
	return &criteriaValidator{}
}

// Normalize returns a copy of the criteria with every invalid field coerced
// to "no constraint": unknown listing/property types and cities become
// empty, negative numerics become nil.
func (v *criteriaValidator) Normalize(criteria models.FilterCriteria) models.FilterCriteria {
	out := criteria

	if out.ListingType != "" && !models.KnownListingType(out.ListingType) {
		out.ListingType = ""
	}
	if out.PropertyType != "" && !models.KnownPropertyType(out.PropertyType) {
		out.PropertyType = ""
	}
	if out.City != "" && !models.KnownCity(out.City) {
		out.City = ""
	}
	if out.MinPrice != nil && *out.MinPrice < 0 {
		out.MinPrice = nil
	}
	if out.MaxPrice != nil && *out.MaxPrice < 0 {
		out.MaxPrice = nil
	}
	if out.Bedrooms != nil && *out.Bedrooms < 0 {
		out.Bedrooms = nil
	}
	if out.Bathrooms != nil && *out.Bathrooms < 0 {
		out.Bathrooms = nil
	}

	return out
}
