// Package query translates filter criteria, a sort selection, and a page
// number into a bounded plan against the persistence layer. The plan is
// collaborator-neutral; repositories translate it to their own query form.
package query

import (
	"primecasa-catalog/internal/models"
)

type Operator string

const (
	OpEq  Operator = "eq"
	OpGte Operator = "gte"
	OpLte Operator = "lte"
)

// Predicate is one comparison condition on a persisted column.
type Predicate struct {
	Field string
	Op    Operator
	Value interface{}
}

type OrderClause struct {
	Field      string
	Descending bool
}

// Plan is one bounded, ordered page selection. The count query and the row
// query must both be driven by the same Predicates so the reported total is
// always consistent with what the row query could return.
type Plan struct {
	Predicates []Predicate
	Order      OrderClause
	Offset     int
	Limit      int
}

// Build produces the plan for one catalog page. A filter field contributes a
// predicate only when it is non-empty/non-nil; "no constraint" fields emit
// nothing, so an all-empty criteria yields an unfiltered query.
func Build(criteria models.FilterCriteria, sort models.SortSpec, page, pageSize int) Plan {
	if page < 1 {
		page = 1
	}
	if !sort.Valid() {
		sort = models.DefaultSort()
	}

	return Plan{
		Predicates: BuildPredicates(criteria),
		Order: OrderClause{
			Field:      string(sort.Column),
			Descending: sort.Direction == models.SortDesc,
		},
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	}
}

// BuildPredicates maps filter criteria to predicates: equality for the
// categorical fields, gte/lte for the numeric range fields.
func BuildPredicates(criteria models.FilterCriteria) []Predicate {
	var preds []Predicate

	if criteria.ListingType != "" {
		preds = append(preds, Predicate{Field: "listing_type", Op: OpEq, Value: criteria.ListingType})
	}
	if criteria.PropertyType != "" {
		preds = append(preds, Predicate{Field: "property_type", Op: OpEq, Value: criteria.PropertyType})
	}
	if criteria.City != "" {
		preds = append(preds, Predicate{Field: "city", Op: OpEq, Value: criteria.City})
	}
	if criteria.MinPrice != nil {
		preds = append(preds, Predicate{Field: "price", Op: OpGte, Value: *criteria.MinPrice})
	}
	if criteria.MaxPrice != nil {
		preds = append(preds, Predicate{Field: "price", Op: OpLte, Value: *criteria.MaxPrice})
	}
	if criteria.Bedrooms != nil {
		preds = append(preds, Predicate{Field: "bedrooms", Op: OpGte, Value: *criteria.Bedrooms})
	}
	if criteria.Bathrooms != nil {
		preds = append(preds, Predicate{Field: "bathrooms", Op: OpGte, Value: *criteria.Bathrooms})
	}

	return preds
}
