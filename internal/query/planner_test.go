package query

import (
	"testing"

	"primecasa-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestBuildPredicates_EmptyCriteria(t *testing.T) {
	preds := BuildPredicates(models.FilterCriteria{})
	assert.Empty(t, preds, "no-constraint criteria must emit no predicates")
}

func TestBuildPredicates_AllFields(t *testing.T) {
	criteria := models.FilterCriteria{
		ListingType:  "sale",
		PropertyType: "apartment",
		City:         "Sofia",
		MinPrice:     floatPtr(100000),
		MaxPrice:     floatPtr(200000),
		Bedrooms:     intPtr(2),
		Bathrooms:    intPtr(1),
	}

	preds := BuildPredicates(criteria)
	require.Len(t, preds, 7)

	assert.Contains(t, preds, Predicate{Field: "listing_type", Op: OpEq, Value: "sale"})
	assert.Contains(t, preds, Predicate{Field: "property_type", Op: OpEq, Value: "apartment"})
	assert.Contains(t, preds, Predicate{Field: "city", Op: OpEq, Value: "Sofia"})
	assert.Contains(t, preds, Predicate{Field: "price", Op: OpGte, Value: 100000.0})
	assert.Contains(t, preds, Predicate{Field: "price", Op: OpLte, Value: 200000.0})
	assert.Contains(t, preds, Predicate{Field: "bedrooms", Op: OpGte, Value: 2})
	assert.Contains(t, preds, Predicate{Field: "bathrooms", Op: OpGte, Value: 1})
}

func TestBuildPredicates_PartialCriteria(t *testing.T) {
	criteria := models.FilterCriteria{
		City:     "Varna",
		MinPrice: floatPtr(50000),
	}

	preds := BuildPredicates(criteria)
	require.Len(t, preds, 2)
	assert.Contains(t, preds, Predicate{Field: "city", Op: OpEq, Value: "Varna"})
	assert.Contains(t, preds, Predicate{Field: "price", Op: OpGte, Value: 50000.0})
}

func TestBuildPredicates_InvertedPriceRangeStillEmitsBoth(t *testing.T) {
	// min > max yields an unsatisfiable predicate pair, so the store
	// returns an empty result set
	criteria := models.FilterCriteria{
		MinPrice: floatPtr(300000),
		MaxPrice: floatPtr(100000),
	}

	preds := BuildPredicates(criteria)
	require.Len(t, preds, 2)
	assert.Contains(t, preds, Predicate{Field: "price", Op: OpGte, Value: 300000.0})
	assert.Contains(t, preds, Predicate{Field: "price", Op: OpLte, Value: 100000.0})
}

func TestBuild_OffsetAndLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantOffset int
	}{
		{"first page", 1, 9, 0},
		{"second page", 2, 9, 9},
		{"fifth page", 5, 9, 36},
		{"page below one clamps to first", 0, 9, 0},
		{"negative page clamps to first", -3, 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Build(models.FilterCriteria{}, models.DefaultSort(), tt.page, tt.pageSize)
			assert.Equal(t, tt.wantOffset, plan.Offset)
			assert.Equal(t, tt.pageSize, plan.Limit)
		})
	}
}

func TestBuild_OrderClause(t *testing.T) {
	plan := Build(models.FilterCriteria{}, models.SortSpec{Column: models.SortByPrice, Direction: models.SortAsc}, 1, 9)
	assert.Equal(t, OrderClause{Field: "price", Descending: false}, plan.Order)

	plan = Build(models.FilterCriteria{}, models.SortSpec{Column: models.SortByArea, Direction: models.SortDesc}, 1, 9)
	assert.Equal(t, OrderClause{Field: "area", Descending: true}, plan.Order)
}

func TestBuild_InvalidSortFallsBackToDefault(t *testing.T) {
	plan := Build(models.FilterCriteria{}, models.SortSpec{Column: "owner_ssn", Direction: "asc"}, 1, 9)
	assert.Equal(t, OrderClause{Field: "created_at", Descending: true}, plan.Order)
}
