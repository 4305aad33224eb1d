package transformers

import (
	"context"

	"primecasa-catalog/internal/models"
)

// PropertyTransformer converts one raw persisted record into its
// presentation model, resolving images and agent along the way. It never
// fails: every irregularity degrades to a documented default so property
// tiles always render.
type PropertyTransformer interface {
	Transform(ctx context.Context, raw *models.Property) *models.PresentationProperty
}

// AddressTransformer derives display fields from a free-form address.
type AddressTransformer interface {
	Location(address string) string
}
