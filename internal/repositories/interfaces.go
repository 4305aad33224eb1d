package repositories

import (
	"context"

	"primecasa-catalog/internal/models"
	"primecasa-catalog/internal/query"
)

// PropertyRepository is the tabular query surface over the properties
// collection. Count and FindPage are driven by the same predicate set so the
// reported total always matches what the row query could return.
type PropertyRepository interface {
	Count(ctx context.Context, plan query.Plan) (int64, error)
	FindPage(ctx context.Context, plan query.Plan) ([]models.Property, error)
	FindByID(ctx context.Context, id string) (*models.Property, error)
}

// AgentRepository supports point lookup of agent records by business id.
type AgentRepository interface {
	FindByID(ctx context.Context, id string) (*models.Agent, error)
}

// ListingCache caches materialized listing pages and tracks, per property,
// which page keys contain it so a property mutation can invalidate exactly
// those pages.
type ListingCache interface {
	GetPage(ctx context.Context, key string) (*models.PageResult, error)
	SetPage(ctx context.Context, key string, page *models.PageResult) error
	AddPageKeyToPropertySet(ctx context.Context, propertyID, pageKey string) error
	InvalidateProperty(ctx context.Context, propertyID string) error
	Clear(ctx context.Context) error
}
