package transformers

import (
	"context"

	"primecasa-catalog/internal/models"
	"primecasa-catalog/internal/resolvers"

	"golang.org/x/sync/errgroup"
)

type propertyTransformer struct {
	images    *resolvers.ImageResolver
	agents    *resolvers.AgentResolver
	addrTrans AddressTransformer
}

func NewPropertyTransformer(images *resolvers.ImageResolver, agents *resolvers.AgentResolver, addrTrans AddressTransformer) PropertyTransformer {
	return &propertyTransformer{
		images:    images,
		agents:    agents,
		addrTrans: addrTrans,
	}
}

// Transform builds the presentation model for one raw record. The image and
// agent lookups touch independent caches, so they run concurrently.
func (t *propertyTransformer) Transform(ctx context.Context, raw *models.Property) *models.PresentationProperty {
	var (
		images []string
		agent  *models.AgentProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		images = t.images.Resolve(gctx, raw.PropertyID, raw.Images)
		return nil
	})
	g.Go(func() error {
		agent = t.agents.Resolve(gctx, raw.AgentID)
		return nil
	})
	// resolvers absorb their own failures
	_ = g.Wait()

	return &models.PresentationProperty{
		ID:             raw.PropertyID,
		Title:          raw.Title,
		Description:    raw.Description,
		Price:          raw.Price,
		Address:        raw.Address,
		Location:       t.addrTrans.Location(raw.Address),
		City:           raw.City,
		PropertyType:   NormalizePropertyType(raw.PropertyType),
		ListingType:    raw.ListingType,
		Bedrooms:       IntOrZero(raw.Bedrooms),
		Bathrooms:      IntOrZero(raw.Bathrooms),
		Area:           FloatOrZero(raw.Area),
		Featured:       BoolOrFalse(raw.Featured),
		Published:      BoolOrFalse(raw.Published),
		Exclusive:      BoolOrFalse(raw.Exclusive),
		Images:         images,
		ImageURL:       images[0],
		Latitude:       raw.Latitude,
		Longitude:      raw.Longitude,
		VirtualTourURL: raw.VirtualTourURL,
		Agent:          agent,
		CreatedAt:      raw.CreatedAt,
	}
}

// NormalizePropertyType substitutes the default category for any value
// outside the known enumeration. Bad reference data must never make a tile
// fail to render.
func NormalizePropertyType(s string) string {
	if models.KnownPropertyType(s) {
		return s
	}
	return models.DefaultPropertyType
}

// IntOrZero maps an absent optional numeric to 0.
func IntOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// FloatOrZero maps an absent optional numeric to 0.
func FloatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// BoolOrFalse maps an absent optional flag to false.
func BoolOrFalse(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}
