// Package resolvers holds the memoized side-lookups the record mapper
// depends on: property photo sets and agent profiles. Both degrade to
// documented defaults instead of surfacing errors, so a bad reference never
// blocks a page of results.
package resolvers

import (
	"context"
	"net/url"

	"primecasa-catalog/pkg/cache"
	"primecasa-catalog/pkg/logger"
	"primecasa-catalog/pkg/metrics"
)

// ObjectLister is the storage-collaborator contract: list object URLs under
// a property's media folder.
type ObjectLister interface {
	ListFolder(ctx context.Context, prefix string) ([]string, error)
}

// PlaceholderImages returns the fixed fallback photo set used when a
// property has no resolvable images. Always 3 entries.
func PlaceholderImages() []string {
	return []string{
		"/static/placeholders/property-1.jpg",
		"/static/placeholders/property-2.jpg",
		"/static/placeholders/property-3.jpg",
	}
}

// ImageResolver resolves a property's ordered photo set, consulting the
// process-wide image cache before falling back to a storage listing.
type ImageResolver struct {
	cache  *cache.Store[[]string]
	lister ObjectLister
}

func NewImageResolver(store *cache.Store[[]string], lister ObjectLister) *ImageResolver {
	return &ImageResolver{cache: store, lister: lister}
}

// Resolve returns the ordered photo URLs for one property. recordImages is
// the image array carried by the raw record, if any; a non-empty all-valid
// array is authoritative and seeds the cache without a storage lookup.
//
// Placeholder fallbacks are cached provisionally: the next Resolve for the
// same id retries the storage listing instead of trusting them.
func (r *ImageResolver) Resolve(ctx context.Context, propertyID string, recordImages []string) []string {
	if imgs := validImageSet(recordImages); imgs != nil {
		r.cache.Set(propertyID, imgs)
		return imgs
	}

	if cached, ok, provisional := r.cache.Get(propertyID); ok && !provisional {
		metrics.CacheHitsTotal.WithLabelValues("images").Inc()
		return cloneURLs(cached)
	}
	metrics.CacheMissesTotal.WithLabelValues("images").Inc()

	urls, err := r.lister.ListFolder(ctx, propertyID)
	if err != nil {
		// single attempt, no retry; the failure surfaces only as placeholders
		logger.GlobalLogger.Debugf("image listing failed for property %s: %v", propertyID, err)
	}
	if err == nil && len(urls) > 0 {
		r.cache.Set(propertyID, urls)
		return cloneURLs(urls)
	}

	placeholders := PlaceholderImages()
	r.cache.SetProvisional(propertyID, placeholders)
	return placeholders
}

// Invalidate drops one property's cached photo set.
func (r *ImageResolver) Invalidate(propertyID string) {
	r.cache.Invalidate(propertyID)
}

// Clear drops the whole image cache.
func (r *ImageResolver) Clear() {
	r.cache.Clear()
}

// validImageSet returns a copy of imgs when it is non-empty and every entry
// is an absolute URL or rooted path; nil otherwise.
func validImageSet(imgs []string) []string {
	if len(imgs) == 0 {
		return nil
	}
	for _, img := range imgs {
		if !validImageURL(img) {
			return nil
		}
	}
	return cloneURLs(imgs)
}

func validImageURL(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '/' {
		return true
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func cloneURLs(urls []string) []string {
	out := make([]string, len(urls))
	copy(out, urls)
	return out
}
