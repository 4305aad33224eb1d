package resolvers

import (
	"context"
	"errors"
	"testing"

	"primecasa-catalog/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	urls  []string
	err   error
	calls int
}

func (f *fakeLister) ListFolder(ctx context.Context, prefix string) ([]string, error) {
	f.calls++
	return f.urls, f.err
}

func TestResolve_RecordImagesWinAndSeedCache(t *testing.T) {
	lister := &fakeLister{urls: []string{"https://cdn.example.com/other.jpg"}}
	r := NewImageResolver(cache.NewStore[[]string](), lister)

	record := []string{"https://cdn.example.com/a.jpg", "/media/b.jpg"}
	got := r.Resolve(context.Background(), "prop-1", record)

	assert.Equal(t, record, got)
	assert.Zero(t, lister.calls)

	// later call without record images serves the seeded set
	got = r.Resolve(context.Background(), "prop-1", nil)
	assert.Equal(t, record, got)
	assert.Zero(t, lister.calls)
}

func TestResolve_InvalidRecordImagesIgnored(t *testing.T) {
	lister := &fakeLister{urls: []string{"https://cdn.example.com/1.jpg"}}
	r := NewImageResolver(cache.NewStore[[]string](), lister)

	got := r.Resolve(context.Background(), "prop-2", []string{"https://cdn.example.com/a.jpg", "not a url"})

	assert.Equal(t, []string{"https://cdn.example.com/1.jpg"}, got)
	assert.Equal(t, 1, lister.calls)
}

func TestResolve_StorageListingCached(t *testing.T) {
	lister := &fakeLister{urls: []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"}}
	r := NewImageResolver(cache.NewStore[[]string](), lister)

	first := r.Resolve(context.Background(), "prop-3", nil)
	second := r.Resolve(context.Background(), "prop-3", nil)

	assert.Equal(t, lister.urls, first)
	assert.Equal(t, lister.urls, second)
	assert.Equal(t, 1, lister.calls)
}

func TestResolve_SelfHealingAfterFailure(t *testing.T) {
	lister := &fakeLister{err: errors.New("storage down")}
	r := NewImageResolver(cache.NewStore[[]string](), lister)

	got := r.Resolve(context.Background(), "prop-4", nil)
	require.Equal(t, PlaceholderImages(), got)
	assert.Equal(t, 1, lister.calls)

	// placeholders are provisional: the next access retries storage
	lister.err = nil
	lister.urls = []string{"https://cdn.example.com/healed.jpg"}

	got = r.Resolve(context.Background(), "prop-4", nil)
	assert.Equal(t, lister.urls, got)
	assert.Equal(t, 2, lister.calls)

	// the healed set is cached for good
	got = r.Resolve(context.Background(), "prop-4", nil)
	assert.Equal(t, lister.urls, got)
	assert.Equal(t, 2, lister.calls)
}

func TestResolve_EmptyListingFallsBackToPlaceholders(t *testing.T) {
	lister := &fakeLister{}
	r := NewImageResolver(cache.NewStore[[]string](), lister)

	got := r.Resolve(context.Background(), "prop-5", nil)
	assert.Equal(t, PlaceholderImages(), got)
}

func TestInvalidate_ForcesFreshListing(t *testing.T) {
	lister := &fakeLister{urls: []string{"https://cdn.example.com/old.jpg"}}
	r := NewImageResolver(cache.NewStore[[]string](), lister)

	r.Resolve(context.Background(), "prop-6", nil)
	require.Equal(t, 1, lister.calls)

	r.Invalidate("prop-6")
	lister.urls = []string{"https://cdn.example.com/new.jpg"}

	got := r.Resolve(context.Background(), "prop-6", nil)
	assert.Equal(t, []string{"https://cdn.example.com/new.jpg"}, got)
	assert.Equal(t, 2, lister.calls)
}

func TestResolve_ReturnsCopies(t *testing.T) {
	lister := &fakeLister{urls: []string{"https://cdn.example.com/1.jpg"}}
	r := NewImageResolver(cache.NewStore[[]string](), lister)

	first := r.Resolve(context.Background(), "prop-7", nil)
	first[0] = "mutated"

	second := r.Resolve(context.Background(), "prop-7", nil)
	assert.Equal(t, "https://cdn.example.com/1.jpg", second[0])
}

func TestPlaceholderImages_FixedSet(t *testing.T) {
	imgs := PlaceholderImages()
	require.Len(t, imgs, 3)
	for _, img := range imgs {
		assert.True(t, validImageURL(img))
	}
}
