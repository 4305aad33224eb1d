package services

import (
	"context"
	"sync"
	"time"

	"primecasa-catalog/internal/models"
	"primecasa-catalog/internal/utils"
	"primecasa-catalog/internal/validators"
)

// Snapshot is the controller state handed to the presentation layer.
type Snapshot struct {
	Items      []models.PresentationProperty `json:"items"`
	TotalCount int64                         `json:"total_count"`
	TotalPages int                           `json:"total_pages"`
	Page       int                           `json:"page"`
	Criteria   models.FilterCriteria         `json:"criteria"`
	Sort       models.SortSpec               `json:"sort"`
	IsLoading  bool                          `json:"is_loading"`
	LastError  string                        `json:"last_error,omitempty"`
}

// CatalogController owns the live filter/sort/page state of the catalog
// view. Rapid state changes are debounced into a single fetch, and an
// in-flight fetch is superseded by any newer change: its result is discarded
// by generation comparison instead of overwriting newer state.
type CatalogController struct {
	svc       *CatalogService
	validator validators.CriteriaValidator
	debounce  time.Duration
	baseCtx   context.Context

	mu         sync.Mutex
	criteria   models.FilterCriteria
	sort       models.SortSpec
	page       int
	generation uint64
	timer      *time.Timer
	cancel     context.CancelFunc

	items      []models.PresentationProperty
	totalCount int64
	totalPages int
	loading    bool
	lastErr    error
}

func NewCatalogController(svc *CatalogService, validator validators.CriteriaValidator, debounce time.Duration) *CatalogController {
	return &CatalogController{
		svc:       svc,
		validator: validator,
		debounce:  debounce,
		baseCtx:   context.Background(),
		sort:      models.DefaultSort(),
		page:      1,
	}
}

// SetFilters normalizes and stores new filter criteria. An unchanged value
// is a no-op; a changed one resets the page to 1 and schedules a fetch.
func (cc *CatalogController) SetFilters(criteria models.FilterCriteria) {
	normalized := cc.validator.Normalize(criteria)

	cc.mu.Lock()
	defer cc.mu.Unlock()
	if normalized.Equal(cc.criteria) {
		return
	}
	cc.criteria = normalized
	cc.page = 1
	cc.scheduleLocked()
}

// SetSort stores a new sort selection, resetting the page to 1. Invalid
// specs fall back to the default sort.
func (cc *CatalogController) SetSort(sort models.SortSpec) {
	if !sort.Valid() {
		sort = models.DefaultSort()
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	if sort == cc.sort {
		return
	}
	cc.sort = sort
	cc.page = 1
	cc.scheduleLocked()
}

// SetPage moves to the requested page. Out-of-range requests are a no-op;
// until a count has been fetched only page 1 is addressable.
func (cc *CatalogController) SetPage(page int) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if page < 1 || page == cc.page {
		return
	}
	maxPage := cc.totalPages
	if maxPage < 1 {
		maxPage = 1
	}
	if page > maxPage {
		return
	}
	cc.page = page
	cc.scheduleLocked()
}

// Refresh re-fetches the current state immediately, bypassing the debounce.
// It blocks until the fetch completes or is superseded.
func (cc *CatalogController) Refresh() {
	cc.mu.Lock()
	cc.generation++
	cc.loading = true
	cc.lastErr = nil
	if cc.timer != nil {
		cc.timer.Stop()
	}
	cc.mu.Unlock()

	cc.fetchCurrent()
}

// Stop cancels any pending or in-flight fetch.
func (cc *CatalogController) Stop() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.timer != nil {
		cc.timer.Stop()
	}
	if cc.cancel != nil {
		cc.cancel()
		cc.cancel = nil
	}
}

// Snapshot returns a copy of the current view state.
func (cc *CatalogController) Snapshot() Snapshot {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	items := make([]models.PresentationProperty, len(cc.items))
	copy(items, cc.items)

	snap := Snapshot{
		Items:      items,
		TotalCount: cc.totalCount,
		TotalPages: cc.totalPages,
		Page:       cc.page,
		Criteria:   cc.criteria,
		Sort:       cc.sort,
		IsLoading:  cc.loading,
	}
	if cc.lastErr != nil {
		snap.LastError = cc.lastErr.Error()
	}
	return snap
}

// scheduleLocked enters the Fetching state: it supersedes any in-flight
// fetch, restarts the debounce timer, and bumps the generation so a stale
// result arriving later is discarded. Caller holds cc.mu.
func (cc *CatalogController) scheduleLocked() {
	cc.generation++
	cc.loading = true
	cc.lastErr = nil
	if cc.cancel != nil {
		cc.cancel()
		cc.cancel = nil
	}
	if cc.timer != nil {
		cc.timer.Stop()
	}
	cc.timer = time.AfterFunc(cc.debounce, cc.fetchCurrent)
}

// fetchCurrent runs one fetch cycle for the state captured at its start and
// commits the result only if no newer fetch has been scheduled since. When
// the reported total shrinks below the requested page, the rows belong to a
// page that no longer exists; the page is clamped and re-fetched instead of
// committing the mismatched rows.
func (cc *CatalogController) fetchCurrent() {
	cc.mu.Lock()
	gen := cc.generation
	criteria := cc.criteria
	sort := cc.sort
	page := cc.page
	if cc.cancel != nil {
		cc.cancel()
	}
	ctx, cancel := context.WithCancel(cc.baseCtx)
	cc.cancel = cancel
	cc.mu.Unlock()

	result, err := cc.svc.FetchPage(ctx, criteria, sort, page)

	cc.mu.Lock()
	if gen != cc.generation {
		// superseded by a newer change; discard
		cc.mu.Unlock()
		return
	}
	if err != nil {
		// previous page survives a failed fetch
		cc.loading = false
		cc.lastErr = err
		cc.mu.Unlock()
		return
	}
	cc.lastErr = nil
	cc.totalCount = result.TotalCount
	cc.totalPages = result.TotalPages
	if clamped := utils.ClampPage(page, result.TotalPages); clamped != page {
		cc.page = clamped
		cc.generation++
		cc.mu.Unlock()
		cc.fetchCurrent()
		return
	}
	cc.loading = false
	cc.items = result.Items
	cc.mu.Unlock()
}
