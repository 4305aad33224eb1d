package services

import (
	"context"
	"fmt"

	"primecasa-catalog/internal/models"
	"primecasa-catalog/internal/query"
	"primecasa-catalog/internal/repositories"
	"primecasa-catalog/internal/transformers"
	"primecasa-catalog/internal/utils"
	"primecasa-catalog/pkg/cache"
	"primecasa-catalog/pkg/logger"
	"primecasa-catalog/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

// mapConcurrency bounds the parallel per-row mapping stage.
const mapConcurrency = 8

// CatalogService runs one fetch cycle: count query, ranged row query, then
// concurrent per-row mapping with input order preserved.
type CatalogService struct {
	repo      repositories.PropertyRepository
	listCache repositories.ListingCache
	trans     transformers.PropertyTransformer
	pageSize  int
}

// NewCatalogService builds the fetch pipeline. listCache may be nil, in
// which case page-level response caching is skipped.
func NewCatalogService(
	repo repositories.PropertyRepository,
	listCache repositories.ListingCache,
	trans transformers.PropertyTransformer,
	pageSize int,
) *CatalogService {
	if pageSize <= 0 {
		pageSize = 9
	}
	return &CatalogService{
		repo:      repo,
		listCache: listCache,
		trans:     trans,
		pageSize:  pageSize,
	}
}

func (s *CatalogService) PageSize() int {
	return s.pageSize
}

// FetchPage materializes one catalog page. The count query and the row query
// share the same predicate set, so the reported total is always consistent
// with what paging over all pages would return.
func (s *CatalogService) FetchPage(ctx context.Context, criteria models.FilterCriteria, sort models.SortSpec, page int) (*models.PageResult, error) {
	if page < 1 {
		page = 1
	}

	pageKey := cache.ListingPageKey(criteria, sort, page)
	if s.listCache != nil {
		if cached, err := s.listCache.GetPage(ctx, pageKey); err == nil && cached != nil {
			metrics.CacheHitsTotal.WithLabelValues("listing").Inc()
			return cached, nil
		}
		metrics.CacheMissesTotal.WithLabelValues("listing").Inc()
	}

	plan := query.Build(criteria, sort, page, s.pageSize)

	total, err := s.repo.Count(ctx, plan)
	if err != nil {
		logger.GlobalLogger.Errorf("count query failed: criteria=%+v, error=%v", criteria, err)
		return nil, fmt.Errorf("count query failed: %w", err)
	}

	rows, err := s.repo.FindPage(ctx, plan)
	if err != nil {
		logger.GlobalLogger.Errorf("row query failed: criteria=%+v, page=%d, error=%v", criteria, page, err)
		return nil, fmt.Errorf("row query failed: %w", err)
	}

	items, err := s.mapRows(ctx, rows)
	if err != nil {
		return nil, err
	}

	result := &models.PageResult{
		Items:      items,
		TotalCount: total,
		TotalPages: utils.TotalPages(total, s.pageSize),
		Page:       page,
		PageSize:   s.pageSize,
	}

	if s.listCache != nil {
		if err := s.listCache.SetPage(ctx, pageKey, result); err != nil {
			logger.GlobalLogger.Debugf("listing page cache write failed: %v", err)
		} else {
			for _, item := range result.Items {
				_ = s.listCache.AddPageKeyToPropertySet(ctx, item.ID, pageKey)
			}
		}
	}

	return result, nil
}

// mapRows runs the mapping stage concurrently while keeping results in row
// order. Mapping itself never fails; only context cancellation aborts it.
func (s *CatalogService) mapRows(ctx context.Context, rows []models.Property) ([]models.PresentationProperty, error) {
	items := make([]models.PresentationProperty, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(mapConcurrency)
	for i := range rows {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i] = *s.trans.Transform(gctx, &rows[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchByID returns one mapped property, or nil when the record does not
// exist.
func (s *CatalogService) FetchByID(ctx context.Context, id string) (*models.PresentationProperty, error) {
	raw, err := s.repo.FindByID(ctx, id)
	if err != nil {
		logger.GlobalLogger.Errorf("point lookup failed: id=%s, error=%v", id, err)
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return s.trans.Transform(ctx, raw), nil
}

// FetchFeatured returns the first page of featured listings, newest first.
func (s *CatalogService) FetchFeatured(ctx context.Context) (*models.PageResult, error) {
	plan := query.Plan{
		Predicates: []query.Predicate{
			{Field: "featured", Op: query.OpEq, Value: true},
		},
		Order:  query.OrderClause{Field: string(models.SortByCreatedAt), Descending: true},
		Offset: 0,
		Limit:  s.pageSize,
	}

	total, err := s.repo.Count(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("count query failed: %w", err)
	}
	rows, err := s.repo.FindPage(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("row query failed: %w", err)
	}
	items, err := s.mapRows(ctx, rows)
	if err != nil {
		return nil, err
	}

	return &models.PageResult{
		Items:      items,
		TotalCount: total,
		TotalPages: utils.TotalPages(total, s.pageSize),
		Page:       1,
		PageSize:   s.pageSize,
	}, nil
}
