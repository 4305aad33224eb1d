package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"primecasa-catalog/internal/middleware"
	"primecasa-catalog/internal/models"
	"primecasa-catalog/internal/query"
	"primecasa-catalog/internal/resolvers"
	"primecasa-catalog/internal/services"
	"primecasa-catalog/internal/transformers"
	"primecasa-catalog/internal/validators"
	"primecasa-catalog/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePropertyRepo struct {
	rows []models.Property
	err  error
}

func (r *fakePropertyRepo) Count(ctx context.Context, plan query.Plan) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.matching(plan))), nil
}

func (r *fakePropertyRepo) FindPage(ctx context.Context, plan query.Plan) ([]models.Property, error) {
	if r.err != nil {
		return nil, r.err
	}
	rows := r.matching(plan)
	sort.SliceStable(rows, func(i, j int) bool {
		var less bool
		if plan.Order.Field == "price" {
			less = rows[i].Price < rows[j].Price
		} else {
			less = rows[i].CreatedAt.Before(rows[j].CreatedAt)
		}
		if plan.Order.Descending {
			return !less
		}
		return less
	})
	if plan.Offset >= len(rows) {
		return nil, nil
	}
	rows = rows[plan.Offset:]
	if plan.Limit > 0 && plan.Limit < len(rows) {
		rows = rows[:plan.Limit]
	}
	return rows, nil
}

func (r *fakePropertyRepo) FindByID(ctx context.Context, id string) (*models.Property, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.rows {
		if r.rows[i].PropertyID == id {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakePropertyRepo) matching(plan query.Plan) []models.Property {
	var out []models.Property
	for _, row := range r.rows {
		if fakeMatches(row, plan.Predicates) {
			out = append(out, row)
		}
	}
	return out
}

func fakeMatches(row models.Property, preds []query.Predicate) bool {
	for _, p := range preds {
		switch p.Field {
		case "city":
			if row.City != p.Value.(string) {
				return false
			}
		case "listing_type":
			if row.ListingType != p.Value.(string) {
				return false
			}
		case "property_type":
			if row.PropertyType != p.Value.(string) {
				return false
			}
		case "price":
			if p.Op == query.OpGte && row.Price < p.Value.(float64) {
				return false
			}
			if p.Op == query.OpLte && row.Price > p.Value.(float64) {
				return false
			}
		case "featured":
			if row.Featured == nil || *row.Featured != p.Value.(bool) {
				return false
			}
		}
	}
	return true
}

type testLister struct{}

func (testLister) ListFolder(ctx context.Context, prefix string) ([]string, error) {
	return nil, nil
}

type testAgentRepo struct{}

func (testAgentRepo) FindByID(ctx context.Context, id string) (*models.Agent, error) {
	return nil, nil
}

func testRows(n int) []models.Property {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]models.Property, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, models.Property{
			PropertyID:   fmt.Sprintf("prop-%02d", i),
			Title:        fmt.Sprintf("Listing %d", i),
			Price:        120000 + float64(i)*5000,
			Address:      "5 Graf Ignatiev St, Centre",
			City:         "Sofia",
			PropertyType: "apartment",
			ListingType:  "sale",
			Images:       []string{fmt.Sprintf("https://cdn.example.com/%02d.jpg", i)},
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		})
	}
	return rows
}

func newTestRouter(repo *fakePropertyRepo) (*gin.Engine, *services.CatalogController) {
	images := resolvers.NewImageResolver(cache.NewStore[[]string](), testLister{})
	agents := resolvers.NewAgentResolver(cache.NewStore[models.AgentProfile](), testAgentRepo{})
	trans := transformers.NewPropertyTransformer(images, agents, transformers.NewAddressTransformer())
	svc := services.NewCatalogService(repo, nil, trans, 9)
	validator := validators.NewCriteriaValidator()
	controller := services.NewCatalogController(svc, validator, time.Millisecond)
	h := NewCatalogHandler(svc, controller, validator)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/api/properties", h.GetProperties)
	r.GET("/api/properties/featured", h.GetFeaturedProperties)
	r.GET("/api/properties/:id", h.GetPropertyByID)
	r.GET("/api/catalog", h.GetCatalogView)
	r.PUT("/api/catalog/filters", h.UpdateCatalogFilters)
	r.PUT("/api/catalog/sort", h.UpdateCatalogSort)
	r.PUT("/api/catalog/page", h.UpdateCatalogPage)
	r.POST("/api/catalog/refresh", h.RefreshCatalog)
	return r, controller
}

func doRequest(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProperties_FirstPage(t *testing.T) {
	r, ctrl := newTestRouter(&fakePropertyRepo{rows: testRows(12)})
	defer ctrl.Stop()

	w := doRequest(r, http.MethodGet, "/api/properties?city=Sofia&sort=price_asc", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PaginatedPropertiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, int64(12), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	assert.Equal(t, 1, resp.Meta.Page)
	require.Len(t, resp.Data, 9)
	assert.Equal(t, "prop-00", resp.Data[0].ID)
	require.NotNil(t, resp.Meta.Next)
	assert.Contains(t, *resp.Meta.Next, "page=2")
	assert.Nil(t, resp.Meta.Prev)
}

func TestGetProperties_SecondPageHasPrevLink(t *testing.T) {
	r, ctrl := newTestRouter(&fakePropertyRepo{rows: testRows(12)})
	defer ctrl.Stop()

	w := doRequest(r, http.MethodGet, "/api/properties?sort=price_asc&page=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PaginatedPropertiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.Data, 3)
	assert.Nil(t, resp.Meta.Next)
	require.NotNil(t, resp.Meta.Prev)
	assert.Contains(t, *resp.Meta.Prev, "page=1")
}

func TestGetProperties_UnknownFiltersNormalizedAway(t *testing.T) {
	r, ctrl := newTestRouter(&fakePropertyRepo{rows: testRows(3)})
	defer ctrl.Stop()

	// unknown city is dropped rather than matching nothing
	w := doRequest(r, http.MethodGet, "/api/properties?city=Atlantis&min_price=-50", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PaginatedPropertiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Meta.Total)
}

func TestGetProperties_RepoFailureMapped(t *testing.T) {
	r, ctrl := newTestRouter(&fakePropertyRepo{err: errors.New("connection refused")})
	defer ctrl.Stop()

	w := doRequest(r, http.MethodGet, "/api/properties", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp struct {
		Error struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SERVICE_UNAVAILABLE", resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}

func TestGetPropertyByID(t *testing.T) {
	r, ctrl := newTestRouter(&fakePropertyRepo{rows: testRows(2)})
	defer ctrl.Stop()

	w := doRequest(r, http.MethodGet, "/api/properties/prop-01", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.PresentationProperty
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "prop-01", got.ID)
	assert.Equal(t, "Centre", got.Location)

	w = doRequest(r, http.MethodGet, "/api/properties/ghost", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFeaturedProperties(t *testing.T) {
	featured := true
	rows := testRows(4)
	rows[0].Featured = &featured
	rows[2].Featured = &featured
	r, ctrl := newTestRouter(&fakePropertyRepo{rows: rows})
	defer ctrl.Stop()

	w := doRequest(r, http.MethodGet, "/api/properties/featured", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page models.PageResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(2), page.TotalCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "prop-02", page.Items[0].ID)
}

func TestCatalogViewLifecycle(t *testing.T) {
	r, ctrl := newTestRouter(&fakePropertyRepo{rows: testRows(12)})
	defer ctrl.Stop()

	w := doRequest(r, http.MethodPut, "/api/catalog/filters", `{"city":"Sofia"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	var snap services.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.True(t, snap.IsLoading)
	assert.Equal(t, "Sofia", snap.Criteria.City)
	assert.Equal(t, 1, snap.Page)

	require.Eventually(t, func() bool {
		w := doRequest(r, http.MethodGet, "/api/catalog", "")
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
		return !snap.IsLoading
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, int64(12), snap.TotalCount)
	assert.Len(t, snap.Items, 9)
}

func TestCatalogRefreshReturnsPopulatedSnapshot(t *testing.T) {
	r, ctrl := newTestRouter(&fakePropertyRepo{rows: testRows(5)})
	defer ctrl.Stop()

	w := doRequest(r, http.MethodPost, "/api/catalog/refresh", "")
	require.Equal(t, http.StatusOK, w.Code)

	var snap services.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.False(t, snap.IsLoading)
	assert.Equal(t, int64(5), snap.TotalCount)
	assert.Len(t, snap.Items, 5)
}

func TestUpdateCatalogPage_MalformedBody(t *testing.T) {
	r, ctrl := newTestRouter(&fakePropertyRepo{rows: testRows(5)})
	defer ctrl.Stop()

	w := doRequest(r, http.MethodPut, "/api/catalog/page", `{"page":"two"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
