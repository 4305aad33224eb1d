package handlers

import (
	"net/http"
	"strconv"

	"primecasa-catalog/internal/models"
	"primecasa-catalog/internal/services"
	"primecasa-catalog/internal/utils"
	"primecasa-catalog/internal/validators"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	svc        *services.CatalogService
	controller *services.CatalogController
	validator  validators.CriteriaValidator
}

func NewCatalogHandler(svc *services.CatalogService, controller *services.CatalogController, validator validators.CriteriaValidator) *CatalogHandler {
	return &CatalogHandler{
		svc:        svc,
		controller: controller,
		validator:  validator,
	}
}

// GetProperties returns one filtered, sorted catalog page.
// Query parameters: listing_type, property_type, city, min_price, max_price,
// bedrooms, bathrooms, sort (e.g. price_asc), page.
func (h *CatalogHandler) GetProperties(c *gin.Context) {
	criteria := h.validator.Normalize(criteriaFromQuery(c))
	sort := models.ParseSortSpec(c.DefaultQuery("sort", models.DefaultSort().String()))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	result, err := h.svc.FetchPage(c.Request.Context(), criteria, sort, page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	meta := models.PaginationMeta{
		Total:      result.TotalCount,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}
	baseURL := c.Request.URL.Path
	params := c.Request.URL.Query()
	if result.Page < result.TotalPages {
		next := utils.BuildPaginationURL(baseURL, result.Page+1, params)
		meta.Next = &next
	}
	if result.Page > 1 {
		prev := utils.BuildPaginationURL(baseURL, result.Page-1, params)
		meta.Prev = &prev
	}

	c.JSON(http.StatusOK, models.PaginatedPropertiesResponse{
		Data: result.Items,
		Meta: meta,
	})
}

// GetPropertyByID returns one mapped property.
func (h *CatalogHandler) GetPropertyByID(c *gin.Context) {
	id := c.Param("id")
	property, err := h.svc.FetchByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}
	c.JSON(http.StatusOK, property)
}

// GetFeaturedProperties returns the first page of featured listings.
func (h *CatalogHandler) GetFeaturedProperties(c *gin.Context) {
	result, err := h.svc.FetchFeatured(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCatalogView returns the live catalog view snapshot.
func (h *CatalogHandler) GetCatalogView(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller.Snapshot())
}

// UpdateCatalogFilters replaces the view's filter criteria.
func (h *CatalogHandler) UpdateCatalogFilters(c *gin.Context) {
	var criteria models.FilterCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.controller.SetFilters(criteria)
	c.JSON(http.StatusAccepted, h.controller.Snapshot())
}

// UpdateCatalogSort replaces the view's sort selection.
func (h *CatalogHandler) UpdateCatalogSort(c *gin.Context) {
	var sort models.SortSpec
	if err := c.ShouldBindJSON(&sort); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.controller.SetSort(sort)
	c.JSON(http.StatusAccepted, h.controller.Snapshot())
}

// UpdateCatalogPage moves the view to another page; out-of-range requests
// leave the state unchanged.
func (h *CatalogHandler) UpdateCatalogPage(c *gin.Context) {
	var body struct {
		Page int `json:"page"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.controller.SetPage(body.Page)
	c.JSON(http.StatusAccepted, h.controller.Snapshot())
}

// RefreshCatalog re-fetches the current view state immediately.
func (h *CatalogHandler) RefreshCatalog(c *gin.Context) {
	h.controller.Refresh()
	c.JSON(http.StatusOK, h.controller.Snapshot())
}

func criteriaFromQuery(c *gin.Context) models.FilterCriteria {
	criteria := models.FilterCriteria{
		ListingType:  c.Query("listing_type"),
		PropertyType: c.Query("property_type"),
		City:         c.Query("city"),
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		criteria.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		criteria.MaxPrice = &v
	}
	if v, err := strconv.Atoi(c.Query("bedrooms")); err == nil {
		criteria.Bedrooms = &v
	}
	if v, err := strconv.Atoi(c.Query("bathrooms")); err == nil {
		criteria.Bathrooms = &v
	}
	return criteria
}
