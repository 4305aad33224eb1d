package handlers

import (
	"net/http"

	"primecasa-catalog/internal/repositories"
	"primecasa-catalog/internal/resolvers"
	"primecasa-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes cache management to the content-management backend:
// after a property edit it invalidates exactly the affected entries.
type AdminHandler struct {
	images    *resolvers.ImageResolver
	agents    *resolvers.AgentResolver
	listCache repositories.ListingCache
}

func NewAdminHandler(images *resolvers.ImageResolver, agents *resolvers.AgentResolver, listCache repositories.ListingCache) *AdminHandler {
	return &AdminHandler{
		images:    images,
		agents:    agents,
		listCache: listCache,
	}
}

// InvalidateProperty drops the cached photo set and every cached listing
// page containing the property.
func (h *AdminHandler) InvalidateProperty(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property id is required"})
		return
	}

	h.images.Invalidate(id)
	if h.listCache != nil {
		if err := h.listCache.InvalidateProperty(c.Request.Context(), id); err != nil {
			logger.GlobalLogger.Errorf("listing cache invalidation failed: id=%s, error=%v", id, err)
			_ = c.Error(err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "invalidated", "property_id": id})
}

// InvalidateAgent drops one agent's cached profile.
func (h *AdminHandler) InvalidateAgent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "agent id is required"})
		return
	}

	h.agents.Invalidate(id)
	c.JSON(http.StatusOK, gin.H{"status": "invalidated", "agent_id": id})
}

// ClearCaches drops every cache: photo sets, agent profiles, and listing
// pages.
func (h *AdminHandler) ClearCaches(c *gin.Context) {
	h.images.Clear()
	h.agents.Clear()
	if h.listCache != nil {
		if err := h.listCache.Clear(c.Request.Context()); err != nil {
			logger.GlobalLogger.Errorf("listing cache clear failed: %v", err)
			_ = c.Error(err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
