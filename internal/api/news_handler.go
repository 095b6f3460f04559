package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parasport-hub/content-api/internal/models"
	"github.com/parasport-hub/content-api/internal/service"
	"github.com/rs/zerolog"
)

// NewsHandler handles the admin news endpoints
type NewsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(services *service.Services, log zerolog.Logger) *NewsHandler {
	return &NewsHandler{
		services: services,
		log:      log.With().Str("handler", "news").Logger(),
	}
}

// Create handles POST /v1/news
func (h *NewsHandler) Create(c *gin.Context) {
	var in models.CreateNewsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := h.services.News.Create(c.Request.Context(), &in)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create news")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, n)
}

// List handles GET /v1/news with filter, sort and paging query params
func (h *NewsHandler) List(c *gin.Context) {
	filter := parseNewsFilter(c)

	items, err := h.services.News.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list news")
		respondError(c, err)
		return
	}
	if items == nil {
		items = []*models.News{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// Get handles GET /v1/news/:id
func (h *NewsHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	n, err := h.services.News.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to get news")
		respondError(c, err)
		return
	}
	if n == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusOK, n)
}

// Update handles PUT /v1/news/:id with a partial patch body
func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in models.UpdateNewsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := h.services.News.Update(c.Request.Context(), id, &in)
	if err != nil {
		if err != service.ErrNotFound {
			h.log.Error().Err(err).Int64("id", id).Msg("Failed to update news")
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, n)
}

// Delete handles DELETE /v1/news/:id. Deleting an unknown id is not an
// error; the deleted field is null in that case.
func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	n, err := h.services.News.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to delete news")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// BulkUpdateStatus handles POST /v1/news/bulk/status
func (h *NewsHandler) BulkUpdateStatus(c *gin.Context) {
	var req struct {
		IDs    []int64 `json:"ids" binding:"required"`
		Status string  `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.services.News.BulkUpdateStatus(c.Request.Context(), req.IDs, req.Status)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to bulk update status")
		respondError(c, err)
		return
	}
	if updated == nil {
		updated = []*models.News{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items": updated,
		"count": len(updated),
	})
}

// BulkDelete handles POST /v1/news/bulk/delete
func (h *NewsHandler) BulkDelete(c *gin.Context) {
	var req struct {
		IDs []int64 `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.services.News.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to bulk delete")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// Stats handles GET /v1/news/stats
func (h *NewsHandler) Stats(c *gin.Context) {
	stats, err := h.services.News.Stats(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load stats")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
