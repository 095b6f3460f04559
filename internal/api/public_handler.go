package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/parasport-hub/content-api/internal/models"
	"github.com/parasport-hub/content-api/internal/service"
	"github.com/rs/zerolog"
)

// PublicHandler handles the public site endpoints; everything it serves
// is restricted to published content
type PublicHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(services *service.Services, log zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		services: services,
		log:      log.With().Str("handler", "public").Logger(),
	}
}

// Search handles GET /v1/public/news
func (h *PublicHandler) Search(c *gin.Context) {
	filter := parseNewsFilter(c)

	items, total, err := h.services.News.SearchPublished(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to search published news")
		respondError(c, err)
		return
	}
	if items == nil {
		items = []*models.News{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"total":  total,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})
}

// Home handles GET /v1/public/news/home, the classification-sectioned
// news hub payload
func (h *PublicHandler) Home(c *gin.Context) {
	page, err := h.services.News.GetNewsPageData(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build news page data")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// ByClassification handles GET /v1/public/news/classification/:id
func (h *PublicHandler) ByClassification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	section, err := h.services.News.GetNewsByClassification(c.Request.Context(), id, limit, offset)
	if err != nil {
		if err != service.ErrNotFound {
			h.log.Error().Err(err).Int64("classification_id", id).Msg("Failed to load classification section")
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// BySlug handles GET /v1/public/news/:slug
func (h *PublicHandler) BySlug(c *gin.Context) {
	slug := c.Param("slug")

	n, err := h.services.News.GetPublishedBySlug(c.Request.Context(), slug)
	if err != nil {
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to get published news")
		respondError(c, err)
		return
	}
	if n == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusOK, n)
}

// RecordView handles POST /v1/public/news/:slug/view
func (h *PublicHandler) RecordView(c *gin.Context) {
	slug := c.Param("slug")

	n, err := h.services.News.IncrementViewCountBySlug(c.Request.Context(), slug)
	if err != nil {
		if err != service.ErrNotFound {
			h.log.Error().Err(err).Str("slug", slug).Msg("Failed to record view")
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         n.ID,
		"slug":       n.Slug,
		"view_count": n.ViewCount,
	})
}

// Stats handles GET /v1/public/stats
func (h *PublicHandler) Stats(c *gin.Context) {
	stats, err := h.services.News.PublicStats(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load public stats")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
