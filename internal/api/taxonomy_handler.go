package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parasport-hub/content-api/internal/models"
	"github.com/parasport-hub/content-api/internal/service"
	"github.com/rs/zerolog"
)

// TaxonomyHandler handles the category, tag and classification endpoints
type TaxonomyHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewTaxonomyHandler creates a new TaxonomyHandler
func NewTaxonomyHandler(services *service.Services, log zerolog.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{
		services: services,
		log:      log.With().Str("handler", "taxonomy").Logger(),
	}
}

// Register wires the taxonomy routes onto a router group
func (h *TaxonomyHandler) Register(v1 *gin.RouterGroup) {
	categories := v1.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.CreateCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}

	tags := v1.Group("/tags")
	{
		tags.GET("", h.ListTags)
		tags.POST("", h.CreateTag)
		tags.PUT("/:id", h.UpdateTag)
		tags.DELETE("/:id", h.DeleteTag)
	}

	classifications := v1.Group("/classifications")
	{
		classifications.GET("", h.ListClassifications)
		classifications.POST("", h.CreateClassification)
		classifications.PUT("/:id", h.UpdateClassification)
		classifications.DELETE("/:id", h.DeleteClassification)
	}
}

func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	categories, err := h.services.Taxonomy.ListCategories(c.Request.Context(), activeOnly)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list categories")
		respondError(c, err)
		return
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var in models.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.services.Taxonomy.CreateCategory(c.Request.Context(), &in)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create category")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *TaxonomyHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in models.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.services.Taxonomy.UpdateCategory(c.Request.Context(), id, &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Taxonomy.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	tags, err := h.services.Taxonomy.ListTags(c.Request.Context(), activeOnly)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list tags")
		respondError(c, err)
		return
	}
	if tags == nil {
		tags = []*models.Tag{}
	}
	c.JSON(http.StatusOK, tags)
}

func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	var in models.TagInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.services.Taxonomy.CreateTag(c.Request.Context(), &in)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create tag")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *TaxonomyHandler) UpdateTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in models.TagInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.services.Taxonomy.UpdateTag(c.Request.Context(), id, &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TaxonomyHandler) DeleteTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Taxonomy.DeleteTag(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaxonomyHandler) ListClassifications(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	classifications, err := h.services.Taxonomy.ListClassifications(c.Request.Context(), activeOnly)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list classifications")
		respondError(c, err)
		return
	}
	if classifications == nil {
		classifications = []*models.Classification{}
	}
	c.JSON(http.StatusOK, classifications)
}

func (h *TaxonomyHandler) CreateClassification(c *gin.Context) {
	var in models.ClassificationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	classification, err := h.services.Taxonomy.CreateClassification(c.Request.Context(), &in)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create classification")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, classification)
}

func (h *TaxonomyHandler) UpdateClassification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in models.ClassificationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	classification, err := h.services.Taxonomy.UpdateClassification(c.Request.Context(), id, &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classification)
}

func (h *TaxonomyHandler) DeleteClassification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Taxonomy.DeleteClassification(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
