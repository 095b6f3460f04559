package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parasport-hub/content-api/internal/models"
	"github.com/parasport-hub/content-api/internal/service"
)

// respondError translates service errors into HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseIDParam reads a positive numeric path parameter
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// parseNewsFilter reads the listing filter from query parameters.
// Unparseable values are ignored rather than rejected.
func parseNewsFilter(c *gin.Context) *models.NewsFilter {
	filter := &models.NewsFilter{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		SortBy:    c.DefaultQuery("sort_by", "createdAt"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}

	if v, err := strconv.ParseInt(c.Query("category_id"), 10, 64); err == nil && v > 0 {
		filter.CategoryID = &v
	}
	if v, err := strconv.ParseInt(c.Query("classification_id"), 10, 64); err == nil && v > 0 {
		filter.ClassificationID = &v
	}
	if t, ok := parseDate(c.Query("date_from")); ok {
		filter.DateFrom = &t
	}
	if t, ok := parseDate(c.Query("date_to")); ok {
		filter.DateTo = &t
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		filter.Offset = v
	}

	return filter
}

// parseDate accepts RFC3339 timestamps or plain dates
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
