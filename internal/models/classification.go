package models

import (
	"strings"
	"time"
)

// Classification names with special meaning on public reads.
// The flag is a naming convention, not a schema column.
const (
	ClassificationFeatured = "featured"
	ClassificationBreaking = "breaking"
)

// Classification is a priority-ordered label used both as a display tag
// and as the sectioning key for the public news hub. Lower priority
// values sort first.
type Classification struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Priority  int       `json:"priority" db:"priority"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsFeatured reports whether this classification marks articles as featured
func (c *Classification) IsFeatured() bool {
	return strings.EqualFold(c.Name, ClassificationFeatured)
}

// IsBreaking reports whether this classification marks articles as breaking
func (c *Classification) IsBreaking() bool {
	return strings.EqualFold(c.Name, ClassificationBreaking)
}

// ClassificationInput is the create/update payload for a classification
type ClassificationInput struct {
	Name     string `json:"name" binding:"required"`
	Priority *int   `json:"priority"`
	IsActive *bool  `json:"is_active"`
}
