package models

import (
	"time"
)

// News statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatuses defines allowed news statuses
var ValidStatuses = map[string]bool{
	StatusDraft:     true,
	StatusPublished: true,
	StatusArchived:  true,
}

// ValidSortFields defines allowed sort fields for news listing
var ValidSortFields = map[string]bool{
	"createdAt":   true,
	"updatedAt":   true,
	"publishedAt": true,
	"title":       true,
	"viewCount":   true,
}

// News represents a news article with its derived metadata and relations
type News struct {
	ID              int64      `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Slug            string     `json:"slug" db:"slug"`
	Excerpt         string     `json:"excerpt" db:"excerpt"`
	Content         string     `json:"content" db:"content"`
	FeaturedImage   *string    `json:"featured_image,omitempty" db:"featured_image"`
	OtherImages     []string   `json:"other_images,omitempty" db:"other_images"`
	Status          string     `json:"status" db:"status"`
	ReadTime        int        `json:"read_time" db:"read_time"`
	ViewCount       int64      `json:"view_count" db:"view_count"`
	MetaDescription *string    `json:"meta_description,omitempty" db:"meta_description"`
	MetaKeywords    *string    `json:"meta_keywords,omitempty" db:"meta_keywords"`
	CategoryID      int64      `json:"category_id" db:"category_id"`
	PublishedAt     *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`

	// Populated from joins, not news columns
	CategoryName    string           `json:"category_name,omitempty" db:"-"`
	Tags            []Tag            `json:"tags,omitempty" db:"-"`
	Classifications []Classification `json:"classifications,omitempty" db:"-"`

	// Derived from classification names on public reads
	Featured   bool `json:"featured" db:"-"`
	IsBreaking bool `json:"is_breaking" db:"-"`
}

// CreateNewsInput is the payload for creating a news article.
// Slug and read time are always computed server-side.
type CreateNewsInput struct {
	Title                   string     `json:"title" binding:"required"`
	Slug                    *string    `json:"slug"`
	Excerpt                 string     `json:"excerpt" binding:"required"`
	Content                 string     `json:"content" binding:"required"`
	CategoryID              int64      `json:"category_id" binding:"required"`
	FeaturedImage           *string    `json:"featured_image"`
	OtherImages             []string   `json:"other_images"`
	Status                  string     `json:"status"`
	MetaDescription         *string    `json:"meta_description"`
	MetaKeywords            *string    `json:"meta_keywords"`
	PublishedAt             *time.Time `json:"published_at"`
	SelectedTags            []int64    `json:"selected_tags"`
	SelectedClassifications []int64    `json:"selected_classifications"`
}

// UpdateNewsInput is a partial patch: nil means "leave the field alone".
// SelectedTags/SelectedClassifications replace the relation set wholesale
// when present, even if the list is empty.
type UpdateNewsInput struct {
	Title                   *string    `json:"title"`
	Excerpt                 *string    `json:"excerpt"`
	Content                 *string    `json:"content"`
	CategoryID              *int64     `json:"category_id"`
	FeaturedImage           *string    `json:"featured_image"`
	OtherImages             *[]string  `json:"other_images"`
	Status                  *string    `json:"status"`
	MetaDescription         *string    `json:"meta_description"`
	MetaKeywords            *string    `json:"meta_keywords"`
	PublishedAt             *time.Time `json:"published_at"`
	SelectedTags            *[]int64   `json:"selected_tags"`
	SelectedClassifications *[]int64   `json:"selected_classifications"`
}

// NewsPatch is the column-level patch applied to a news row plus the
// relation replacement instructions. The service builds it from an
// UpdateNewsInput after computing slug, read time and publish transitions.
type NewsPatch struct {
	Title            *string
	Slug             *string
	Excerpt          *string
	Content          *string
	ReadTime         *int
	FeaturedImage    *string
	OtherImages      *[]string
	Status           *string
	MetaDescription  *string
	MetaKeywords     *string
	CategoryID       *int64
	PublishedAt      *time.Time
	ClearPublishedAt bool
	Tags             *[]int64
	Classifications  *[]int64
}

// NewsFilter holds listing filters; all filters combine with AND,
// search alone matches title OR excerpt OR content.
type NewsFilter struct {
	Search           string
	Status           string // "", "all" or one of ValidStatuses
	CategoryID       *int64
	ClassificationID *int64
	DateFrom         *time.Time
	DateTo           *time.Time
	SortBy           string // createdAt|updatedAt|publishedAt|title|viewCount
	SortOrder        string // asc|desc
	Limit            int    // <= 0 means no limit
	Offset           int
	PublishedOnly    bool
}

// NewsSection is one classification-keyed block of the public news hub
type NewsSection struct {
	Classification Classification `json:"classification"`
	Items          []*News        `json:"items"`
	TotalCount     int            `json:"total_count"`
	HasMore        bool           `json:"has_more"`
}

// NewsPageData is the full public news-hub payload
type NewsPageData struct {
	Sections       []NewsSection `json:"sections"`
	TotalPublished int           `json:"total_published"`
}

// NewsStats holds admin dashboard counters
type NewsStats struct {
	Total      int   `json:"total"`
	Published  int   `json:"published"`
	Drafts     int   `json:"drafts"`
	Archived   int   `json:"archived"`
	TotalViews int64 `json:"total_views"`
}

// PublicStats holds the public-facing counters
type PublicStats struct {
	TotalPublished int   `json:"total_published"`
	TotalViews     int64 `json:"total_views"`
}
