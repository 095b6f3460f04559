package repository

import (
	"context"

	"github.com/parasport-hub/content-api/internal/database"
	"github.com/parasport-hub/content-api/internal/models"
)

// NewsRepository defines the interface for news data operations.
// Multi-step mutations run inside a single transaction: either every
// step commits or none do.
type NewsRepository interface {
	Create(ctx context.Context, n *models.News, tagIDs, classificationIDs []int64) error
	Update(ctx context.Context, id int64, patch *models.NewsPatch) (*models.News, error)
	Delete(ctx context.Context, id int64) (*models.News, error)
	DeleteMany(ctx context.Context, ids []int64) (int, error)
	UpdateStatusMany(ctx context.Context, ids []int64, status string) ([]*models.News, error)
	IncrementViews(ctx context.Context, id int64) (*models.News, error)
	GetByID(ctx context.Context, id int64) (*models.News, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.News, error)
	List(ctx context.Context, filter *models.NewsFilter) ([]*models.News, error)
	Count(ctx context.Context, filter *models.NewsFilter) (int, error)
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	TagsFor(ctx context.Context, newsID int64) ([]models.Tag, error)
	ClassificationsFor(ctx context.Context, newsID int64) ([]models.Classification, error)
	ListByClassification(ctx context.Context, classificationID int64, limit, offset int) ([]*models.News, error)
	CountByClassification(ctx context.Context, classificationID int64) (int, error)
	CountPublished(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*models.NewsStats, error)
	PublicStats(ctx context.Context) (*models.PublicStats, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Category, error)
}

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, tag *models.Tag) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Tag, error)
}

// ClassificationRepository defines the interface for classification data
// operations. List orders by priority ascending.
type ClassificationRepository interface {
	Create(ctx context.Context, classification *models.Classification) error
	Update(ctx context.Context, classification *models.Classification) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Classification, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Classification, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	News           NewsRepository
	Category       CategoryRepository
	Tag            TagRepository
	Classification ClassificationRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		News:           NewNewsRepo(db),
		Category:       NewCategoryRepo(db),
		Tag:            NewTagRepo(db),
		Classification: NewClassificationRepo(db),
	}
}
