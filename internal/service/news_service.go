package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/parasport-hub/content-api/internal/config"
	"github.com/parasport-hub/content-api/internal/models"
	"github.com/parasport-hub/content-api/internal/repository"
	"github.com/rs/zerolog"
)

// maxSlugAttempts caps the probe-and-suffix loop; the unique index on
// slug catches the pathological concurrent case past this point
const maxSlugAttempts = 1000

// NewsService defines the content query and mutation operations
type NewsService interface {
	Create(ctx context.Context, in *models.CreateNewsInput) (*models.News, error)
	Update(ctx context.Context, id int64, in *models.UpdateNewsInput) (*models.News, error)
	Delete(ctx context.Context, id int64) (*models.News, error)
	BulkUpdateStatus(ctx context.Context, ids []int64, status string) ([]*models.News, error)
	BulkDelete(ctx context.Context, ids []int64) (int, error)
	IncrementViewCount(ctx context.Context, id int64) (*models.News, error)
	IncrementViewCountBySlug(ctx context.Context, slug string) (*models.News, error)
	List(ctx context.Context, filter *models.NewsFilter) ([]*models.News, error)
	GetByID(ctx context.Context, id int64) (*models.News, error)
	GetBySlug(ctx context.Context, slug string) (*models.News, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.News, error)
	GetNewsPageData(ctx context.Context) (*models.NewsPageData, error)
	GetNewsByClassification(ctx context.Context, classificationID int64, limit, offset int) (*models.NewsSection, error)
	SearchPublished(ctx context.Context, filter *models.NewsFilter) ([]*models.News, int, error)
	Stats(ctx context.Context) (*models.NewsStats, error)
	PublicStats(ctx context.Context) (*models.PublicStats, error)
}

// newsService is the concrete implementation of NewsService
type newsService struct {
	news            repository.NewsRepository
	classifications repository.ClassificationRepository
	mediaBaseURL    string
	sectionPageSize int
	log             zerolog.Logger
}

func newNewsService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) NewsService {
	return &newsService{
		news:            repos.News,
		classifications: repos.Classification,
		mediaBaseURL:    cfg.Media.BaseURL,
		sectionPageSize: cfg.News.SectionPageSize,
		log:             log.With().Str("service", "news").Logger(),
	}
}

// ensureUniqueSlug probes for the first free slug in the sequence
// base, base-1, base-2, ... excluding the article being updated when
// excludeID is non-zero.
func (s *newsService) ensureUniqueSlug(ctx context.Context, base string, excludeID int64) (string, error) {
	if base == "" {
		base = "news"
	}

	candidate := base
	for i := 1; i <= maxSlugAttempts; i++ {
		exists, err := s.news.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to probe slug %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", ErrSlugExhausted
}

// Create computes slug and read time, resolves the publish timestamp
// and writes the article with its relation rows in one transaction
func (s *newsService) Create(ctx context.Context, in *models.CreateNewsInput) (*models.News, error) {
	status := in.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !models.ValidStatuses[status] {
		return nil, ErrInvalidStatus
	}

	// Slug is always derived server-side; an explicit slug only seeds
	// the base before the uniqueness probe.
	base := GenerateSlug(in.Title)
	if in.Slug != nil && *in.Slug != "" {
		base = GenerateSlug(*in.Slug)
	}
	slug, err := s.ensureUniqueSlug(ctx, base, 0)
	if err != nil {
		return nil, err
	}

	var publishedAt *time.Time
	if status == models.StatusPublished {
		publishedAt = in.PublishedAt
		if publishedAt == nil {
			now := time.Now()
			publishedAt = &now
		}
	}

	n := &models.News{
		Title:           in.Title,
		Slug:            slug,
		Excerpt:         in.Excerpt,
		Content:         in.Content,
		FeaturedImage:   in.FeaturedImage,
		OtherImages:     in.OtherImages,
		Status:          status,
		ReadTime:        CalculateReadTime(in.Content),
		MetaDescription: in.MetaDescription,
		MetaKeywords:    in.MetaKeywords,
		CategoryID:      in.CategoryID,
		PublishedAt:     publishedAt,
	}

	if err := s.news.Create(ctx, n, in.SelectedTags, in.SelectedClassifications); err != nil {
		return nil, fmt.Errorf("failed to create news: %w", err)
	}

	s.log.Info().Int64("id", n.ID).Str("slug", n.Slug).Str("status", n.Status).Msg("News created")
	return n, nil
}

// Update applies a partial patch. Supplying a title regenerates the
// slug, supplying content recomputes the read time, and a status change
// drives the publish-timestamp transition: publishing stamps it, moving
// to draft clears it, archiving leaves it untouched.
func (s *newsService) Update(ctx context.Context, id int64, in *models.UpdateNewsInput) (*models.News, error) {
	patch := &models.NewsPatch{
		Excerpt:         in.Excerpt,
		FeaturedImage:   in.FeaturedImage,
		OtherImages:     in.OtherImages,
		MetaDescription: in.MetaDescription,
		MetaKeywords:    in.MetaKeywords,
		CategoryID:      in.CategoryID,
		Tags:            in.SelectedTags,
		Classifications: in.SelectedClassifications,
	}

	if in.Title != nil {
		slug, err := s.ensureUniqueSlug(ctx, GenerateSlug(*in.Title), id)
		if err != nil {
			return nil, err
		}
		patch.Title = in.Title
		patch.Slug = &slug
	}

	if in.Content != nil {
		readTime := CalculateReadTime(*in.Content)
		patch.Content = in.Content
		patch.ReadTime = &readTime
	}

	if in.Status != nil {
		if !models.ValidStatuses[*in.Status] {
			return nil, ErrInvalidStatus
		}
		patch.Status = in.Status
		switch *in.Status {
		case models.StatusPublished:
			patch.PublishedAt = in.PublishedAt
			if patch.PublishedAt == nil {
				now := time.Now()
				patch.PublishedAt = &now
			}
		case models.StatusDraft:
			patch.ClearPublishedAt = true
		}
	} else if in.PublishedAt != nil {
		patch.PublishedAt = in.PublishedAt
	}

	n, err := s.news.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update news %d: %w", id, err)
	}
	if n == nil {
		return nil, ErrNotFound
	}

	s.log.Info().Int64("id", n.ID).Str("slug", n.Slug).Msg("News updated")
	return n, nil
}

// Delete removes an article and its relation rows; returns (nil, nil)
// when the id did not exist
func (s *newsService) Delete(ctx context.Context, id int64) (*models.News, error) {
	n, err := s.news.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete news %d: %w", id, err)
	}
	if n != nil {
		s.log.Info().Int64("id", id).Str("slug", n.Slug).Msg("News deleted")
	}
	return n, nil
}

// BulkUpdateStatus moves a batch of articles to a status with the same
// publish-timestamp rules as a single update
func (s *newsService) BulkUpdateStatus(ctx context.Context, ids []int64, status string) ([]*models.News, error) {
	if !models.ValidStatuses[status] {
		return nil, ErrInvalidStatus
	}

	updated, err := s.news.UpdateStatusMany(ctx, ids, status)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk update status: %w", err)
	}

	s.log.Info().Int("requested", len(ids)).Int("updated", len(updated)).Str("status", status).Msg("Bulk status update")
	return updated, nil
}

// BulkDelete removes a batch of articles and their relation rows
func (s *newsService) BulkDelete(ctx context.Context, ids []int64) (int, error) {
	deleted, err := s.news.DeleteMany(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete: %w", err)
	}

	s.log.Info().Int("requested", len(ids)).Int("deleted", deleted).Msg("Bulk delete")
	return deleted, nil
}

// IncrementViewCount applies an atomic +1 to the stored view count
func (s *newsService) IncrementViewCount(ctx context.Context, id int64) (*models.News, error) {
	n, err := s.news.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to increment views for %d: %w", id, err)
	}
	if n == nil {
		return nil, ErrNotFound
	}
	return n, nil
}

// IncrementViewCountBySlug resolves a slug and increments its view
// count, failing with ErrNotFound when the slug does not resolve
func (s *newsService) IncrementViewCountBySlug(ctx context.Context, slug string) (*models.News, error) {
	n, err := s.news.GetBySlug(ctx, slug, false)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve slug %q: %w", slug, err)
	}
	if n == nil {
		return nil, ErrNotFound
	}
	return s.IncrementViewCount(ctx, n.ID)
}

// List retrieves articles matching the filter with their tags and
// priority-ordered classifications attached
func (s *newsService) List(ctx context.Context, filter *models.NewsFilter) ([]*models.News, error) {
	list, err := s.news.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	if err := s.decorate(ctx, list...); err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID retrieves one article with relations, or (nil, nil) if absent
func (s *newsService) GetByID(ctx context.Context, id int64) (*models.News, error) {
	n, err := s.news.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get news %d: %w", id, err)
	}
	if n == nil {
		return nil, nil
	}
	if err := s.decorate(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// GetBySlug retrieves one article by slug with relations, or (nil, nil)
// if absent
func (s *newsService) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	return s.getBySlug(ctx, slug, false)
}

// GetPublishedBySlug is GetBySlug restricted to published articles
func (s *newsService) GetPublishedBySlug(ctx context.Context, slug string) (*models.News, error) {
	return s.getBySlug(ctx, slug, true)
}

func (s *newsService) getBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.News, error) {
	n, err := s.news.GetBySlug(ctx, slug, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get news by slug %q: %w", slug, err)
	}
	if n == nil {
		return nil, nil
	}
	if err := s.decorate(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// GetNewsPageData assembles the public news hub: one section per active
// classification in priority order, each carrying its first page of
// published articles, plus the grand published total
func (s *newsService) GetNewsPageData(ctx context.Context) (*models.NewsPageData, error) {
	classifications, err := s.classifications.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list classifications: %w", err)
	}

	page := &models.NewsPageData{Sections: make([]models.NewsSection, 0, len(classifications))}
	for _, cl := range classifications {
		section, err := s.buildSection(ctx, cl, s.sectionPageSize, 0)
		if err != nil {
			return nil, err
		}
		page.Sections = append(page.Sections, *section)
	}

	total, err := s.news.CountPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count published news: %w", err)
	}
	page.TotalPublished = total

	return page, nil
}

// GetNewsByClassification retrieves one section page for a classification
func (s *newsService) GetNewsByClassification(ctx context.Context, classificationID int64, limit, offset int) (*models.NewsSection, error) {
	cl, err := s.classifications.GetByID(ctx, classificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get classification %d: %w", classificationID, err)
	}
	if cl == nil {
		return nil, ErrNotFound
	}

	if limit <= 0 {
		limit = s.sectionPageSize
	}
	return s.buildSection(ctx, cl, limit, offset)
}

func (s *newsService) buildSection(ctx context.Context, cl *models.Classification, limit, offset int) (*models.NewsSection, error) {
	items, err := s.news.ListByClassification(ctx, cl.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list news for classification %d: %w", cl.ID, err)
	}
	if err := s.decorate(ctx, items...); err != nil {
		return nil, err
	}

	total, err := s.news.CountByClassification(ctx, cl.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count news for classification %d: %w", cl.ID, err)
	}

	if items == nil {
		items = []*models.News{}
	}
	return &models.NewsSection{
		Classification: *cl,
		Items:          items,
		TotalCount:     total,
		HasMore:        offset+limit < total,
	}, nil
}

// SearchPublished is the public listing: the filter is hard-restricted
// to published articles and each result carries the featured/breaking
// booleans derived from its classification names. Returns the matching
// page and the total match count.
func (s *newsService) SearchPublished(ctx context.Context, filter *models.NewsFilter) ([]*models.News, int, error) {
	f := *filter
	f.PublishedOnly = true

	list, err := s.news.List(ctx, &f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search published news: %w", err)
	}
	if err := s.decorate(ctx, list...); err != nil {
		return nil, 0, err
	}

	total, err := s.news.Count(ctx, &f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count published news: %w", err)
	}
	return list, total, nil
}

// Stats returns the admin dashboard counters
func (s *newsService) Stats(ctx context.Context) (*models.NewsStats, error) {
	return s.news.Stats(ctx)
}

// PublicStats returns the public counters over published articles
func (s *newsService) PublicStats(ctx context.Context) (*models.PublicStats, error) {
	return s.news.PublicStats(ctx)
}

// decorate attaches tags and priority-ordered classifications, derives
// the featured/breaking flags and resolves image URLs against the
// configured media base
func (s *newsService) decorate(ctx context.Context, list ...*models.News) error {
	for _, n := range list {
		tags, err := s.news.TagsFor(ctx, n.ID)
		if err != nil {
			return fmt.Errorf("failed to load tags for news %d: %w", n.ID, err)
		}
		classifications, err := s.news.ClassificationsFor(ctx, n.ID)
		if err != nil {
			return fmt.Errorf("failed to load classifications for news %d: %w", n.ID, err)
		}

		n.Tags = tags
		n.Classifications = classifications
		for i := range classifications {
			if classifications[i].IsFeatured() {
				n.Featured = true
			}
			if classifications[i].IsBreaking() {
				n.IsBreaking = true
			}
		}

		if n.FeaturedImage != nil {
			resolved := s.mediaURL(*n.FeaturedImage)
			n.FeaturedImage = &resolved
		}
		for i, img := range n.OtherImages {
			n.OtherImages[i] = s.mediaURL(img)
		}
	}
	return nil
}

// mediaURL prefixes relative image paths with the configured base URL
func (s *newsService) mediaURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(s.mediaBaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
