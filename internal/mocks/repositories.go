package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/parasport-hub/content-api/internal/models"
)

// MockNewsRepository is an in-memory implementation of NewsRepository.
// Join rows and relation targets are held in plain maps so tests can
// seed and inspect them directly.
type MockNewsRepository struct {
	mu sync.Mutex

	News                map[int64]*models.News
	TagJoins            map[int64][]int64
	ClassificationJoins map[int64][]int64
	Tags                map[int64]models.Tag
	Classifications     map[int64]models.Classification
	NextID              int64

	// ForcedErr is returned by every operation when set
	ForcedErr error
}

func NewMockNewsRepository() *MockNewsRepository {
	return &MockNewsRepository{
		News:                make(map[int64]*models.News),
		TagJoins:            make(map[int64][]int64),
		ClassificationJoins: make(map[int64][]int64),
		Tags:                make(map[int64]models.Tag),
		Classifications:     make(map[int64]models.Classification),
	}
}

// SeedTag registers a tag so TagsFor can resolve join rows against it
func (m *MockNewsRepository) SeedTag(t models.Tag) {
	m.Tags[t.ID] = t
}

// SeedClassification registers a classification for ClassificationsFor
func (m *MockNewsRepository) SeedClassification(cl models.Classification) {
	m.Classifications[cl.ID] = cl
}

func (m *MockNewsRepository) Create(ctx context.Context, n *models.News, tagIDs, classificationIDs []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return m.ForcedErr
	}

	m.NextID++
	now := time.Now()
	n.ID = m.NextID
	n.CreatedAt = now
	n.UpdatedAt = now

	stored := *n
	m.News[n.ID] = &stored
	m.TagJoins[n.ID] = dedupe(tagIDs)
	m.ClassificationJoins[n.ID] = dedupe(classificationIDs)
	return nil
}

func (m *MockNewsRepository) Update(ctx context.Context, id int64, patch *models.NewsPatch) (*models.News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}

	n, ok := m.News[id]
	if !ok {
		return nil, nil
	}

	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Slug != nil {
		n.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		n.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	if patch.ReadTime != nil {
		n.ReadTime = *patch.ReadTime
	}
	if patch.FeaturedImage != nil {
		img := *patch.FeaturedImage
		n.FeaturedImage = &img
	}
	if patch.OtherImages != nil {
		n.OtherImages = append([]string(nil), *patch.OtherImages...)
	}
	if patch.Status != nil {
		n.Status = *patch.Status
	}
	if patch.MetaDescription != nil {
		d := *patch.MetaDescription
		n.MetaDescription = &d
	}
	if patch.MetaKeywords != nil {
		k := *patch.MetaKeywords
		n.MetaKeywords = &k
	}
	if patch.CategoryID != nil {
		n.CategoryID = *patch.CategoryID
	}
	if patch.ClearPublishedAt {
		n.PublishedAt = nil
	} else if patch.PublishedAt != nil {
		t := *patch.PublishedAt
		n.PublishedAt = &t
	}
	n.UpdatedAt = time.Now()

	if patch.Tags != nil {
		m.TagJoins[id] = dedupe(*patch.Tags)
	}
	if patch.Classifications != nil {
		m.ClassificationJoins[id] = dedupe(*patch.Classifications)
	}

	out := *n
	return &out, nil
}

func (m *MockNewsRepository) Delete(ctx context.Context, id int64) (*models.News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}

	n, ok := m.News[id]
	if !ok {
		return nil, nil
	}
	delete(m.News, id)
	delete(m.TagJoins, id)
	delete(m.ClassificationJoins, id)

	out := *n
	return &out, nil
}

func (m *MockNewsRepository) DeleteMany(ctx context.Context, ids []int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return 0, m.ForcedErr
	}

	deleted := 0
	for _, id := range ids {
		if _, ok := m.News[id]; ok {
			delete(m.News, id)
			delete(m.TagJoins, id)
			delete(m.ClassificationJoins, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MockNewsRepository) UpdateStatusMany(ctx context.Context, ids []int64, status string) ([]*models.News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}

	now := time.Now()
	var updated []*models.News
	for _, id := range ids {
		n, ok := m.News[id]
		if !ok {
			continue
		}
		n.Status = status
		n.UpdatedAt = now
		switch status {
		case models.StatusPublished:
			t := now
			n.PublishedAt = &t
		case models.StatusDraft:
			n.PublishedAt = nil
		}
		out := *n
		updated = append(updated, &out)
	}
	return updated, nil
}

func (m *MockNewsRepository) IncrementViews(ctx context.Context, id int64) (*models.News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}

	n, ok := m.News[id]
	if !ok {
		return nil, nil
	}
	n.ViewCount++

	out := *n
	return &out, nil
}

func (m *MockNewsRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}

	n, ok := m.News[id]
	if !ok {
		return nil, nil
	}
	out := *n
	return &out, nil
}

func (m *MockNewsRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}

	for _, n := range m.News {
		if n.Slug != slug {
			continue
		}
		if publishedOnly && n.Status != models.StatusPublished {
			continue
		}
		out := *n
		return &out, nil
	}
	return nil, nil
}

func (m *MockNewsRepository) List(ctx context.Context, filter *models.NewsFilter) ([]*models.News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}

	matched := m.filtered(filter)
	sortNews(matched, filter.SortBy, filter.SortOrder)

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[filter.Offset:]
		}
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	out := make([]*models.News, len(matched))
	for i, n := range matched {
		c := *n
		out[i] = &c
	}
	return out, nil
}

func (m *MockNewsRepository) Count(ctx context.Context, filter *models.NewsFilter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return 0, m.ForcedErr
	}
	return len(m.filtered(filter)), nil
}

func (m *MockNewsRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return false, m.ForcedErr
	}

	for _, n := range m.News {
		if n.Slug == slug && n.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockNewsRepository) TagsFor(ctx context.Context, newsID int64) ([]models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}

	var tags []models.Tag
	for _, id := range m.TagJoins[newsID] {
		// drop assignments whose tag no longer resolves
		if t, ok := m.Tags[id]; ok {
			tags = append(tags, t)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}

func (m *MockNewsRepository) ClassificationsFor(ctx context.Context, newsID int64) ([]models.Classification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}

	var classifications []models.Classification
	for _, id := range m.ClassificationJoins[newsID] {
		if cl, ok := m.Classifications[id]; ok {
			classifications = append(classifications, cl)
		}
	}
	sort.Slice(classifications, func(i, j int) bool {
		return classifications[i].Priority < classifications[j].Priority
	})
	return classifications, nil
}

func (m *MockNewsRepository) ListByClassification(ctx context.Context, classificationID int64, limit, offset int) ([]*models.News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}

	var matched []*models.News
	for _, n := range m.News {
		if n.Status != models.StatusPublished {
			continue
		}
		if !containsID(m.ClassificationJoins[n.ID], classificationID) {
			continue
		}
		matched = append(matched, n)
	}
	sortNews(matched, "publishedAt", "desc")

	if offset >= len(matched) {
		matched = nil
	} else {
		matched = matched[offset:]
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]*models.News, len(matched))
	for i, n := range matched {
		c := *n
		out[i] = &c
	}
	return out, nil
}

func (m *MockNewsRepository) CountByClassification(ctx context.Context, classificationID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return 0, m.ForcedErr
	}

	count := 0
	for _, n := range m.News {
		if n.Status == models.StatusPublished && containsID(m.ClassificationJoins[n.ID], classificationID) {
			count++
		}
	}
	return count, nil
}

func (m *MockNewsRepository) CountPublished(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return 0, m.ForcedErr
	}

	count := 0
	for _, n := range m.News {
		if n.Status == models.StatusPublished {
			count++
		}
	}
	return count, nil
}

func (m *MockNewsRepository) Stats(ctx context.Context) (*models.NewsStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}

	stats := &models.NewsStats{}
	for _, n := range m.News {
		stats.Total++
		stats.TotalViews += n.ViewCount
		switch n.Status {
		case models.StatusPublished:
			stats.Published++
		case models.StatusDraft:
			stats.Drafts++
		case models.StatusArchived:
			stats.Archived++
		}
	}
	return stats, nil
}

func (m *MockNewsRepository) PublicStats(ctx context.Context) (*models.PublicStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}

	stats := &models.PublicStats{}
	for _, n := range m.News {
		if n.Status == models.StatusPublished {
			stats.TotalPublished++
			stats.TotalViews += n.ViewCount
		}
	}
	return stats, nil
}

// filtered must be called with the mutex held
func (m *MockNewsRepository) filtered(filter *models.NewsFilter) []*models.News {
	var matched []*models.News
	for _, n := range m.News {
		if m.matches(n, filter) {
			matched = append(matched, n)
		}
	}
	return matched
}

func (m *MockNewsRepository) matches(n *models.News, filter *models.NewsFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(n.Title), needle) &&
			!strings.Contains(strings.ToLower(n.Excerpt), needle) &&
			!strings.Contains(strings.ToLower(n.Content), needle) {
			return false
		}
	}

	status := filter.Status
	if filter.PublishedOnly {
		status = models.StatusPublished
	}
	if status != "" && status != "all" && n.Status != status {
		return false
	}

	if filter.CategoryID != nil && n.CategoryID != *filter.CategoryID {
		return false
	}
	if filter.ClassificationID != nil && !containsID(m.ClassificationJoins[n.ID], *filter.ClassificationID) {
		return false
	}
	if filter.DateFrom != nil && n.CreatedAt.Before(*filter.DateFrom) {
		return false
	}
	if filter.DateTo != nil && n.CreatedAt.After(*filter.DateTo) {
		return false
	}
	return true
}

func sortNews(list []*models.News, sortBy, sortOrder string) {
	// stable id order first so equal keys stay deterministic
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	less := func(a, b *models.News) bool {
		switch sortBy {
		case "title":
			return a.Title < b.Title
		case "viewCount":
			return a.ViewCount < b.ViewCount
		case "updatedAt":
			return a.UpdatedAt.Before(b.UpdatedAt)
		case "publishedAt":
			return timeOrZero(a.PublishedAt).Before(timeOrZero(b.PublishedAt))
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	ascending := strings.EqualFold(sortOrder, "asc")
	sort.SliceStable(list, func(i, j int) bool {
		if ascending {
			return less(list[i], list[j])
		}
		return less(list[j], list[i])
	})
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// MockCategoryRepository is an in-memory implementation of CategoryRepository
type MockCategoryRepository struct {
	Categories map[int64]*models.Category
	NextID     int64
	ForcedErr  error
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{Categories: make(map[int64]*models.Category)}
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	m.NextID++
	category.ID = m.NextID
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	stored := *category
	m.Categories[category.ID] = &stored
	return nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) (bool, error) {
	if m.ForcedErr != nil {
		return false, m.ForcedErr
	}
	if _, ok := m.Categories[category.ID]; !ok {
		return false, nil
	}
	category.UpdatedAt = time.Now()
	stored := *category
	m.Categories[category.ID] = &stored
	return true, nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.ForcedErr != nil {
		return false, m.ForcedErr
	}
	if _, ok := m.Categories[id]; !ok {
		return false, nil
	}
	delete(m.Categories, id)
	return true, nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	c, ok := m.Categories[id]
	if !ok {
		return nil, nil
	}
	out := *c
	return &out, nil
}

func (m *MockCategoryRepository) List(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	var out []*models.Category
	for _, c := range m.Categories {
		if activeOnly && !c.IsActive {
			continue
		}
		cc := *c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// MockTagRepository is an in-memory implementation of TagRepository
type MockTagRepository struct {
	Tags      map[int64]*models.Tag
	NextID    int64
	ForcedErr error
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{Tags: make(map[int64]*models.Tag)}
}

func (m *MockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	m.NextID++
	tag.ID = m.NextID
	tag.CreatedAt = time.Now()
	tag.UpdatedAt = tag.CreatedAt
	stored := *tag
	m.Tags[tag.ID] = &stored
	return nil
}

func (m *MockTagRepository) Update(ctx context.Context, tag *models.Tag) (bool, error) {
	if m.ForcedErr != nil {
		return false, m.ForcedErr
	}
	if _, ok := m.Tags[tag.ID]; !ok {
		return false, nil
	}
	tag.UpdatedAt = time.Now()
	stored := *tag
	m.Tags[tag.ID] = &stored
	return true, nil
}

func (m *MockTagRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.ForcedErr != nil {
		return false, m.ForcedErr
	}
	if _, ok := m.Tags[id]; !ok {
		return false, nil
	}
	delete(m.Tags, id)
	return true, nil
}

func (m *MockTagRepository) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	t, ok := m.Tags[id]
	if !ok {
		return nil, nil
	}
	out := *t
	return &out, nil
}

func (m *MockTagRepository) List(ctx context.Context, activeOnly bool) ([]*models.Tag, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	var out []*models.Tag
	for _, t := range m.Tags {
		if activeOnly && !t.IsActive {
			continue
		}
		tt := *t
		out = append(out, &tt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// MockClassificationRepository is an in-memory implementation of
// ClassificationRepository; List orders by priority ascending
type MockClassificationRepository struct {
	Classifications map[int64]*models.Classification
	NextID          int64
	ForcedErr       error
}

func NewMockClassificationRepository() *MockClassificationRepository {
	return &MockClassificationRepository{Classifications: make(map[int64]*models.Classification)}
}

func (m *MockClassificationRepository) Create(ctx context.Context, classification *models.Classification) error {
	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	m.NextID++
	classification.ID = m.NextID
	classification.CreatedAt = time.Now()
	classification.UpdatedAt = classification.CreatedAt
	stored := *classification
	m.Classifications[classification.ID] = &stored
	return nil
}

func (m *MockClassificationRepository) Update(ctx context.Context, classification *models.Classification) (bool, error) {
	if m.ForcedErr != nil {
		return false, m.ForcedErr
	}
	if _, ok := m.Classifications[classification.ID]; !ok {
		return false, nil
	}
	classification.UpdatedAt = time.Now()
	stored := *classification
	m.Classifications[classification.ID] = &stored
	return true, nil
}

func (m *MockClassificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.ForcedErr != nil {
		return false, m.ForcedErr
	}
	if _, ok := m.Classifications[id]; !ok {
		return false, nil
	}
	delete(m.Classifications, id)
	return true, nil
}

func (m *MockClassificationRepository) GetByID(ctx context.Context, id int64) (*models.Classification, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	cl, ok := m.Classifications[id]
	if !ok {
		return nil, nil
	}
	out := *cl
	return &out, nil
}

func (m *MockClassificationRepository) List(ctx context.Context, activeOnly bool) ([]*models.Classification, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	var out []*models.Classification
	for _, cl := range m.Classifications {
		if activeOnly && !cl.IsActive {
			continue
		}
		cc := *cl
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
