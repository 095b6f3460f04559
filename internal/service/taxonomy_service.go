package service

import (
	"context"
	"fmt"

	"github.com/parasport-hub/content-api/internal/models"
	"github.com/parasport-hub/content-api/internal/repository"
	"github.com/rs/zerolog"
)

// TaxonomyService manages the categories, tags and classifications the
// admin back office feeds into the news service
type TaxonomyService interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]*models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, in *models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, in *models.CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListTags(ctx context.Context, activeOnly bool) ([]*models.Tag, error)
	GetTag(ctx context.Context, id int64) (*models.Tag, error)
	CreateTag(ctx context.Context, in *models.TagInput) (*models.Tag, error)
	UpdateTag(ctx context.Context, id int64, in *models.TagInput) (*models.Tag, error)
	DeleteTag(ctx context.Context, id int64) error

	ListClassifications(ctx context.Context, activeOnly bool) ([]*models.Classification, error)
	GetClassification(ctx context.Context, id int64) (*models.Classification, error)
	CreateClassification(ctx context.Context, in *models.ClassificationInput) (*models.Classification, error)
	UpdateClassification(ctx context.Context, id int64, in *models.ClassificationInput) (*models.Classification, error)
	DeleteClassification(ctx context.Context, id int64) error
}

type taxonomyService struct {
	categories      repository.CategoryRepository
	tags            repository.TagRepository
	classifications repository.ClassificationRepository
	log             zerolog.Logger
}

func newTaxonomyService(repos *repository.Repositories, log zerolog.Logger) TaxonomyService {
	return &taxonomyService{
		categories:      repos.Category,
		tags:            repos.Tag,
		classifications: repos.Classification,
		log:             log.With().Str("service", "taxonomy").Logger(),
	}
}

func (s *taxonomyService) ListCategories(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	return s.categories.List(ctx, activeOnly)
}

func (s *taxonomyService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *taxonomyService) CreateCategory(ctx context.Context, in *models.CategoryInput) (*models.Category, error) {
	c := &models.Category{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}

	if err := s.categories.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	s.log.Info().Int64("id", c.ID).Str("name", c.Name).Msg("Category created")
	return c, nil
}

func (s *taxonomyService) UpdateCategory(ctx context.Context, id int64, in *models.CategoryInput) (*models.Category, error) {
	c, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = in.Name
	if in.Description != nil {
		c.Description = in.Description
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}

	found, err := s.categories.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to update category %d: %w", id, err)
	}
	if !found {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *taxonomyService) DeleteCategory(ctx context.Context, id int64) error {
	found, err := s.categories.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *taxonomyService) ListTags(ctx context.Context, activeOnly bool) ([]*models.Tag, error) {
	return s.tags.List(ctx, activeOnly)
}

func (s *taxonomyService) GetTag(ctx context.Context, id int64) (*models.Tag, error) {
	t, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *taxonomyService) CreateTag(ctx context.Context, in *models.TagInput) (*models.Tag, error) {
	t := &models.Tag{Name: in.Name, IsActive: true}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}

	if err := s.tags.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	s.log.Info().Int64("id", t.ID).Str("name", t.Name).Msg("Tag created")
	return t, nil
}

func (s *taxonomyService) UpdateTag(ctx context.Context, id int64, in *models.TagInput) (*models.Tag, error) {
	t, err := s.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Name = in.Name
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}

	found, err := s.tags.Update(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to update tag %d: %w", id, err)
	}
	if !found {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *taxonomyService) DeleteTag(ctx context.Context, id int64) error {
	found, err := s.tags.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag %d: %w", id, err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *taxonomyService) ListClassifications(ctx context.Context, activeOnly bool) ([]*models.Classification, error) {
	return s.classifications.List(ctx, activeOnly)
}

func (s *taxonomyService) GetClassification(ctx context.Context, id int64) (*models.Classification, error) {
	cl, err := s.classifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, ErrNotFound
	}
	return cl, nil
}

func (s *taxonomyService) CreateClassification(ctx context.Context, in *models.ClassificationInput) (*models.Classification, error) {
	cl := &models.Classification{Name: in.Name, IsActive: true}
	if in.Priority != nil {
		cl.Priority = *in.Priority
	}
	if in.IsActive != nil {
		cl.IsActive = *in.IsActive
	}

	if err := s.classifications.Create(ctx, cl); err != nil {
		return nil, fmt.Errorf("failed to create classification: %w", err)
	}
	s.log.Info().Int64("id", cl.ID).Str("name", cl.Name).Int("priority", cl.Priority).Msg("Classification created")
	return cl, nil
}

func (s *taxonomyService) UpdateClassification(ctx context.Context, id int64, in *models.ClassificationInput) (*models.Classification, error) {
	cl, err := s.GetClassification(ctx, id)
	if err != nil {
		return nil, err
	}

	cl.Name = in.Name
	if in.Priority != nil {
		cl.Priority = *in.Priority
	}
	if in.IsActive != nil {
		cl.IsActive = *in.IsActive
	}

	found, err := s.classifications.Update(ctx, cl)
	if err != nil {
		return nil, fmt.Errorf("failed to update classification %d: %w", id, err)
	}
	if !found {
		return nil, ErrNotFound
	}
	return cl, nil
}

func (s *taxonomyService) DeleteClassification(ctx context.Context, id int64) error {
	found, err := s.classifications.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete classification %d: %w", id, err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
