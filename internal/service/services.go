package service

import (
	"errors"

	"github.com/parasport-hub/content-api/internal/config"
	"github.com/parasport-hub/content-api/internal/repository"
	"github.com/rs/zerolog"
)

// Sentinel errors surfaced to the HTTP layer for status mapping
var (
	// ErrNotFound is returned when an operation targets an id or slug
	// that does not resolve to a row
	ErrNotFound = errors.New("not found")

	// ErrInvalidStatus is returned for a status outside draft/published/archived
	ErrInvalidStatus = errors.New("invalid status")

	// ErrSlugExhausted is returned when the slug probe gives up; the
	// unique index on slug remains the backstop
	ErrSlugExhausted = errors.New("could not allocate a unique slug")
)

// Services holds all service interfaces
type Services struct {
	News     NewsService
	Taxonomy TaxonomyService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		News:     newNewsService(repos, cfg, log),
		Taxonomy: newTaxonomyService(repos, log),
	}
}
