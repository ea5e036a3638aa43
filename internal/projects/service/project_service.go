package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/devfolio/portfolio-backend/internal/cache"
	"github.com/devfolio/portfolio-backend/internal/images"
	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

// ErrInvalid marks input rejected before any store write.
var ErrInvalid = errors.New("projects: invalid input")

// Repository is the store surface the service needs.
type Repository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, draft domain.Draft) (string, error)
	Delete(ctx context.Context, id string) error
}

// CreateInput carries the raw admin form fields. Tags arrive as one
// comma-separated string, the way the form submits them.
type CreateInput struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Tags        string
	RepoURL     string `validate:"omitempty,url"`
	LiveURL     string `validate:"omitempty,url"`
	ImageData   []byte
}

type Service struct {
	repo     Repository
	pipeline *images.Pipeline
	cache    *cache.Cache
	validate *validator.Validate
}

func NewService(repo Repository, pipeline *images.Pipeline, c *cache.Cache) *Service {
	return &Service{
		repo:     repo,
		pipeline: pipeline,
		cache:    c,
		validate: validator.New(),
	}
}

// List serves the public projects page: cache first, store on a miss.
// A store failure propagates; it is never disguised as an empty list.
func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	var cached []domain.Project
	hit, err := s.cache.GetJSON(ctx, cache.KeyProjects, &cached)
	if err != nil {
		log.Printf("projects: cache read failed, falling through to store: %v", err)
	}
	if hit {
		return cached, nil
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, cache.KeyProjects, list); err != nil {
		log.Printf("projects: cache fill failed: %v", err)
	}
	return list, nil
}

// Create validates the form, runs the optional image through the
// ingestion pipeline and writes the project. Invalid input never reaches
// the store.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if err := s.validate.Struct(in); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	draft := domain.Draft{
		Title:       in.Title,
		Description: in.Description,
		Tags:        domain.ParseTags(in.Tags),
		RepoURL:     strings.TrimSpace(in.RepoURL),
		LiveURL:     strings.TrimSpace(in.LiveURL),
	}

	if len(in.ImageData) > 0 {
		encoded, err := s.pipeline.Ingest(in.ImageData)
		if err != nil {
			return "", err
		}
		draft.Image = encoded
	}

	id, err := s.repo.Create(ctx, draft)
	if err != nil {
		return "", err
	}

	s.invalidate(ctx)
	return id, nil
}

// Delete removes a project. Deleting an absent ID succeeds.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id required", ErrInvalid)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// Refresh re-primes the projects cache from the store. Wired into the
// cache warmer schedule.
func (s *Service) Refresh(ctx context.Context) error {
	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	return s.cache.SetJSON(ctx, cache.KeyProjects, list)
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.KeyProjects); err != nil {
		log.Printf("projects: cache invalidation failed: %v", err)
	}
}
