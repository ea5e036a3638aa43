package service

import (
	"context"
	"errors"
	"log"

	"github.com/devfolio/portfolio-backend/internal/cache"
	"github.com/devfolio/portfolio-backend/internal/images"
	"github.com/devfolio/portfolio-backend/internal/profile/domain"
)

// ErrNoImage is returned when an upload arrives without file data.
var ErrNoImage = errors.New("profile: image data required")

type Repository interface {
	Get(ctx context.Context) (domain.Profile, error)
	SetImage(ctx context.Context, image string) error
}

type Service struct {
	repo     Repository
	pipeline *images.Pipeline
	cache    *cache.Cache
}

func NewService(repo Repository, pipeline *images.Pipeline, c *cache.Cache) *Service {
	return &Service{repo: repo, pipeline: pipeline, cache: c}
}

// Get serves the public profile read: cache first, store on a miss.
func (s *Service) Get(ctx context.Context) (domain.Profile, error) {
	var cached domain.Profile
	hit, err := s.cache.GetJSON(ctx, cache.KeyProfile, &cached)
	if err != nil {
		log.Printf("profile: cache read failed, falling through to store: %v", err)
	}
	if hit {
		return cached, nil
	}

	p, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Profile{}, err
	}

	if err := s.cache.SetJSON(ctx, cache.KeyProfile, p); err != nil {
		log.Printf("profile: cache fill failed: %v", err)
	}
	return p, nil
}

// SetImage runs the upload through the ingestion pipeline and overwrites
// the singleton's image field. A pipeline failure aborts before any write.
func (s *Service) SetImage(ctx context.Context, data []byte) (domain.Profile, error) {
	if len(data) == 0 {
		return domain.Profile{}, ErrNoImage
	}

	encoded, err := s.pipeline.Ingest(data)
	if err != nil {
		return domain.Profile{}, err
	}

	if err := s.repo.SetImage(ctx, encoded); err != nil {
		return domain.Profile{}, err
	}

	if err := s.cache.Invalidate(ctx, cache.KeyProfile); err != nil {
		log.Printf("profile: cache invalidation failed: %v", err)
	}
	return domain.Profile{Image: encoded}, nil
}
