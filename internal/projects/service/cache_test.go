package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/portfolio-backend/internal/cache"
	"github.com/devfolio/portfolio-backend/internal/images"
	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

type countingRepo struct {
	fakeRepo
	listCalls int
}

func (c *countingRepo) List(ctx context.Context) ([]domain.Project, error) {
	c.listCalls++
	return c.fakeRepo.List(ctx)
}

func newCachedService(t *testing.T, repo Repository) *Service {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	pipeline, err := images.NewPipeline(100, 0.8)
	require.NoError(t, err)

	return NewService(repo, pipeline, cache.New(client, time.Minute))
}

func TestList_SecondReadServedFromCache(t *testing.T) {
	repo := &countingRepo{fakeRepo: fakeRepo{projects: []domain.Project{{ID: "p1", Title: "Demo"}}}}
	svc := newCachedService(t, repo)
	ctx := context.Background()

	first, err := svc.List(ctx)
	require.NoError(t, err)

	second, err := svc.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls, "second read must hit the cache")
}

func TestCreate_InvalidatesListCache(t *testing.T) {
	repo := &countingRepo{fakeRepo: fakeRepo{projects: []domain.Project{{ID: "p1"}}}}
	svc := newCachedService(t, repo)
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateInput{Title: "New", Description: "desc"})
	require.NoError(t, err)

	_, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls, "create must drop the cached list")
}

func TestDelete_InvalidatesListCache(t *testing.T) {
	repo := &countingRepo{fakeRepo: fakeRepo{projects: []domain.Project{{ID: "p1"}}}}
	svc := newCachedService(t, repo)
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "p1"))

	_, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestRefresh_PrimesCache(t *testing.T) {
	repo := &countingRepo{fakeRepo: fakeRepo{projects: []domain.Project{{ID: "p1"}}}}
	svc := newCachedService(t, repo)
	ctx := context.Background()

	require.NoError(t, svc.Refresh(ctx))

	_, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "list after refresh must be a cache hit")
}
