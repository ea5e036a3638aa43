package repository

import (
	"context"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
	"github.com/devfolio/portfolio-backend/internal/store"
)

type Repo struct {
	store *store.Store
}

func NewRepo(s *store.Store) *Repo {
	return &Repo{store: s}
}

// List returns all projects newest first. Ordering comes from the store's
// createdAt index; there is no secondary sort key and no pagination.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	docs, err := r.store.ListAll(ctx, store.CollectionProjects)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decodeProject(doc))
	}
	return out, nil
}

// Create writes a new project and returns its store-assigned ID.
func (r *Repo) Create(ctx context.Context, draft domain.Draft) (string, error) {
	fields := map[string]interface{}{
		store.FieldTitle:       draft.Title,
		store.FieldDescription: draft.Description,
		store.FieldTags:        draft.Tags,
		store.FieldImage:       draft.Image,
		store.FieldRepoURL:     draft.RepoURL,
		store.FieldLiveURL:     draft.LiveURL,
	}
	return r.store.Create(ctx, store.CollectionProjects, fields)
}

// Delete removes a project. Absent IDs are a no-op, not an error.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionProjects, id)
}

func decodeProject(doc store.Document) domain.Project {
	return domain.Project{
		ID:          doc.ID,
		Title:       doc.String(store.FieldTitle),
		Description: doc.String(store.FieldDescription),
		Tags:        doc.StringSlice(store.FieldTags),
		Image:       doc.String(store.FieldImage),
		RepoURL:     doc.String(store.FieldRepoURL),
		LiveURL:     doc.String(store.FieldLiveURL),
		CreatedAt:   doc.Time(store.FieldCreatedAt),
	}
}
