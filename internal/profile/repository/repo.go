package repository

import (
	"context"

	"github.com/devfolio/portfolio-backend/internal/profile/domain"
	"github.com/devfolio/portfolio-backend/internal/store"
)

type Repo struct {
	store *store.Store
}

func NewRepo(s *store.Store) *Repo {
	return &Repo{store: s}
}

// Get reads the profile singleton. Before the first save it reads as a
// zero-value Profile, which is not an error.
func (r *Repo) Get(ctx context.Context) (domain.Profile, error) {
	data, err := r.store.GetSingleton(ctx, store.CollectionSettings, store.SettingsProfileKey)
	if err != nil {
		return domain.Profile{}, err
	}

	image, _ := data[store.FieldImage].(string)
	return domain.Profile{Image: image}, nil
}

// SetImage overwrites the image field in place. Merge semantics: other
// fields of the settings document are left untouched.
func (r *Repo) SetImage(ctx context.Context, image string) error {
	return r.store.SetSingleton(ctx, store.CollectionSettings, store.SettingsProfileKey, map[string]interface{}{
		store.FieldImage: image,
	})
}
