package repository

import (
	"context"

	"github.com/devfolio/portfolio-backend/internal/messages/domain"
	"github.com/devfolio/portfolio-backend/internal/store"
)

type Repo struct {
	store *store.Store
}

func NewRepo(s *store.Store) *Repo {
	return &Repo{store: s}
}

// List returns all messages newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Message, error) {
	docs, err := r.store.ListAll(ctx, store.CollectionMessages)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Message, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decodeMessage(doc))
	}
	return out, nil
}

// Create writes a new message and returns its store-assigned ID.
func (r *Repo) Create(ctx context.Context, draft domain.Draft) (string, error) {
	fields := map[string]interface{}{
		store.FieldName:  draft.Name,
		store.FieldEmail: draft.Email,
		store.FieldBody:  draft.Body,
		store.FieldRead:  false,
	}
	return r.store.Create(ctx, store.CollectionMessages, fields)
}

// Delete removes a message; absent IDs are a no-op.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionMessages, id)
}

func decodeMessage(doc store.Document) domain.Message {
	return domain.Message{
		ID:        doc.ID,
		Name:      doc.String(store.FieldName),
		Email:     doc.String(store.FieldEmail),
		Body:      doc.String(store.FieldBody),
		Read:      doc.Bool(store.FieldRead),
		CreatedAt: doc.Time(store.FieldCreatedAt),
	}
}
