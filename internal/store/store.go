package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FieldCreatedAt is the server-assigned creation timestamp and the sole
// sort key for list queries.
const FieldCreatedAt = "createdAt"

var (
	// ErrUnavailable marks a failed read. Callers must not conflate it
	// with an empty result.
	ErrUnavailable = errors.New("store: unavailable")

	// ErrWrite marks a failed create, delete or singleton write.
	ErrWrite = errors.New("store: write failed")
)

// Document is one record read back from a collection.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Store is a thin layer over Firestore: ordered list, create with a
// server-assigned ID and timestamp, idempotent delete, and singleton
// get/set with merge semantics. It owns no schema; feature repositories
// decode Document data into their own types.
type Store struct {
	client *firestore.Client
}

func New(client *firestore.Client) *Store {
	return &Store{client: client}
}

// ListAll returns every document in the collection ordered by creation
// time descending. An empty collection yields an empty slice, never an
// error; a transport or permission failure yields ErrUnavailable.
func (s *Store) ListAll(ctx context.Context, collection string) ([]Document, error) {
	iter := s.client.Collection(collection).
		OrderBy(FieldCreatedAt, firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	out := make([]Document, 0, 16)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: list %s: %v", ErrUnavailable, collection, err)
		}
		out = append(out, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return out, nil
}

// Create adds a document with a store-generated ID. The creation timestamp
// is assigned by the server at write time, never by this process.
func (s *Store) Create(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload[FieldCreatedAt] = firestore.ServerTimestamp

	ref, _, err := s.client.Collection(collection).Add(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("%w: create in %s: %v", ErrWrite, collection, err)
	}
	return ref.ID, nil
}

// Delete removes a document by ID. Deleting an absent ID succeeds; the
// store treats the delete as a no-op and so do we.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("%w: delete %s/%s: %v", ErrWrite, collection, id, err)
	}
	return nil
}

// GetSingleton reads the fixed-key document. A document that does not
// exist yet reads as an empty field map.
func (s *Store) GetSingleton(ctx context.Context, collection, key string) (map[string]interface{}, error) {
	snap, err := s.client.Collection(collection).Doc(key).Get(ctx)
	if snap != nil && !snap.Exists() {
		return map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s/%s: %v", ErrUnavailable, collection, key, err)
	}
	return snap.Data(), nil
}

// SetSingleton writes the fixed-key document with merge semantics:
// fields absent from the payload are preserved. The first write creates
// the document.
func (s *Store) SetSingleton(ctx context.Context, collection, key string, fields map[string]interface{}) error {
	if _, err := s.client.Collection(collection).Doc(key).Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("%w: set %s/%s: %v", ErrWrite, collection, key, err)
	}
	return nil
}

// Ping verifies the store is reachable by reading one singleton document.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.GetSingleton(ctx, CollectionSettings, SettingsProfileKey)
	return err
}
