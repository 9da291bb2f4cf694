package draft

import (
	"context"
	"encoding/json"
	"fmt"
)

// Backend is a string key value store, the shape of a browser's local storage
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store keeps json encoded drafts in a Backend
type Store struct {
	backend Backend
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load returns ErrNotFound when nothing is stored under key and ErrMalformed when the stored value is not a draft
func (s *Store) Load(ctx context.Context, key string) (Draft, error) {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		return Draft{}, fmt.Errorf("failed to get draft: %w", err)
	}
	if !ok {
		return Draft{}, ErrNotFound
	}

	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Draft{}, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	return d, nil
}

func (s *Store) Save(ctx context.Context, key string, d Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.backend.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to set draft: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.backend.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
