package settings

import (
	"context"
	"maps"
	"sync"
)

// InMemoryRepository is a map-backed Repository used in tests and anywhere a
// durable store is not wanted.
type InMemoryRepository struct {
	mu   sync.Mutex
	data map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{data: make(map[string]string)}
}

func (r *InMemoryRepository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.data[key]
	return v, ok, nil
}

func (r *InMemoryRepository) Set(ctx context.Context, key string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.data), nil
}

func (r *InMemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[string]string)
	return nil
}

// Update applies fn to a scratch copy of the data and swaps it in only when
// fn succeeds, mirroring the transactional contract of the SQLite repository.
func (r *InMemoryRepository) Update(ctx context.Context, fn func(Repository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	scratch := &InMemoryRepository{data: maps.Clone(r.data)}
	if err := fn(scratch); err != nil {
		return err
	}
	r.data = scratch.data
	return nil
}
