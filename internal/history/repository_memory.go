package history

import (
	"context"
	"sync"
)

// InMemoryRepository backs tests and DB-less deployments.
type InMemoryRepository struct {
	mu          sync.RWMutex
	generations map[string]*Generation
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		generations: make(map[string]*Generation),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, g *Generation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *g
	r.generations[g.ID] = &copied
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Generation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.generations[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id string, status string, reason *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.generations[id]
	if !ok {
		return ErrNotFound
	}
	g.Status = status
	g.Error = reason
	return nil
}
