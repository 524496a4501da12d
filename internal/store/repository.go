package store

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("store not found")

type Repository interface {
	List() ([]Store, error)
	GetByID(id int) (Store, error)
}

// InMemoryRepository backs handler tests without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Store
}

func NewInMemoryRepository(seed []Store) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Store, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() ([]Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Store, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.storage {
		if s.ID == id {
			return s, nil
		}
	}
	return Store{}, ErrNotFound
}
