package product

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/buildware/market-backend/internal/pagination"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	Count(f Filter) (int, error)
	// List returns one window of products matching the filter, ordered
	// newest first with ascending id as tie-break, enriched with store
	// name and image paths.
	List(f Filter, w pagination.Window) ([]Product, error)
	GetByID(id int) (Product, error)
}

// InMemoryRepository mirrors the Postgres filter semantics for tests:
// inclusive price bounds, case-insensitive substring search, exact
// category/store scoping.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
	// Categories maps product id to the category ids it belongs to.
	Categories map[int][]int
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{
		storage:    make([]Product, 0, len(seed)),
		Categories: map[int][]int{},
	}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) Count(f Filter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matched(f)), nil
}

func (r *InMemoryRepository) List(f Filter, w pagination.Window) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := r.matched(f)
	if w.Offset >= len(matched) {
		return []Product{}, nil
	}
	end := w.Offset + w.Limit
	if end > len(matched) {
		end = len(matched)
	}
	out := make([]Product, end-w.Offset)
	copy(out, matched[w.Offset:end])
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) matched(f Filter) []Product {
	out := make([]Product, 0)
	for _, p := range r.storage {
		if !r.matches(f, p) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *InMemoryRepository) matches(f Filter, p Product) bool {
	if f.Search != "" {
		if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			return false
		}
	} else {
		minPrice := 0.0
		if f.MinPrice != nil {
			minPrice = *f.MinPrice
		}
		maxPrice := float64(DefaultMaxPrice)
		if f.MaxPrice != nil {
			maxPrice = *f.MaxPrice
		}
		if p.Price < minPrice || p.Price > maxPrice {
			return false
		}
	}
	if f.StoreID != nil && p.StoreID != *f.StoreID {
		return false
	}
	if f.CategoryID != nil {
		found := false
		for _, catID := range r.Categories[p.ID] {
			if catID == *f.CategoryID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
