package review

import (
	"errors"
	"sort"
	"sync"

	"github.com/buildware/market-backend/internal/pagination"
)

var ErrNotFound = errors.New("review not found")

type Repository interface {
	CountByProduct(productID int) (int, error)
	// ListByProduct returns one window of a product's reviews ordered
	// newest first, ties broken by ascending id.
	ListByProduct(productID int, w pagination.Window) ([]Review, error)
	GetByID(id int) (Review, error)
	CountComments(reviewID int) (int, error)
	ListComments(reviewID int, w pagination.Window) ([]Comment, error)
}

// InMemoryRepository backs handler and service tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	reviews  []Review
	comments []Comment
}

func NewInMemoryRepository(reviews []Review, comments []Comment) *InMemoryRepository {
	r := &InMemoryRepository{}
	r.reviews = append(r.reviews, reviews...)
	r.comments = append(r.comments, comments...)
	return r
}

func (r *InMemoryRepository) CountByProduct(productID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *InMemoryRepository) ListByProduct(productID int, w pagination.Window) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]Review, 0)
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			matched = append(matched, rv)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})
	return window(matched, w), nil
}

func (r *InMemoryRepository) GetByID(id int) (Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rv := range r.reviews {
		if rv.ID == id {
			return rv, nil
		}
	}
	return Review{}, ErrNotFound
}

func (r *InMemoryRepository) CountComments(reviewID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, cm := range r.comments {
		if cm.ReviewID == reviewID {
			n++
		}
	}
	return n, nil
}

func (r *InMemoryRepository) ListComments(reviewID int, w pagination.Window) ([]Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]Comment, 0)
	for _, cm := range r.comments {
		if cm.ReviewID == reviewID {
			matched = append(matched, cm)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})
	return window(matched, w), nil
}

func window[T any](items []T, w pagination.Window) []T {
	if w.Offset >= len(items) {
		return []T{}
	}
	end := w.Offset + w.Limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-w.Offset)
	copy(out, items[w.Offset:end])
	return out
}
