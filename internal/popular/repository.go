package popular

import (
	"sort"
	"sync"
)

type Repository interface {
	// TopProductCounts aggregates the payment ledger by product and
	// returns the n most purchased, ordered by count descending with
	// ascending product id as the deterministic tie-break.
	TopProductCounts(n int) ([]ProductCount, error)
	// CatalogByIDs resolves product metadata for all ids in one call.
	// Ids with no product row are simply absent from the result.
	CatalogByIDs(ids []int) (map[int]CatalogInfo, error)
}

// InMemoryRepository aggregates over a payment slice; products deleted
// from the catalog map model dangling ledger references.
type InMemoryRepository struct {
	mu sync.RWMutex
	// PaymentProductIDs is the append-only ledger reduced to the only
	// field the ranker reads.
	PaymentProductIDs []int
	Products          map[int]CatalogInfo
}

func NewInMemoryRepository(paymentProductIDs []int, products map[int]CatalogInfo) *InMemoryRepository {
	return &InMemoryRepository{PaymentProductIDs: paymentProductIDs, Products: products}
}

func (r *InMemoryRepository) TopProductCounts(n int) ([]ProductCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[int]int{}
	for _, id := range r.PaymentProductIDs {
		counts[id]++
	}
	out := make([]ProductCount, 0, len(counts))
	for id, c := range counts {
		out = append(out, ProductCount{ProductID: id, Purchases: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Purchases != out[j].Purchases {
			return out[i].Purchases > out[j].Purchases
		}
		return out[i].ProductID < out[j].ProductID
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (r *InMemoryRepository) CatalogByIDs(ids []int) (map[int]CatalogInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int]CatalogInfo, len(ids))
	for _, id := range ids {
		if info, ok := r.Products[id]; ok {
			out[id] = info
		}
	}
	return out, nil
}
