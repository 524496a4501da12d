package product

import "github.com/buildware/market-backend/internal/query"

// DefaultMaxPrice is the upper price sentinel applied when a request
// carries no maxPrice: an absent bound is an open range, not a
// zero-width one.
const DefaultMaxPrice = 1_000_000

// Filter holds the optional product predicates a request may carry.
// Predicates compose conjunctively.
type Filter struct {
	MinPrice   *float64
	MaxPrice   *float64
	CategoryID *int
	StoreID    *int
	Search     string
}

// Conditions renders the filter as SQL conditions against the
// products table aliased as p.
//
// Search is a case-insensitive substring match on the product name.
// When a search term is present the price bounds are not applied: the
// search endpoint has never combined the two predicates.
func (f Filter) Conditions() []query.Condition {
	conds := make([]query.Condition, 0, 4)

	if f.Search != "" {
		conds = append(conds, query.ILike("p.name", f.Search))
	} else {
		minPrice := 0.0
		if f.MinPrice != nil {
			minPrice = *f.MinPrice
		}
		maxPrice := float64(DefaultMaxPrice)
		if f.MaxPrice != nil {
			maxPrice = *f.MaxPrice
		}
		conds = append(conds, query.Gte("p.price", minPrice), query.Lte("p.price", maxPrice))
	}

	if f.CategoryID != nil {
		conds = append(conds, query.Exists(
			"SELECT 1 FROM product_categories pc WHERE pc.product_id = p.id AND pc.category_id = $%d",
			*f.CategoryID,
		))
	}
	if f.StoreID != nil {
		conds = append(conds, query.Eq("p.store_id", *f.StoreID))
	}
	return conds
}
