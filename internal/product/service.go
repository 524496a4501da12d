package product

import (
	"errors"
	"strings"

	"github.com/buildware/market-backend/internal/pagination"
	"github.com/buildware/market-backend/internal/review"
)

var (
	// ErrPageNotFound marks a page number past the last page of a
	// non-empty result set. An empty result set is not an error.
	ErrPageNotFound     = errors.New("page not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrStoreNotFound    = errors.New("store not found")
	ErrSearchTerm       = errors.New("search term is required")
)

// CategoryGuard and StoreGuard verify scoping entities before a
// product query runs, so a missing category or store is reported
// distinctly from "no products matched".
type CategoryGuard interface {
	Exists(id int) (bool, error)
}

type StoreGuard interface {
	Exists(id int) (bool, error)
}

// ReviewNester supplies one page of reviews with per-review comment
// pages for the product detail view.
type ReviewNester interface {
	NestedForProduct(productID, reviewPage, reviewLimit, commentPage, commentLimit int) ([]review.ReviewWithComments, error)
}

// Service is the catalog view composer: it turns filter and pagination
// parameters into bounded, enriched product views.
type Service struct {
	repo       Repository
	categories CategoryGuard
	stores     StoreGuard
	reviews    ReviewNester
}

func NewService(repo Repository, categories CategoryGuard, stores StoreGuard, reviews ReviewNester) *Service {
	return &Service{repo: repo, categories: categories, stores: stores, reviews: reviews}
}

// List returns one page of products matching the filter, newest first.
// A valid filter with zero matches is a success with an empty page; a
// page number beyond a non-empty set is ErrPageNotFound.
func (s *Service) List(f Filter, page, limit int) (ListResult, error) {
	total, err := s.repo.Count(f)
	if err != nil {
		return ListResult{}, err
	}

	res := pagination.Paginate(page, limit, total)
	if total == 0 {
		return ListResult{Products: []Product{}, Total: 0, CurrentPage: page, MaxPageCount: 0}, nil
	}
	if !res.InRange {
		return ListResult{}, ErrPageNotFound
	}

	products, err := s.repo.List(f, res.Window)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{
		Products:     products,
		Total:        total,
		CurrentPage:  page,
		MaxPageCount: res.MaxPage,
	}, nil
}

// ByCategory lists products in a category. The category must exist;
// its absence is a not-found distinct from an empty listing.
func (s *Service) ByCategory(categoryID int, f Filter, page, limit int) (ListResult, error) {
	ok, err := s.categories.Exists(categoryID)
	if err != nil {
		return ListResult{}, err
	}
	if !ok {
		return ListResult{}, ErrCategoryNotFound
	}
	f.CategoryID = &categoryID
	return s.List(f, page, limit)
}

// ByStore lists a store's products, validating the store first.
func (s *Service) ByStore(storeID int, f Filter, page, limit int) (ListResult, error) {
	ok, err := s.stores.Exists(storeID)
	if err != nil {
		return ListResult{}, err
	}
	if !ok {
		return ListResult{}, ErrStoreNotFound
	}
	f.StoreID = &storeID
	return s.List(f, page, limit)
}

// Search lists products whose name contains the term. An absent term
// is a client error: search without a term is invalid.
func (s *Service) Search(term string, page, limit int) (ListResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return ListResult{}, ErrSearchTerm
	}
	return s.List(Filter{Search: term}, page, limit)
}

// SearchInStore is the admin variant of Search scoped to the caller's
// own store.
func (s *Service) SearchInStore(storeID int, term string, page, limit int) (ListResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return ListResult{}, ErrSearchTerm
	}
	ok, err := s.stores.Exists(storeID)
	if err != nil {
		return ListResult{}, err
	}
	if !ok {
		return ListResult{}, ErrStoreNotFound
	}
	return s.List(Filter{Search: term, StoreID: &storeID}, page, limit)
}

// Detail returns one product with one page of reviews, each carrying
// one page of its own comments. An absent product is a hard not-found;
// nested windows past the end render as empty sequences.
func (s *Service) Detail(productID, reviewPage, reviewLimit, commentPage, commentLimit int) (Detail, error) {
	p, err := s.repo.GetByID(productID)
	if err != nil {
		return Detail{}, err
	}

	reviews, err := s.reviews.NestedForProduct(productID, reviewPage, reviewLimit, commentPage, commentLimit)
	if err != nil {
		return Detail{}, err
	}
	if reviews == nil {
		reviews = []review.ReviewWithComments{}
	}
	return Detail{Product: p, Reviews: reviews}, nil
}
