package product

import (
	"time"

	"github.com/buildware/market-backend/internal/review"
)

// Product represents a catalog product. StoreName and Images are
// enrichment fields filled by the read queries, not columns of the
// product row itself.
type Product struct {
	ID          int       `json:"productId"`
	Name        string    `json:"productName"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Size        string    `json:"size"`
	BrandName   string    `json:"brandName"`
	Quantity    int       `json:"quantity"`
	StoreID     int       `json:"storeId"`
	StoreName   string    `json:"storeName,omitempty"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListResult is one page of products with pagination metadata.
type ListResult struct {
	Products     []Product `json:"products"`
	Total        int       `json:"total"`
	CurrentPage  int       `json:"currentPage"`
	MaxPageCount int       `json:"maxPageCount"`
}

// Detail is a single product with one page of reviews, each carrying
// one page of its own comments.
type Detail struct {
	Product
	Reviews []review.ReviewWithComments `json:"reviews"`
}
