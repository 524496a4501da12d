package popular

// Item is one entry of the popularity ranking: purchase count from the
// payment ledger merged with catalog metadata and one representative
// image.
type Item struct {
	ProductID   int     `json:"productId"`
	Name        string  `json:"productName"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	BrandName   string  `json:"brandName"`
	Image       *string `json:"image,omitempty"`
	Purchases   int     `json:"purchases"`
}

// ProductCount is a raw aggregate row: how many payment records
// reference a product.
type ProductCount struct {
	ProductID int
	Purchases int
}

// CatalogInfo is the metadata fetched for ranked products in one
// batched lookup.
type CatalogInfo struct {
	Name        string
	Size        string
	Price       float64
	Description string
	BrandName   string
	Image       *string
}
