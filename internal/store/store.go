package store

// Store is a seller's shop. Like Category it acts as a scoping entity
// for product listings.
type Store struct {
	ID       int      `json:"storeId"`
	Name     string   `json:"storeName"`
	City     string   `json:"city"`
	Country  string   `json:"country"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	LogoPath *string  `json:"logo,omitempty"`
}
