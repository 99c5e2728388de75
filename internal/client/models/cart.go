package models

// CartEntry is one (product, quantity) pairing in the local or remote cart.
// AddedAt is epoch milliseconds, matching the backend representation.
// Invariant: at most one entry per ProductID, quantity >= 1.
type CartEntry struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
	AddedAt   int64 `json:"addedAt"`
}

// Product is a read-only catalog record, fetched on demand to price and
// display cart entries.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Stock       int     `json:"stock,omitempty"`
}

// ProductPage is one page of a product listing or search result.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}
