package model

// Product is an inventory record as returned by GET /api/products/all.
type Product struct {
	ID          Text    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       Count   `json:"stock"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Provider    string  `json:"provider,omitempty"`
	Status      string  `json:"status"`
}

// ProductID returns the record identifier for row actions.
func ProductID(p Product) string { return string(p.ID) }
