package model

// Sale is a sales record as returned by GET /api/sales/all.
// Total is nullable on the backend.
type Sale struct {
	ID      Text      `json:"id"`
	Name    string    `json:"name"`
	Payment string    `json:"payment"`
	Total   *float64  `json:"total"`
	Status  string    `json:"status"`
	Sale    Timestamp `json:"sale,omitempty"`
}

// SaleID returns the record identifier for row actions.
func SaleID(s Sale) string { return string(s.ID) }
