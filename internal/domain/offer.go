package domain

// Offer is a subscription plan (e.g. Mobile, Internet, Professional).
type Offer struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
