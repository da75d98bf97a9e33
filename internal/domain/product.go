package domain

// Product is a sellable item attached to exactly one Offer. Offer is nil
// when the referenced offer no longer exists (offers are not cascade-deleted).
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Offer       *Offer  `json:"offer"`
}
