package domain

// Product describes a purchasable plan on the hosted checkout page.
type Product struct {
	ID          string `json:"id"`
	PriceID     string `json:"price_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Mode        string `json:"mode"` // "payment" | "subscription"
	Price       string `json:"price"`
}
