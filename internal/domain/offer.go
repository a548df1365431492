package domain

type Offer struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Discount    string `json:"discount"` // free text, e.g. "15%" or "₹500"
	ValidTill   string `json:"validTill"`
	Active      bool   `json:"active"`
	Description string `json:"description,omitempty"`
}
