package domain

// =============================================================================
// CART DOMAIN TYPES
// =============================================================================

var (
	ErrCartItemNotFound = &Error{Code: ENOTFOUND, Message: "Cart item not found"}
	ErrEmptyCart        = &Error{Code: EINVALID, Message: "Cart is empty"}
	ErrInvalidQuantity  = &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
)

// CartItem pairs a product snapshot with a quantity.
// The snapshot is copied at add time; later catalog edits do not affect it.
// A cart holds at most one item per product ID.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns price * quantity for this line.
func (i CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// CartSummary is the view returned to clients: the ordered item list with
// derived totals recomputed from the items on every read.
type CartSummary struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}
