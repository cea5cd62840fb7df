package domain

// CartProduct is one line of a cart request
type CartProduct struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PaymentRequest selects a payment strategy
type PaymentRequest struct {
	Method    string `json:"method"`
	Reference string `json:"reference,omitempty"`
}

// CheckoutRequest is the body of POST /api/carts
type CheckoutRequest struct {
	Products []CartProduct   `json:"products"`
	Payment  *PaymentRequest `json:"payment,omitempty"`
}

// CheckoutResponse is the saved cart, its invoice and an optional receipt
type CheckoutResponse struct {
	CartID  string  `json:"cart_id"`
	Total   float64 `json:"total"`
	Invoice string  `json:"invoice"`
	Receipt string  `json:"receipt,omitempty"`
}
