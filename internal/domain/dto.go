package domain

import "time"

// CreateOrderRequest is the POST /orders payload sent to the remote order
// service. Items are a value snapshot of the cart at submission time;
// TotalAmount is the pre-tax subtotal by convention of the order service.
type CreateOrderRequest struct {
	OrderNumber string       `json:"orderNumber"`
	Customer    CustomerInfo `json:"customer"`
	Items       []CartItem   `json:"items"`
	TotalAmount float64      `json:"totalAmount"`
	Status      OrderStatus  `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// AddItemRequest is the storefront API payload for putting a sized beverage
// into the session cart.
type AddItemRequest struct {
	BeverageID string `json:"beverageId"`
	SizeID     string `json:"sizeId"`
	Quantity   int    `json:"quantity"`
}

// UpdateItemRequest overwrites the quantity of an existing cart line.
// Quantity zero or below removes the line.
type UpdateItemRequest struct {
	BeverageID string `json:"beverageId"`
	SizeID     string `json:"sizeId"`
	Quantity   int    `json:"quantity"`
}

// CartView is the storefront API representation of the session cart.
type CartView struct {
	Items             []CartItem `json:"items"`
	ItemCount         int        `json:"itemCount"`
	Subtotal          float64    `json:"subtotal"`
	SubtotalFormatted string     `json:"subtotalFormatted"`
}
