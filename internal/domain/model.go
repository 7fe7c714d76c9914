package domain

import "time"

// BeverageSize is one purchasable size of a beverage. Price is in dollars.
type BeverageSize struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Oz    float64 `json:"oz"`
}

// Beverage is a catalog entity owned by the remote catalog service. The
// client only ever holds a read-only cached copy.
type Beverage struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Sizes       []BeverageSize `json:"sizes"`
	New         bool           `json:"new,omitempty"`
}

// Size returns the size with the given id, if the beverage has one.
func (b Beverage) Size(sizeID string) (BeverageSize, bool) {
	for _, s := range b.Sizes {
		if s.ID == sizeID {
			return s, true
		}
	}
	return BeverageSize{}, false
}

// CartItem is a cart line. (BeverageID, SizeID) is its composite identity;
// name, size name and price are denormalized copies frozen at add time.
type CartItem struct {
	BeverageID string  `json:"beverageId"`
	SizeID     string  `json:"sizeId"`
	Quantity   int     `json:"quantity"`
	Name       string  `json:"name"`
	SizeName   string  `json:"sizeName"`
	Price      float64 `json:"price"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Order is the persisted record created by the remote order service. ID is
// assigned by the service; OrderNumber is the client-generated display code.
// Status transitions are owned by the service, not by this client.
type Order struct {
	ID          string       `json:"id"`
	OrderNumber string       `json:"orderNumber"`
	Customer    CustomerInfo `json:"customer"`
	Items       []CartItem   `json:"items"`
	TotalAmount float64      `json:"totalAmount"`
	Status      OrderStatus  `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
}
