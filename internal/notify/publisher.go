// Package notify publishes storefront order events to the message broker.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"beverage-storefront/internal/connections/rabbitmq"
	"beverage-storefront/internal/domain"
)

type orderConfirmedEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	ItemCount   int       `json:"item_count"`
	TotalAmount float64   `json:"total_amount"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// Publisher emits an event per confirmed order on the fanout exchange.
type Publisher struct {
	mq *rabbitmq.Client
}

func NewPublisher(mq *rabbitmq.Client) *Publisher { return &Publisher{mq: mq} }

func (p *Publisher) OrderConfirmed(ctx context.Context, order domain.Order) error {
	count := 0
	for _, it := range order.Items {
		count += it.Quantity
	}
	body, err := json.Marshal(orderConfirmedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		ItemCount:   count,
		TotalAmount: order.TotalAmount,
		ConfirmedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}
	if err := p.mq.Publish(ctx, rabbitmq.OrderEventsExchange, "", body); err != nil {
		return fmt.Errorf("publish order event: %w", err)
	}
	return nil
}
