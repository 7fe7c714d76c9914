// Package cart owns the in-memory line items of a single shopping session.
package cart

import (
	"errors"
	"sync"

	"beverage-storefront/internal/domain"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

// Cart is the aggregation engine for one session. It is explicitly owned by
// whoever created it and injected into its consumers; there is no process-wide
// cart. At most one line exists per (beverageID, sizeID) pair; every mutator
// maintains that invariant. Safe for concurrent use.
type Cart struct {
	mu    sync.RWMutex
	items []domain.CartItem
}

func New() *Cart { return &Cart{} }

// Add merges quantity into the line for (beverage, size), creating the line
// on first add. Name and price are captured from the size at this moment and
// never re-read from the catalog. Repeated adds accumulate quantity.
func (c *Cart) Add(beverage domain.Beverage, size domain.BeverageSize, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].BeverageID == beverage.ID && c.items[i].SizeID == size.ID {
			c.items[i].Quantity += quantity
			return nil
		}
	}
	c.items = append(c.items, domain.CartItem{
		BeverageID: beverage.ID,
		SizeID:     size.ID,
		Quantity:   quantity,
		Name:       beverage.Name,
		SizeName:   size.Name,
		Price:      size.Price,
	})
	return nil
}

// UpdateQuantity overwrites the quantity of the matching line. Zero or below
// removes the line. Unknown keys are a no-op.
func (c *Cart) UpdateQuantity(beverageID, sizeID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].BeverageID == beverageID && c.items[i].SizeID == sizeID {
			if quantity <= 0 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			} else {
				c.items[i].Quantity = quantity
			}
			return
		}
	}
}

// Remove deletes the matching line if present. Idempotent.
func (c *Cart) Remove(beverageID, sizeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].BeverageID == beverageID && c.items[i].SizeID == sizeID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the lines in first-add order. Quantity updates do
// not reorder lines.
func (c *Cart) Items() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// Subtotal is the pre-tax sum of price*quantity over all lines, using the
// frozen per-line price.
func (c *Cart) Subtotal() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0.0
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
