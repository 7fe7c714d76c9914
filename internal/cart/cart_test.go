package cart

import (
	"testing"

	"beverage-storefront/internal/domain"
)

var (
	latte = domain.Beverage{
		ID:   "bev-1",
		Name: "Latte",
		Sizes: []domain.BeverageSize{
			{ID: "s", Name: "Small", Price: 3.50, Oz: 8},
			{ID: "l", Name: "Large", Price: 5.00, Oz: 16},
		},
	}
	mocha = domain.Beverage{
		ID:    "bev-2",
		Name:  "Mocha",
		Sizes: []domain.BeverageSize{{ID: "s", Name: "Small", Price: 4.25, Oz: 8}},
	}
)

func TestAdd_MergesOnCompositeKey(t *testing.T) {
	c := New()
	if err := c.Add(latte, latte.Sizes[1], 2); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := c.Add(latte, latte.Sizes[1], 3); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("Expected 1 line for repeated add of same key, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("Expected accumulated quantity 5, got %d", items[0].Quantity)
	}
	if items[0].Price != 5.00 {
		t.Errorf("Expected frozen price 5.00, got %.2f", items[0].Price)
	}
	if items[0].Name != "Latte" || items[0].SizeName != "Large" {
		t.Errorf("Expected denormalized names, got %q/%q", items[0].Name, items[0].SizeName)
	}
}

func TestAdd_SameBeverageDifferentSize(t *testing.T) {
	c := New()
	_ = c.Add(latte, latte.Sizes[0], 1)
	_ = c.Add(latte, latte.Sizes[1], 1)
	if got := len(c.Items()); got != 2 {
		t.Fatalf("Expected 2 lines for different sizes, got %d", got)
	}
}

func TestAdd_RejectsNonPositiveQuantity(t *testing.T) {
	c := New()
	for _, q := range []int{0, -3} {
		if err := c.Add(latte, latte.Sizes[0], q); err != ErrInvalidQuantity {
			t.Errorf("Expected ErrInvalidQuantity for quantity %d, got: %v", q, err)
		}
	}
	if len(c.Items()) != 0 {
		t.Error("Expected no line created by rejected add")
	}
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	_ = c.Add(latte, latte.Sizes[1], 2)

	c.UpdateQuantity("bev-1", "l", 7)
	if got := c.Items()[0].Quantity; got != 7 {
		t.Errorf("Expected overwrite to 7, got %d", got)
	}

	// zero or below means delete, not keep-at-zero
	c.UpdateQuantity("bev-1", "l", 0)
	if len(c.Items()) != 0 {
		t.Error("Expected zero quantity to remove the line")
	}

	_ = c.Add(latte, latte.Sizes[1], 2)
	c.UpdateQuantity("bev-1", "l", -4)
	if len(c.Items()) != 0 {
		t.Error("Expected negative quantity to remove the line")
	}

	c.UpdateQuantity("missing", "l", 3) // no-op
	if len(c.Items()) != 0 {
		t.Error("Expected update of unknown key to be a no-op")
	}
}

func TestRemove_Idempotent(t *testing.T) {
	c := New()
	_ = c.Add(latte, latte.Sizes[0], 1)
	c.Remove("bev-1", "s")
	c.Remove("bev-1", "s")
	if len(c.Items()) != 0 {
		t.Error("Expected empty cart after remove")
	}
}

func TestSelectors(t *testing.T) {
	c := New()
	if c.ItemCount() != 0 {
		t.Error("Expected 0 count for empty cart")
	}
	if c.Subtotal() != 0.0 {
		t.Error("Expected 0.0 subtotal for empty cart")
	}

	_ = c.Add(latte, latte.Sizes[1], 2) // 2 * 5.00
	_ = c.Add(mocha, mocha.Sizes[0], 3) // 3 * 4.25

	if got := c.ItemCount(); got != 5 {
		t.Errorf("Expected item count 5, got %d", got)
	}
	want := 2*5.00 + 3*4.25
	if got := c.Subtotal(); got != want {
		t.Errorf("Expected subtotal %.2f, got %.2f", want, got)
	}
}

func TestItems_StableInsertionOrder(t *testing.T) {
	c := New()
	_ = c.Add(latte, latte.Sizes[0], 1)
	_ = c.Add(mocha, mocha.Sizes[0], 1)
	c.UpdateQuantity("bev-1", "s", 9)

	items := c.Items()
	if items[0].BeverageID != "bev-1" || items[1].BeverageID != "bev-2" {
		t.Error("Expected first-add order to survive quantity updates")
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	c := New()
	_ = c.Add(latte, latte.Sizes[0], 1)
	items := c.Items()
	items[0].Quantity = 42
	if c.Items()[0].Quantity != 1 {
		t.Error("Expected mutation of the returned slice to not affect the cart")
	}
}

func TestRoundTrip(t *testing.T) {
	c := New()
	_ = c.Add(latte, latte.Sizes[1], 2)
	_ = c.Add(latte, latte.Sizes[1], 3)
	c.Remove("bev-1", "l")

	if len(c.Items()) != 0 || c.ItemCount() != 0 || c.Subtotal() != 0.0 {
		t.Error("Expected add/add/remove to leave the cart equal to a cleared cart")
	}
}

func TestClear(t *testing.T) {
	c := New()
	_ = c.Add(latte, latte.Sizes[0], 4)
	_ = c.Add(mocha, mocha.Sizes[0], 1)
	c.Clear()
	if len(c.Items()) != 0 {
		t.Error("Expected no items after clear")
	}
	c.Clear() // clearing an empty cart is fine
}
