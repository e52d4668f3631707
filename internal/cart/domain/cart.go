package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/pkg/apperr"
)

// LineItem is one product in the cart. The JSON shape matches what the
// storefront has always written under the cartItems key, price as a plain
// number.
type LineItem struct {
	ProductID     string          `json:"_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Image         string          `json:"image,omitempty"`
	Quantity      int             `json:"quantity"`
	SelectedSize  string          `json:"selectedSize,omitempty"`
	SelectedColor string          `json:"selectedColor,omitempty"`
}

func (li LineItem) MarshalJSON() ([]byte, error) {
	type wire LineItem
	return json.Marshal(struct {
		wire
		Price json.Number `json:"price"`
	}{wire(li), json.Number(li.Price.String())})
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart holds at most one line item per product id, in insertion order.
type Cart struct {
	Items []LineItem
}

func (c *Cart) index(productID string) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add puts one unit of item into the cart.
func (c *Cart) Add(item LineItem) error {
	return c.AddQuantity(item, 1)
}

// AddQuantity increments an existing entry by n or appends item with
// quantity n. Size and colour of an existing entry are kept.
func (c *Cart) AddQuantity(item LineItem, n int) error {
	if item.ProductID == "" {
		return apperr.Invalid("product id is required")
	}
	if n < 1 {
		n = 1
	}

	if i := c.index(item.ProductID); i >= 0 {
		c.Items[i].Quantity += n
		return nil
	}

	item.Quantity = n
	c.Items = append(c.Items, item)
	return nil
}

// Remove takes one unit away; the entry is deleted when its last unit goes.
// It reports whether the product was in the cart.
func (c *Cart) Remove(productID string) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}

	if c.Items[i].Quantity > 1 {
		c.Items[i].Quantity--
		return true
	}

	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

func (c *Cart) RemoveCompletely(productID string) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Lookup(productID string) (LineItem, bool) {
	if i := c.index(productID); i >= 0 {
		return c.Items[i], true
	}
	return LineItem{}, false
}

func (c *Cart) TotalQuantity() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// Select returns the items whose product ids are in ids, in cart order.
// Unknown ids are ignored.
func (c *Cart) Select(ids []string) []LineItem {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	out := make([]LineItem, 0, len(ids))
	for _, it := range c.Items {
		if _, ok := want[it.ProductID]; ok {
			out = append(out, it)
		}
	}
	return out
}

// Normalize rebuilds a cart read from storage so the one-entry-per-product
// invariant holds even if the stored value was edited by hand.
func Normalize(items []LineItem) Cart {
	var c Cart
	for _, it := range items {
		if it.ProductID == "" || it.Quantity < 1 {
			continue
		}
		_ = c.AddQuantity(it, it.Quantity)
	}
	return c
}

type Totals struct {
	Lines    int
	Quantity int
	Price    decimal.Decimal
}

// Sum totals exactly the given items.
func Sum(items []LineItem) Totals {
	t := Totals{Lines: len(items), Price: decimal.Zero}
	for _, it := range items {
		t.Quantity += it.Quantity
		t.Price = t.Price.Add(it.LineTotal())
	}
	return t
}
