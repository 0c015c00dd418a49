package domain

import (
	"slices"
	"time"

	"golang.org/x/text/currency"
)

// Cart holds at most one item per service ID, in the order services were first added.
type Cart struct {
	Currency currency.Unit
	Items    []CartItem
}

type CartItem struct {
	Service  Service
	Quantity int

	CreatedAt time.Time
}

func NewCart(cur currency.Unit) *Cart {
	return &Cart{Currency: cur}
}

func (i CartItem) LineTotal() Money {
	return i.Service.Price.Mul(i.Quantity)
}

// Add increments the quantity of an existing line or appends a new line with quantity 1.
func (c *Cart) Add(service Service, now time.Time) {
	if idx := c.indexOf(service.ID); idx >= 0 {
		c.Items[idx].Quantity++
		return
	}

	c.Items = append(c.Items, CartItem{
		Service:   service,
		Quantity:  1,
		CreatedAt: now,
	})
}

// Remove drops the whole line for id regardless of its quantity.
// It reports whether a line was removed; an unknown id leaves the cart untouched.
func (c *Cart) Remove(id string) bool {
	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}

	c.Items = slices.Delete(c.Items, idx, idx+1)
	return true
}

func (c *Cart) Total() Money {
	total := ZeroMoney(c.Currency)
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// Quantity returns the total number of units across all lines.
func (c *Cart) Quantity() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}

	return n
}

func (c *Cart) Get(id string) (CartItem, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return CartItem{}, false
	}

	return c.Items[idx], true
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Snapshot returns a copy of the items safe to hand out to callers.
func (c *Cart) Snapshot() []CartItem {
	return slices.Clone(c.Items)
}

func (c *Cart) indexOf(id string) int {
	return slices.IndexFunc(c.Items, func(item CartItem) bool {
		return item.Service.ID == id
	})
}
