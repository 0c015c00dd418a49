package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is the record produced when a cart is submitted. It is logged and acknowledged, never stored.
type Order struct {
	ID       uuid.UUID
	Items    []CartItem
	Total    Money
	PlacedAt time.Time
}

func (o Order) IsEmpty() bool {
	return len(o.Items) == 0
}
