package port

import (
	"github.com/nikolayk812/airport-services/internal/domain"
)

type CartController interface {
	Add(service domain.Service)
	AddByID(id string) (domain.Service, error)
	Remove(id string) bool
	Total() domain.Money
	Items() []domain.CartItem
	Quantity() int
	PlaceOrder() domain.Order
}

// Acknowledger tells the user that an order went through.
type Acknowledger interface {
	Acknowledge(order domain.Order)
}

// AcknowledgerFunc adapts a plain function to Acknowledger.
type AcknowledgerFunc func(order domain.Order)

func (f AcknowledgerFunc) Acknowledge(order domain.Order) {
	f(order)
}
