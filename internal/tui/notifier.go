package tui

import (
	"github.com/nikolayk812/airport-services/internal/domain"
	"github.com/nikolayk812/airport-services/internal/port"
)

// Ensure Notifier implements the interface.
var _ port.Acknowledger = (*Notifier)(nil)

// Notifier collects order acknowledgments from the cart controller so the App
// can show them as a modal. Bubbletea drives Update serially, so no locking is needed.
type Notifier struct {
	pending *domain.Order
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Acknowledge implements port.Acknowledger.
func (n *Notifier) Acknowledge(order domain.Order) {
	n.pending = &order
}

// Take returns the pending acknowledgment, if any, and clears it.
func (n *Notifier) Take() (domain.Order, bool) {
	if n.pending == nil {
		return domain.Order{}, false
	}

	order := *n.pending
	n.pending = nil
	return order, true
}
