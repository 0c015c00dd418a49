package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/airport-services/internal/catalog"
	"github.com/nikolayk812/airport-services/internal/domain"
	"github.com/nikolayk812/airport-services/internal/port"
	"go.uber.org/zap"
)

var ErrServiceNotFound = errors.New("service not found")

type cartService struct {
	cart    *domain.Cart
	catalog *catalog.Catalog
	logger  *zap.Logger
	ack     port.Acknowledger
	now     func() time.Time
	newID   func() uuid.UUID
}

type Option func(*cartService)

func WithLogger(logger *zap.Logger) Option {
	return func(s *cartService) {
		s.logger = logger
	}
}

func WithAcknowledger(ack port.Acknowledger) Option {
	return func(s *cartService) {
		s.ack = ack
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *cartService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *cartService) {
		s.newID = newID
	}
}

// NewCart returns a controller owning a fresh empty cart priced in the catalog currency.
func NewCart(c *catalog.Catalog, opts ...Option) port.CartController {
	s := &cartService{
		cart:    domain.NewCart(c.Currency()),
		catalog: c,
		logger:  zap.NewNop(),
		ack:     port.AcknowledgerFunc(func(domain.Order) {}),
		now:     time.Now,
		newID:   uuid.New,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	return s
}

func (s *cartService) Add(service domain.Service) {
	s.cart.Add(service, s.now())

	item, _ := s.cart.Get(service.ID)
	s.logger.Debug("service added",
		zap.String("service_id", service.ID),
		zap.Int("quantity", item.Quantity),
		zap.Stringer("total", s.cart.Total()))
}

func (s *cartService) AddByID(id string) (domain.Service, error) {
	service, ok := s.catalog.Find(id)
	if !ok {
		return domain.Service{}, fmt.Errorf("id[%s]: %w", id, ErrServiceNotFound)
	}

	s.Add(service)
	return service, nil
}

func (s *cartService) Remove(id string) bool {
	removed := s.cart.Remove(id)

	s.logger.Debug("service removed",
		zap.String("service_id", id),
		zap.Bool("removed", removed),
		zap.Stringer("total", s.cart.Total()))

	return removed
}

func (s *cartService) Total() domain.Money {
	return s.cart.Total()
}

func (s *cartService) Items() []domain.CartItem {
	return s.cart.Snapshot()
}

func (s *cartService) Quantity() int {
	return s.cart.Quantity()
}

// PlaceOrder logs and acknowledges the current cart, then empties it. Empty carts are placed too.
func (s *cartService) PlaceOrder() domain.Order {
	order := domain.Order{
		ID:       s.newID(),
		Items:    s.cart.Snapshot(),
		Total:    s.cart.Total(),
		PlacedAt: s.now(),
	}

	s.logger.Info("order placed",
		zap.Stringer("order_id", order.ID),
		orderItemsField(order.Items),
		zap.Stringer("total", order.Total),
		zap.Time("placed_at", order.PlacedAt))

	s.ack.Acknowledge(order)
	s.cart.Clear()

	return order
}
