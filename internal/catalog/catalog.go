// Package catalog holds the fixed list of services offered at the airport.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nikolayk812/airport-services/internal/domain"
	"golang.org/x/text/currency"
)

// Catalog is an immutable, ordered set of services with unique IDs priced in one currency.
type Catalog struct {
	currency currency.Unit
	services []domain.Service
	byID     map[string]int
}

func New(cur currency.Unit, services ...domain.Service) (*Catalog, error) {
	c := &Catalog{
		currency: cur,
		services: make([]domain.Service, 0, len(services)),
		byID:     make(map[string]int, len(services)),
	}

	for _, s := range services {
		if s.ID == "" {
			return nil, fmt.Errorf("service id is empty")
		}
		if _, ok := c.byID[s.ID]; ok {
			return nil, fmt.Errorf("service id[%s] is duplicated", s.ID)
		}
		if s.Price.IsNegative() {
			return nil, fmt.Errorf("service[%s] price is negative", s.ID)
		}
		if s.Price.Currency != cur {
			return nil, fmt.Errorf("service[%s] currency[%s] does not match catalog currency[%s]", s.ID, s.Price.Currency, cur)
		}

		c.byID[s.ID] = len(c.services)
		c.services = append(c.services, s)
	}

	return c, nil
}

// Default returns the built-in airport catalog priced in cur.
func Default(cur currency.Unit) *Catalog {
	c, err := New(cur, defaultServices(cur)...)
	if err != nil {
		panic(fmt.Sprintf("default catalog: %v", err))
	}

	return c
}

func (c *Catalog) Currency() currency.Unit {
	return c.currency
}

func (c *Catalog) Len() int {
	return len(c.services)
}

func (c *Catalog) All() []domain.Service {
	return slices.Clone(c.services)
}

func (c *Catalog) Find(id string) (domain.Service, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Service{}, false
	}

	return c.services[idx], true
}

// Filter returns services whose name or description contains query, ignoring case.
// Catalog order is preserved; an empty query matches everything.
func (c *Catalog) Filter(query string) []domain.Service {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.All()
	}

	var result []domain.Service
	for _, s := range c.services {
		if strings.Contains(strings.ToLower(s.Name), query) ||
			strings.Contains(strings.ToLower(s.Description), query) {
			result = append(result, s)
		}
	}

	return result
}
