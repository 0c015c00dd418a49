package service_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/nikolayk812/airport-services/internal/catalog"
	"github.com/nikolayk812/airport-services/internal/domain"
	"github.com/nikolayk812/airport-services/internal/port"
	"github.com/nikolayk812/airport-services/internal/service"
	"golang.org/x/text/currency"
)

type cartTestContext struct {
	catalog *catalog.Catalog
	cart    port.CartController
	order   domain.Order
	acked   int
	err     error
}

func (c *cartTestContext) reset() {
	c.catalog = nil
	c.cart = nil
	c.order = domain.Order{}
	c.acked = 0
	c.err = nil
}

func (c *cartTestContext) theDefaultAirportCatalog() error {
	c.catalog = catalog.Default(currency.USD)
	c.cart = service.NewCart(c.catalog, service.WithAcknowledger(port.AcknowledgerFunc(func(domain.Order) {
		c.acked++
	})))
	return nil
}

func (c *cartTestContext) iAddService(id string) error {
	_, c.err = c.cart.AddByID(id)
	return nil
}

func (c *cartTestContext) iRemoveService(id string) error {
	c.cart.Remove(id)
	return nil
}

func (c *cartTestContext) iPlaceTheOrder() error {
	c.order = c.cart.PlaceOrder()
	return nil
}

func (c *cartTestContext) theCartContains(table *godog.Table) error {
	items := c.cart.Items()
	rows := table.Rows[1:]

	if len(items) != len(rows) {
		return fmt.Errorf("expected %d lines, got %d", len(rows), len(items))
	}

	for i, row := range rows {
		id := row.Cells[0].Value
		quantity, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return fmt.Errorf("quantity %q: %w", row.Cells[1].Value, err)
		}

		if items[i].Service.ID != id {
			return fmt.Errorf("line %d: expected id %q, got %q", i, id, items[i].Service.ID)
		}
		if items[i].Quantity != quantity {
			return fmt.Errorf("line %d: expected quantity %d, got %d", i, quantity, items[i].Quantity)
		}
	}
	return nil
}

func (c *cartTestContext) theCartTotalIs(total int) error {
	return expectMoney(domain.NewMoney(int64(total), currency.USD), c.cart.Total())
}

func (c *cartTestContext) thePlacedOrderTotalIs(total int) error {
	return expectMoney(domain.NewMoney(int64(total), currency.USD), c.order.Total)
}

func (c *cartTestContext) theCartIsEmpty() error {
	if items := c.cart.Items(); len(items) != 0 {
		return fmt.Errorf("expected empty cart, got %d lines", len(items))
	}
	return nil
}

func (c *cartTestContext) theOrderWasAcknowledgedTimes(n int) error {
	if c.acked != n {
		return fmt.Errorf("expected %d acknowledgments, got %d", n, c.acked)
	}
	return nil
}

func (c *cartTestContext) addingFailsWith(substring string) error {
	if c.err == nil {
		return errors.New("expected add to fail but it succeeded")
	}
	if !errors.Is(c.err, service.ErrServiceNotFound) {
		return fmt.Errorf("expected ErrServiceNotFound, got %v", c.err)
	}
	if !strings.Contains(c.err.Error(), substring) {
		return fmt.Errorf("expected error message to contain %q, got %q", substring, c.err.Error())
	}
	return nil
}

func expectMoney(want, got domain.Money) error {
	if !want.Equal(got) {
		return fmt.Errorf("expected %s, got %s", want, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the default airport catalog$`, tc.theDefaultAirportCatalog)

	// When steps
	ctx.Step(`^I add service "([^"]*)"$`, tc.iAddService)
	ctx.Step(`^I remove service "([^"]*)"$`, tc.iRemoveService)
	ctx.Step(`^I place the order$`, tc.iPlaceTheOrder)

	// Then steps
	ctx.Step(`^the cart contains:$`, tc.theCartContains)
	ctx.Step(`^the cart total is (\d+)$`, tc.theCartTotalIs)
	ctx.Step(`^the placed order total is (\d+)$`, tc.thePlacedOrderTotalIs)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the order was acknowledged (\d+) times?$`, tc.theOrderWasAcknowledgedTimes)
	ctx.Step(`^adding fails with "([^"]*)"$`, tc.addingFailsWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
