package service_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/nikolayk812/airport-services/internal/catalog"
	"github.com/nikolayk812/airport-services/internal/domain"
	"github.com/nikolayk812/airport-services/internal/port"
	"github.com/nikolayk812/airport-services/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/currency"
)

type cartServiceSuite struct {
	suite.Suite

	catalog *catalog.Catalog
	cart    port.CartController
	logs    *observer.ObservedLogs
	acked   []domain.Order
	now     time.Time
	orderID uuid.UUID
}

// entry point to run the tests in the suite
func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(cartServiceSuite))
}

// before all tests in the suite
func (suite *cartServiceSuite) SetupSuite() {
	suite.catalog = catalog.Default(currency.USD)
	suite.now = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	suite.orderID = uuid.MustParse(gofakeit.UUID())
}

// before each test
func (suite *cartServiceSuite) SetupTest() {
	core, logs := observer.New(zapcore.DebugLevel)
	suite.logs = logs
	suite.acked = nil

	suite.cart = service.NewCart(suite.catalog,
		service.WithLogger(zap.New(core)),
		service.WithClock(func() time.Time { return suite.now }),
		service.WithIDGenerator(func() uuid.UUID { return suite.orderID }),
		service.WithAcknowledger(port.AcknowledgerFunc(func(order domain.Order) {
			suite.acked = append(suite.acked, order)
		})),
	)
}

func (suite *cartServiceSuite) TestScenarios() {
	tests := []struct {
		name      string
		adds      []string
		removes   []string
		wantLines []line
		wantTotal int64
	}{
		{
			name:      "A: same service twice merges into one line",
			adds:      []string{"1", "1"},
			wantLines: []line{{"1", 2}},
			wantTotal: 90,
		},
		{
			name:      "B: remove drops the first line",
			adds:      []string{"1", "4"},
			removes:   []string{"1"},
			wantLines: []line{{"4", 1}},
			wantTotal: 18,
		},
		{
			name:      "D: order follows first add",
			adds:      []string{"2", "2", "6"},
			wantLines: []line{{"2", 2}, {"6", 1}},
			wantTotal: 62,
		},
		{
			name:      "remove unknown id: no-op",
			adds:      []string{"3"},
			removes:   []string{"404"},
			wantLines: []line{{"3", 1}},
			wantTotal: 60,
		},
		{
			name:    "remove last line: empty",
			adds:    []string{"7", "7"},
			removes: []string{"7"},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			t := suite.T()

			for _, id := range tt.adds {
				_, err := suite.cart.AddByID(id)
				require.NoError(t, err)
			}
			for _, id := range tt.removes {
				suite.cart.Remove(id)
			}

			assert.Equal(t, tt.wantLines, lines(suite.cart.Items()))
			assert.True(t, domain.NewMoney(tt.wantTotal, currency.USD).Equal(suite.cart.Total()),
				"total %s", suite.cart.Total())
		})
	}
}

func (suite *cartServiceSuite) TestAddByID_Unknown() {
	t := suite.T()

	_, err := suite.cart.AddByID("404")

	require.ErrorIs(t, err, service.ErrServiceNotFound)
	require.EqualError(t, err, "id[404]: service not found")
	assert.Empty(t, suite.cart.Items())
}

func (suite *cartServiceSuite) TestAdd_AnyService() {
	t := suite.T()
	s, ok := suite.catalog.Find("5")
	require.True(t, ok)

	suite.cart.Add(s)
	suite.cart.Add(s)
	suite.cart.Add(s)

	assert.Equal(t, []line{{"5", 3}}, lines(suite.cart.Items()))
	assert.Equal(t, 3, suite.cart.Quantity())
}

func (suite *cartServiceSuite) TestItems_ReturnsCopy() {
	t := suite.T()
	_, err := suite.cart.AddByID("1")
	require.NoError(t, err)

	items := suite.cart.Items()
	items[0].Quantity = 50

	assert.Equal(t, 1, suite.cart.Items()[0].Quantity)
}

func (suite *cartServiceSuite) TestPlaceOrder() {
	t := suite.T()
	for _, id := range []string{"2", "2", "6"} {
		_, err := suite.cart.AddByID(id)
		require.NoError(t, err)
	}
	items := suite.cart.Items()

	order := suite.cart.PlaceOrder()

	assert.Equal(t, suite.orderID, order.ID)
	assert.Equal(t, suite.now, order.PlacedAt)
	assert.True(t, domain.NewMoney(62, currency.USD).Equal(order.Total))
	assertItems(t, items, order.Items)

	// cart is cleared after acknowledgment
	assert.Empty(t, suite.cart.Items())
	assert.True(t, suite.cart.Total().IsZero())

	require.Len(t, suite.acked, 1)
	assert.Equal(t, order.ID, suite.acked[0].ID)
	assertItems(t, items, suite.acked[0].Items)

	placed := suite.logs.FilterMessage("order placed").All()
	require.Len(t, placed, 1)
	fields := placed[0].ContextMap()
	assert.Equal(t, suite.orderID.String(), fields["order_id"])
	assert.Equal(t, order.Total.String(), fields["total"])
	require.Len(t, fields["items"], 2)
	first, ok := fields["items"].([]interface{})[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2", first["id"])
	assert.Equal(t, 2, first["quantity"])
	assert.Equal(t, "50", first["line_total"])
}

func (suite *cartServiceSuite) TestPlaceOrder_EmptyCart() {
	t := suite.T()

	order := suite.cart.PlaceOrder()

	assert.True(t, order.IsEmpty())
	assert.True(t, order.Total.IsZero())
	assert.Empty(t, suite.cart.Items())
	assert.Len(t, suite.acked, 1)
	assert.Equal(t, 1, suite.logs.FilterMessage("order placed").Len())
}

func (suite *cartServiceSuite) TestPlaceOrder_AlwaysEmptiesCart() {
	t := suite.T()

	for range 10 {
		for range gofakeit.IntRange(0, 15) {
			_, err := suite.cart.AddByID(gofakeit.RandomString([]string{"1", "2", "3", "4", "5", "6", "7", "8"}))
			require.NoError(t, err)
		}

		suite.cart.PlaceOrder()

		assert.Empty(t, suite.cart.Items())
		assert.Zero(t, suite.cart.Quantity())
	}
}

func (suite *cartServiceSuite) TestLogsMutations() {
	t := suite.T()

	_, err := suite.cart.AddByID("8")
	require.NoError(t, err)
	suite.cart.Remove("8")

	assert.Equal(t, 1, suite.logs.FilterMessage("service added").FilterField(zap.String("service_id", "8")).Len())
	assert.Equal(t, 1, suite.logs.FilterMessage("service removed").FilterField(zap.Bool("removed", true)).Len())
}

func TestNewCart_NilOptions(t *testing.T) {
	cart := service.NewCart(catalog.Default(currency.EUR), nil, service.WithLogger(nil))

	_, err := cart.AddByID("1")
	require.NoError(t, err)

	order := cart.PlaceOrder()
	assert.Equal(t, currency.EUR, order.Total.Currency)
	assert.NotEqual(t, uuid.Nil, order.ID)
}

type line struct {
	ID       string
	Quantity int
}

func lines(items []domain.CartItem) []line {
	var result []line
	for _, item := range items {
		result = append(result, line{item.Service.ID, item.Quantity})
	}

	return result
}

func assertItems(t *testing.T, expected, actual []domain.CartItem) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartItem{}, "CreatedAt"),
		currencyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}
