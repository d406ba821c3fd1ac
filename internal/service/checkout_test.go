package service

import (
	"context"
	"fmt"
	"sharpgaze-api/internal/apperr"
	"sharpgaze-api/internal/dto"
	"sharpgaze-api/internal/model"
	"sharpgaze-api/internal/orderid"
	"sharpgaze-api/internal/repository"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.CartSession{},
		&model.CartItem{},
		&model.User{},
	))

	return db
}

type checkoutFixture struct {
	db          *gorm.DB
	products    repository.ProductRepository
	orders      repository.OrderRepository
	checkout    CheckoutService
	orderLookup OrderService
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	db := newTestDB(t)
	products := repository.NewProductRepository(db)
	orders := repository.NewOrderRepository(db)

	require.NoError(t, products.Seed(context.Background()))

	return &checkoutFixture{
		db:          db,
		products:    products,
		orders:      orders,
		checkout:    NewCheckoutService(db, orderid.NewGenerator(), products, orders),
		orderLookup: NewOrderService(orders),
	}
}

func (f *checkoutFixture) stock(t *testing.T, productID uint) int {
	t.Helper()
	product, err := f.products.FindByID(context.Background(), nil, productID)
	require.NoError(t, err)
	return product.Stock
}

func (f *checkoutFixture) orderCount(t *testing.T) int64 {
	t.Helper()
	count, err := f.orders.Count(context.Background())
	require.NoError(t, err)
	return count
}

func TestPlaceOrderComputesTotalAndDecrementsStock(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	order, err := f.checkout.PlaceOrder(ctx, &dto.CheckoutRequest{
		Items: []*dto.Item{{ID: 1, Quantity: 2}},
		Customer: &dto.Customer{
			Name:  "Ada",
			Email: "ada@example.com",
			Phone: "12345",
		},
	})
	require.NoError(t, err)

	// Seed product 1 costs 2999 with stock 50.
	assert.Equal(t, int64(5998), order.TotalAmount)
	assert.Equal(t, "confirmed", order.Status)
	assert.Equal(t, "ada@example.com", order.CustomerEmail)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Classic Aviators", order.Items[0].ProductName)
	assert.Equal(t, int64(2999), order.Items[0].UnitPrice)
	assert.Equal(t, int64(5998), order.Items[0].LineTotal)

	assert.Equal(t, 48, f.stock(t, 1))

	stored, err := f.orderLookup.GetOrder(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order.TotalAmount, stored.TotalAmount)
	require.Len(t, stored.Items, 1)
}

func TestPlaceOrderMultiItemTotalInvariant(t *testing.T) {
	f := newCheckoutFixture(t)

	order, err := f.checkout.PlaceOrder(context.Background(), &dto.CheckoutRequest{
		Items: []*dto.Item{
			{ID: 1, Quantity: 3},
			{ID: 5, Quantity: 2},
		},
	})
	require.NoError(t, err)

	var sum int64
	for _, item := range order.Items {
		assert.Equal(t, item.UnitPrice*int64(item.Quantity), item.LineTotal)
		sum += item.LineTotal
	}
	assert.Equal(t, sum, order.TotalAmount)
	assert.Equal(t, int64(3*2999+2*2499), order.TotalAmount)

	assert.Equal(t, 47, f.stock(t, 1))
	assert.Equal(t, 38, f.stock(t, 5))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.PlaceOrder(context.Background(), &dto.CheckoutRequest{})

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Equal(t, int64(0), f.orderCount(t))
}

func TestPlaceOrderUnknownProductMutatesNothing(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.PlaceOrder(context.Background(), &dto.CheckoutRequest{
		Items: []*dto.Item{
			{ID: 1, Quantity: 1},
			{ID: 99, Quantity: 1},
		},
	})

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Message, "Product 99 not found")

	// The valid first item must not have committed anything.
	assert.Equal(t, 50, f.stock(t, 1))
	assert.Equal(t, int64(0), f.orderCount(t))
}

func TestPlaceOrderInsufficientStockMutatesNothing(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.PlaceOrder(context.Background(), &dto.CheckoutRequest{
		Items: []*dto.Item{
			{ID: 1, Quantity: 1},
			{ID: 6, Quantity: 16}, // seed stock is 15
		},
	})

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	assert.Contains(t, appErr.Message, "Designer Frames")
	assert.Contains(t, appErr.Message, "Available: 15")

	assert.Equal(t, 50, f.stock(t, 1))
	assert.Equal(t, 15, f.stock(t, 6))
	assert.Equal(t, int64(0), f.orderCount(t))
}

func TestPlaceOrderNonPositiveQuantity(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.PlaceOrder(context.Background(), &dto.CheckoutRequest{
		Items: []*dto.Item{{ID: 1, Quantity: 0}},
	})

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
}

func TestPlaceOrderTotalCrossCheck(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	wrong := int64(1)
	_, err := f.checkout.PlaceOrder(ctx, &dto.CheckoutRequest{
		Items: []*dto.Item{{ID: 1, Quantity: 2}},
		Total: &wrong,
	})

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Equal(t, 50, f.stock(t, 1))

	// A matching declared total passes.
	right := int64(5998)
	_, err = f.checkout.PlaceOrder(ctx, &dto.CheckoutRequest{
		Items: []*dto.Item{{ID: 1, Quantity: 2}},
		Total: &right,
	})
	require.NoError(t, err)
}

func TestPlaceOrderIDFormat(t *testing.T) {
	f := newCheckoutFixture(t)

	order, err := f.checkout.PlaceOrder(context.Background(), &dto.CheckoutRequest{
		Items: []*dto.Item{{ID: 2, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Regexp(t, `^SG\d{8}[0-9A-F]{8}$`, order.OrderID)
}

// Concurrent checkouts over one product must never drive its stock
// negative: each committed order is backed by a guarded decrement.
func TestPlaceOrderConcurrentOverSubscription(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	// Product 6 has 15 in stock; 10 buyers want 2 each (20 total).
	const buyers = 10
	var wg sync.WaitGroup
	results := make(chan error, buyers)

	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.checkout.PlaceOrder(ctx, &dto.CheckoutRequest{
				Items: []*dto.Item{{ID: 6, Quantity: 2}},
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		}
	}

	require.GreaterOrEqual(t, successes, 1)
	require.LessOrEqual(t, successes, 7) // 15 / 2

	finalStock := f.stock(t, 6)
	assert.GreaterOrEqual(t, finalStock, 0)
	assert.Equal(t, 15-2*successes, finalStock)
	assert.Equal(t, int64(successes), f.orderCount(t))
}

func TestListOrdersByRecency(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	first, err := f.checkout.PlaceOrder(ctx, &dto.CheckoutRequest{
		Items: []*dto.Item{{ID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	second, err := f.checkout.PlaceOrder(ctx, &dto.CheckoutRequest{
		Items: []*dto.Item{{ID: 2, Quantity: 1}},
	})
	require.NoError(t, err)

	orders, err := f.orderLookup.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.False(t, orders[0].CreatedAt.Before(orders[1].CreatedAt))

	listed := []string{orders[0].OrderID, orders[1].OrderID}
	assert.ElementsMatch(t, []string{first.OrderID, second.OrderID}, listed)
}

func TestGetOrderNotFound(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.orderLookup.GetOrder(context.Background(), "SG20260101DEADBEEF")

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}
