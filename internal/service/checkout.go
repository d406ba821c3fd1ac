package service

import (
	"context"
	"errors"
	"fmt"
	"sharpgaze-api/internal/apperr"
	"sharpgaze-api/internal/dto"
	"sharpgaze-api/internal/model"
	"sharpgaze-api/internal/orderid"
	"sharpgaze-api/internal/repository"
	"time"

	"gorm.io/gorm"
)

// maxIDAttempts bounds the retry loop when a freshly drawn order id is
// already present in the ledger.
const maxIDAttempts = 5

type CheckoutService interface {
	PlaceOrder(ctx context.Context, req *dto.CheckoutRequest) (*model.Order, error)
}

type checkoutServiceImpl struct {
	db          *gorm.DB
	orderIDs    *orderid.Generator
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewCheckoutService(
	db *gorm.DB,
	orderIDs *orderid.Generator,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		db:          db,
		orderIDs:    orderIDs,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// PlaceOrder runs the two-pass checkout: validate every requested item and
// accumulate price snapshots, then decrement stock and persist the order.
// Both passes run inside one transaction so a failure anywhere leaves the
// catalog and the ledger untouched. The stock decrement re-checks
// stock >= quantity at the storage layer, which serializes concurrent
// checkouts over the same product.
func (s *checkoutServiceImpl) PlaceOrder(ctx context.Context, req *dto.CheckoutRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.Validation("cart is empty")
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, apperr.Validation("item quantity must be positive")
		}
	}

	var order *model.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		totalAmount := int64(0)
		orderItems := make([]*model.OrderItem, len(req.Items))

		// Validation pass: resolve every product and snapshot its price
		// before anything is written.
		for i, item := range req.Items {
			product, err := s.productRepo.FindByID(ctx, tx, item.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.Validation("Product %d not found", item.ID)
				}
				return fmt.Errorf("find product %d: %w", item.ID, err)
			}

			if product.Stock < item.Quantity {
				return apperr.Conflict(
					"Insufficient stock for %s. Available: %d",
					product.Name, product.Stock,
				)
			}

			lineTotal := product.Price * int64(item.Quantity)
			totalAmount += lineTotal

			orderItems[i] = &model.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    item.Quantity,
				LineTotal:   lineTotal,
			}
		}

		// A client-declared total that disagrees with the computed one is
		// rejected outright rather than trusted.
		if req.Total != nil && *req.Total != totalAmount {
			return apperr.Validation(
				"total mismatch: expected %d, got %d",
				totalAmount, *req.Total,
			)
		}

		// Commit pass.
		for _, item := range req.Items {
			ok, err := s.productRepo.DecrementStock(ctx, tx, item.ID, item.Quantity)
			if err != nil {
				return fmt.Errorf("decrement stock for product %d: %w", item.ID, err)
			}
			if !ok {
				// Lost a race since the validation read; roll everything back.
				return apperr.Conflict("Insufficient stock for product %d", item.ID)
			}
		}

		orderID, err := s.freshOrderID(ctx, tx)
		if err != nil {
			return err
		}

		for _, item := range orderItems {
			item.OrderID = orderID
		}

		order = &model.Order{
			OrderID:     orderID,
			TotalAmount: totalAmount,
			Status:      "confirmed",
			CreatedAt:   time.Now().UTC(),
		}
		if c := req.Customer; c != nil {
			order.CustomerName = c.Name
			order.CustomerEmail = c.Email
			order.CustomerPhone = c.Phone
		}

		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}
		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}

		order.Items = make([]model.OrderItem, len(orderItems))
		for i, item := range orderItems {
			order.Items[i] = *item
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

// freshOrderID draws ids until one misses the ledger. The reference
// behavior never checks for collisions; the retry is a strengthening on
// top of the already negligible collision probability.
func (s *checkoutServiceImpl) freshOrderID(ctx context.Context, tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		orderID := s.orderIDs.New()

		exists, err := s.orderRepo.Exists(ctx, tx, orderID)
		if err != nil {
			return "", fmt.Errorf("check order id: %w", err)
		}
		if !exists {
			return orderID, nil
		}
	}

	return "", fmt.Errorf("could not generate a unique order id after %d attempts", maxIDAttempts)
}
