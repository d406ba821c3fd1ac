package service

import (
	"context"
	"fmt"
	"sharpgaze-api/internal/dto"
	"sharpgaze-api/internal/repository"
	"time"

	"gorm.io/gorm"
)

type AdminService interface {
	Reset(ctx context.Context) error
	Health(ctx context.Context) (*dto.HealthResponse, error)
}

type adminServiceImpl struct {
	db          *gorm.DB
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
}

func NewAdminService(
	db *gorm.DB,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
) AdminService {
	return &adminServiceImpl{
		db:          db,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
	}
}

// Reset wipes carts, orders, and the catalog, then reseeds the demo
// products. Demo convenience, one transaction.
func (s *adminServiceImpl) Reset(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.cartRepo.DeleteAll(ctx, tx); err != nil {
			return fmt.Errorf("clear carts: %w", err)
		}
		if err := s.orderRepo.DeleteAll(ctx, tx); err != nil {
			return fmt.Errorf("clear orders: %w", err)
		}
		if err := s.productRepo.DeleteAll(ctx, tx); err != nil {
			return fmt.Errorf("clear products: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return s.productRepo.Seed(ctx)
}

func (s *adminServiceImpl) Health(ctx context.Context) (*dto.HealthResponse, error) {
	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	carts, err := s.cartRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Version:       "1.0.0",
		ProductsCount: products,
		OrdersCount:   orders,
		CartSessions:  carts,
	}, nil
}
