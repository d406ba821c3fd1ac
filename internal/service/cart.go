package service

import (
	"context"
	"sharpgaze-api/internal/apperr"
	"sharpgaze-api/internal/dto"
	"sharpgaze-api/internal/model"
	"sharpgaze-api/internal/repository"

	"github.com/google/uuid"
)

type CartService interface {
	UpdateCart(ctx context.Context, sessionID string, items []*dto.Item) (string, error)
	GetCart(ctx context.Context, sessionID string) ([]*dto.Item, error)
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
	}
}

// UpdateCart stores the items wholesale under sessionID, minting a fresh
// session when none is supplied. It returns the session id in use.
func (s *cartServiceImpl) UpdateCart(ctx context.Context, sessionID string, items []*dto.Item) (string, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return "", apperr.Validation("item quantity must be positive")
		}
	}

	cartItems := make([]*model.CartItem, len(items))
	for i, item := range items {
		cartItems[i] = &model.CartItem{
			ProductID: item.ID,
			Quantity:  item.Quantity,
		}
	}

	if err := s.cartRepo.Replace(ctx, sessionID, cartItems); err != nil {
		return "", err
	}

	return sessionID, nil
}

func (s *cartServiceImpl) GetCart(ctx context.Context, sessionID string) ([]*dto.Item, error) {
	cartItems, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.Item, len(cartItems))
	for i, item := range cartItems {
		items[i] = &dto.Item{
			ID:       item.ProductID,
			Quantity: item.Quantity,
		}
	}

	return items, nil
}
