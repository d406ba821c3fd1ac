package service

import (
	"context"
	"errors"
	"sharpgaze-api/internal/apperr"
	"sharpgaze-api/internal/dto"
	"sharpgaze-api/internal/model"
	"sharpgaze-api/internal/repository"
	"strings"

	"gorm.io/gorm"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]*model.Product, error)
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	SearchProducts(ctx context.Context, query string) ([]*model.Product, error)
	AddProduct(ctx context.Context, req *dto.AddProductRequest) (*model.Product, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
	}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, nil, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, err
	}

	return product, nil
}

// SearchProducts matches the query anywhere in the product name,
// case-insensitively.
func (s *catalogServiceImpl) SearchProducts(ctx context.Context, query string) ([]*model.Product, error) {
	if query == "" {
		return nil, apperr.Validation("Query is required")
	}

	return s.productRepo.SearchByName(ctx, strings.ToLower(query))
}

func (s *catalogServiceImpl) AddProduct(ctx context.Context, req *dto.AddProductRequest) (*model.Product, error) {
	if req.Name == "" || req.Price <= 0 {
		return nil, apperr.Validation("name and a positive price are required")
	}
	if req.Stock < 0 {
		return nil, apperr.Validation("stock must not be negative")
	}

	image := req.Image
	if image == "" {
		image = "📦"
	}

	product := &model.Product{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       image,
		Description: req.Description,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}
