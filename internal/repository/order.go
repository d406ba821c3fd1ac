package repository

import (
	"context"
	"sharpgaze-api/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	CreateOrderItems(ctx context.Context, tx *gorm.DB, items []*model.OrderItem) error
	Exists(ctx context.Context, tx *gorm.DB, orderID string) (bool, error)
	FindByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	ListByRecency(ctx context.Context) ([]*model.Order, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Omit("Items").Create(order).Error
}

func (r *orderRepoImpl) CreateOrderItems(ctx context.Context, tx *gorm.DB, items []*model.OrderItem) error {
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *orderRepoImpl) Exists(ctx context.Context, tx *gorm.DB, orderID string) (bool, error) {
	if tx == nil {
		tx = r.db
	}

	var count int64
	err := tx.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Count(&count).Error

	return count > 0, err
}

func (r *orderRepoImpl) FindByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", orderID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) ListByRecency(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepoImpl) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	if err := tx.WithContext(ctx).Where("1 = 1").Delete(&model.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Where("1 = 1").Delete(&model.Order{}).Error
}
