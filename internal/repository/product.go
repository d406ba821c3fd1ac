package repository

import (
	"context"
	"sharpgaze-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Seed(ctx context.Context) error
	List(ctx context.Context) ([]*model.Product, error)
	FindByID(ctx context.Context, tx *gorm.DB, productID uint) (*model.Product, error)
	SearchByName(ctx context.Context, query string) ([]*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	DecrementStock(ctx context.Context, tx *gorm.DB, productID uint, quantity int) (bool, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

// SeedProducts is the demo catalog the store boots with.
func SeedProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Classic Aviators", Price: 2999, Stock: 50, Image: "🕶️"},
		{ID: 2, Name: "Modern Frames", Price: 3499, Stock: 30, Image: "👓"},
		{ID: 3, Name: "Sports Sunglasses", Price: 4199, Stock: 25, Image: "🥽"},
		{ID: 4, Name: "Vintage Collection", Price: 3799, Stock: 20, Image: "🕶️"},
		{ID: 5, Name: "Blue Light Blockers", Price: 2499, Stock: 40, Image: "👓"},
		{ID: 6, Name: "Designer Frames", Price: 5999, Stock: 15, Image: "🕶️"},
	}
}

func (r *productRepoImpl) Seed(ctx context.Context) error {
	products := SeedProducts()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&products).Error
}

func (r *productRepoImpl) List(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

// FindByID reads through tx when one is given so checkout validation sees
// the same snapshot its commit pass will update.
func (r *productRepoImpl) FindByID(ctx context.Context, tx *gorm.DB, productID uint) (*model.Product, error) {
	if tx == nil {
		tx = r.db
	}

	var product model.Product
	err := tx.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) SearchByName(ctx context.Context, query string) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+query+"%").
		Order("id").
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// DecrementStock applies the guarded decrement. It reports false when the
// guard rejects the update, i.e. the remaining stock no longer covers
// quantity; the caller is expected to roll back its transaction.
func (r *productRepoImpl) DecrementStock(ctx context.Context, tx *gorm.DB, productID uint, quantity int) (bool, error) {
	result := tx.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *productRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepoImpl) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	return tx.WithContext(ctx).Where("1 = 1").Delete(&model.Product{}).Error
}
