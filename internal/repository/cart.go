package repository

import (
	"context"
	"sharpgaze-api/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	Replace(ctx context.Context, sessionID string, items []*model.CartItem) error
	Get(ctx context.Context, sessionID string) ([]*model.CartItem, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

// Replace swaps the whole stored cart for the session, last write wins.
func (r *cartRepoImpl) Replace(ctx context.Context, sessionID string, items []*model.CartItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session := &model.CartSession{
			SessionID: sessionID,
			UpdatedAt: time.Now().UTC(),
		}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"updated_at": session.UpdatedAt,
			}),
		}).Create(session).Error
		if err != nil {
			return err
		}

		if err := tx.Where("session_id = ?", sessionID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}

		for _, item := range items {
			item.ID = 0
			item.SessionID = sessionID
		}
		return tx.Create(&items).Error
	})
}

// Get returns the stored items in insertion order. An unknown session is
// an empty cart, not an error.
func (r *cartRepoImpl) Get(ctx context.Context, sessionID string) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CartSession{}).Count(&count).Error
	return count, err
}

func (r *cartRepoImpl) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	if err := tx.WithContext(ctx).Where("1 = 1").Delete(&model.CartItem{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Where("1 = 1").Delete(&model.CartSession{}).Error
}
