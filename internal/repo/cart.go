package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NhatNguyen1502/ecommerce-services/internal/entity"
)

var ErrCartItemNotFound = errors.New("cart item not found")

func (r *Repo) GetCartItem(ctx context.Context, customerID, productID uuid.UUID) (entity.CartItem, error) {
	var item entity.CartItem
	err := r.db.WithContext(ctx).Preload("Product").
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.CartItem{}, ErrCartItemNotFound
		}
		return entity.CartItem{}, err
	}
	return item, nil
}

func (r *Repo) SaveCartItem(ctx context.Context, item *entity.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *Repo) DeleteCartItem(ctx context.Context, item *entity.CartItem) error {
	return r.db.WithContext(ctx).Delete(item).Error
}

func (r *Repo) CountCartItems(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.CartItem{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	return count, err
}

func (r *Repo) ListCartItems(ctx context.Context, customerID uuid.UUID) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.db.WithContext(ctx).Preload("Product").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
