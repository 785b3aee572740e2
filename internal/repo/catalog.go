package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/NhatNguyen1502/ecommerce-services/internal/entity"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrProductNotFound       = errors.New("product not found")
)

func (r *Repo) CreateCategory(ctx context.Context, category *entity.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique
			return ErrCategoryAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repo) GetCategoryByID(ctx context.Context, id uuid.UUID) (entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Category{}, ErrCategoryNotFound
		}
		return entity.Category{}, err
	}
	return category, nil
}

func (r *Repo) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("name").
		Find(&categories).Error
	return categories, err
}

func (r *Repo) SaveCategory(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *Repo) CreateProduct(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *Repo) GetProductByID(ctx context.Context, id uuid.UUID) (entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Preload("Category").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Product{}, ErrProductNotFound
		}
		return entity.Product{}, err
	}
	return product, nil
}

// ListProducts returns a page of non-deleted products, newest first, plus the
// total count. A non-nil categoryID narrows the listing to that category.
func (r *Repo) ListProducts(ctx context.Context, categoryID *uuid.UUID, page, size int) ([]entity.Product, int64, error) {
	base := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("is_deleted = ?", false)
	if categoryID != nil {
		base = base.Where("category_id = ?", *categoryID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []entity.Product
	err := base.Preload("Category").
		Order("created_at DESC").
		Offset(page * size).Limit(size).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *Repo) ListFeaturedProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).Preload("Category").
		Where("is_featured = ? AND is_deleted = ?", true, false).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *Repo) SaveProduct(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}
