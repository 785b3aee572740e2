package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/NhatNguyen1502/ecommerce-services/internal/entity"
)

var ErrReviewAlreadyExists = errors.New("review already exists")

// CreateReview inserts a review. Each customer may review a product once.
func (r *Repo) CreateReview(ctx context.Context, review *entity.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique
			return ErrReviewAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repo) ListProductReviews(ctx context.Context, productID uuid.UUID) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.db.WithContext(ctx).Preload("Customer").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
