package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/NhatNguyen1502/ecommerce-services/internal/entity"
	"github.com/NhatNguyen1502/ecommerce-services/internal/repo"
)

var (
	ErrReviewExists  = errors.New("product already reviewed by this customer")
	ErrRatingInvalid = errors.New("rating must be between 1 and 5")
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *entity.Review) error
	ListProductReviews(ctx context.Context, productID uuid.UUID) ([]entity.Review, error)
}

type Reviews struct {
	log      *slog.Logger
	repo     ReviewRepository
	products ProductGetter
}

func NewReviews(log *slog.Logger, reviewRepo ReviewRepository, products ProductGetter) *Reviews {
	return &Reviews{log: log, repo: reviewRepo, products: products}
}

type ReviewEntry struct {
	ID           uuid.UUID `json:"id"`
	Rating       int       `json:"rating"`
	Content      string    `json:"content"`
	ReviewerName string    `json:"reviewer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (rv *Reviews) CreateReview(ctx context.Context, customerID, productID uuid.UUID, rating int, content string) error {
	const op = "reviews.CreateReview"

	if rating < 1 || rating > 5 {
		return ErrRatingInvalid
	}

	if _, err := rv.products.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	review := entity.Review{
		CustomerID: customerID,
		ProductID:  productID,
		Rating:     rating,
		Content:    content,
	}

	if err := rv.repo.CreateReview(ctx, &review); err != nil {
		if errors.Is(err, repo.ErrReviewAlreadyExists) {
			return ErrReviewExists
		}
		rv.log.Error("failed to create review", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (rv *Reviews) ListProductReviews(ctx context.Context, productID uuid.UUID) ([]ReviewEntry, error) {
	const op = "reviews.ListProductReviews"

	reviews, err := rv.repo.ListProductReviews(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries := make([]ReviewEntry, 0, len(reviews))
	for _, review := range reviews {
		entries = append(entries, ReviewEntry{
			ID:           review.ID,
			Rating:       review.Rating,
			Content:      review.Content,
			ReviewerName: review.Customer.FirstName + " " + review.Customer.LastName,
			CreatedAt:    review.CreatedAt,
		})
	}
	return entries, nil
}
