package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/NhatNguyen1502/ecommerce-services/internal/entity"
	"github.com/NhatNguyen1502/ecommerce-services/internal/repo"
)

var (
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrQuantityInvalid   = errors.New("quantity must be greater than zero")
)

type CartRepository interface {
	GetCartItem(ctx context.Context, customerID, productID uuid.UUID) (entity.CartItem, error)
	SaveCartItem(ctx context.Context, item *entity.CartItem) error
	DeleteCartItem(ctx context.Context, item *entity.CartItem) error
	CountCartItems(ctx context.Context, customerID uuid.UUID) (int64, error)
	ListCartItems(ctx context.Context, customerID uuid.UUID) ([]entity.CartItem, error)
}

type ProductGetter interface {
	GetProductByID(ctx context.Context, id uuid.UUID) (entity.Product, error)
}

type Cart struct {
	log      *slog.Logger
	repo     CartRepository
	products ProductGetter
}

func NewCart(log *slog.Logger, cartRepo CartRepository, products ProductGetter) *Cart {
	return &Cart{log: log, repo: cartRepo, products: products}
}

// CartLine is one row of a customer's cart as rendered to the client.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}

// AddToCart puts quantity of the product into the customer's cart. An
// existing line for the same product is overwritten, not summed.
func (c *Cart) AddToCart(ctx context.Context, customerID, productID uuid.UUID, quantity int) error {
	const op = "cart.AddToCart"

	if quantity <= 0 {
		return ErrQuantityInvalid
	}

	product, err := c.products.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if product.Quantity < quantity {
		return ErrInsufficientStock
	}

	item, err := c.repo.GetCartItem(ctx, customerID, productID)
	if err != nil {
		if !errors.Is(err, repo.ErrCartItemNotFound) {
			return fmt.Errorf("%s: %w", op, err)
		}
		item = entity.CartItem{CustomerID: customerID, ProductID: productID}
	}

	item.Quantity = quantity
	if err := c.repo.SaveCartItem(ctx, &item); err != nil {
		c.log.Error("failed to save cart item", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Cart) CountItems(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return c.repo.CountCartItems(ctx, customerID)
}

func (c *Cart) ListItems(ctx context.Context, customerID uuid.UUID) ([]CartLine, error) {
	const op = "cart.ListItems"

	items, err := c.repo.ListCartItems(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLine{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			ImageURL:  item.Product.ImageURL,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
		})
	}
	return lines, nil
}

// UpdateQuantity sets the line's quantity; zero removes the line.
func (c *Cart) UpdateQuantity(ctx context.Context, customerID, productID uuid.UUID, quantity int) error {
	const op = "cart.UpdateQuantity"

	if quantity < 0 {
		return ErrQuantityInvalid
	}

	item, err := c.repo.GetCartItem(ctx, customerID, productID)
	if err != nil {
		if errors.Is(err, repo.ErrCartItemNotFound) {
			return ErrCartItemNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if quantity == 0 {
		if err := c.repo.DeleteCartItem(ctx, &item); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	if item.Product.Quantity < quantity {
		return ErrInsufficientStock
	}

	item.Quantity = quantity
	if err := c.repo.SaveCartItem(ctx, &item); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
