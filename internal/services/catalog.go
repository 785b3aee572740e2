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
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrProductNotFound  = errors.New("product not found")
)

type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (entity.Category, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	SaveCategory(ctx context.Context, category *entity.Category) error

	CreateProduct(ctx context.Context, product *entity.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (entity.Product, error)
	ListProducts(ctx context.Context, categoryID *uuid.UUID, page, size int) ([]entity.Product, int64, error)
	ListFeaturedProducts(ctx context.Context) ([]entity.Product, error)
	SaveProduct(ctx context.Context, product *entity.Product) error
}

type Catalog struct {
	log  *slog.Logger
	repo CatalogRepository
}

func NewCatalog(log *slog.Logger, repo CatalogRepository) *Catalog {
	return &Catalog{log: log, repo: repo}
}

func (c *Catalog) CreateCategory(ctx context.Context, name string) (entity.Category, error) {
	const op = "catalog.CreateCategory"

	category := entity.Category{Name: name}
	if err := c.repo.CreateCategory(ctx, &category); err != nil {
		if errors.Is(err, repo.ErrCategoryAlreadyExists) {
			return entity.Category{}, ErrCategoryExists
		}
		c.log.Error("failed to create category", "op", op, "error", err)
		return entity.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return category, nil
}

func (c *Catalog) UpdateCategory(ctx context.Context, id uuid.UUID, name string) error {
	const op = "catalog.UpdateCategory"

	category, err := c.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	category.Name = name
	if err := c.repo.SaveCategory(ctx, &category); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Catalog) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "catalog.DeleteCategory"

	category, err := c.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	category.IsDeleted = true
	if err := c.repo.SaveCategory(ctx, &category); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Catalog) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return c.repo.ListCategories(ctx)
}

type CreateProduct struct {
	CategoryID  uuid.UUID
	Name        string
	Description string
	ImageURL    string
	Price       float64
	Quantity    int
	IsFeatured  bool
}

func (c *Catalog) CreateProduct(ctx context.Context, req CreateProduct) (entity.Product, error) {
	const op = "catalog.CreateProduct"

	if _, err := c.repo.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			return entity.Product{}, ErrCategoryNotFound
		}
		return entity.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	product := entity.Product{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Quantity:    req.Quantity,
		IsFeatured:  req.IsFeatured,
	}

	if err := c.repo.CreateProduct(ctx, &product); err != nil {
		c.log.Error("failed to create product", "op", op, "error", err)
		return entity.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return product, nil
}

func (c *Catalog) UpdateProduct(ctx context.Context, id uuid.UUID, req CreateProduct) error {
	const op = "catalog.UpdateProduct"

	product, err := c.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if req.CategoryID != product.CategoryID {
		if _, err := c.repo.GetCategoryByID(ctx, req.CategoryID); err != nil {
			if errors.Is(err, repo.ErrCategoryNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	product.CategoryID = req.CategoryID
	product.Name = req.Name
	product.Description = req.Description
	product.ImageURL = req.ImageURL
	product.Price = req.Price
	product.Quantity = req.Quantity
	product.IsFeatured = req.IsFeatured

	if err := c.repo.SaveProduct(ctx, &product); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Catalog) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	const op = "catalog.DeleteProduct"

	product, err := c.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	product.IsDeleted = true
	if err := c.repo.SaveProduct(ctx, &product); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Catalog) GetProduct(ctx context.Context, id uuid.UUID) (entity.Product, error) {
	product, err := c.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return entity.Product{}, ErrProductNotFound
		}
		return entity.Product{}, err
	}
	return product, nil
}

func (c *Catalog) ListProducts(ctx context.Context, categoryID *uuid.UUID, page, size int) ([]entity.Product, int64, error) {
	return c.repo.ListProducts(ctx, categoryID, page, size)
}

func (c *Catalog) ListFeaturedProducts(ctx context.Context) ([]entity.Product, error) {
	return c.repo.ListFeaturedProducts(ctx)
}
