package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NhatNguyen1502/ecommerce-services/internal/entity"
	"github.com/NhatNguyen1502/ecommerce-services/internal/services"
)

type CatalogHandler struct {
	catalog *services.Catalog
	reviews *services.Reviews
}

func NewCatalogHandler(catalog *services.Catalog, reviews *services.Reviews) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, reviews: reviews}
}

type productResponse struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	Price        float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	IsFeatured   bool      `json:"is_featured"`
}

func toProductResponse(p entity.Product) productResponse {
	return productResponse{
		ID:           p.ID,
		CategoryID:   p.CategoryID,
		CategoryName: p.Category.Name,
		Name:         p.Name,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		Price:        p.Price,
		Quantity:     p.Quantity,
		IsFeatured:   p.IsFeatured,
	}
}

func (h *CatalogHandler) CreateCategory(ctx *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required,max=25"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	category, err := h.catalog.CreateCategory(ctx.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrCategoryExists) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "category exists"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": category.ID, "name": category.Name})
}

func (h *CatalogHandler) UpdateCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required,max=25"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.catalog.UpdateCategory(ctx.Request.Context(), id, req.Name); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "category updated"})
}

func (h *CatalogHandler) DeleteCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteCategory(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListCategories(ctx *gin.Context) {
	categories, err := h.catalog.ListCategories(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]gin.H, 0, len(categories))
	for _, c := range categories {
		out = append(out, gin.H{"id": c.ID, "name": c.Name})
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": out})
}

func (h *CatalogHandler) CreateProduct(ctx *gin.Context) {
	var req struct {
		CategoryID  uuid.UUID `json:"category_id" binding:"required"`
		Name        string    `json:"name" binding:"required,max=200"`
		Description string    `json:"description"`
		ImageURL    string    `json:"image_url" binding:"required"`
		Price       float64   `json:"price" binding:"required,gt=0"`
		Quantity    int       `json:"quantity" binding:"required,gt=0"`
		IsFeatured  bool      `json:"is_featured"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	product, err := h.catalog.CreateProduct(ctx.Request.Context(), services.CreateProduct{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Quantity:    req.Quantity,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": product.ID})
}

func (h *CatalogHandler) UpdateProduct(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req struct {
		CategoryID  uuid.UUID `json:"category_id" binding:"required"`
		Name        string    `json:"name" binding:"required,max=200"`
		Description string    `json:"description"`
		ImageURL    string    `json:"image_url" binding:"required"`
		Price       float64   `json:"price" binding:"required,gt=0"`
		Quantity    int       `json:"quantity" binding:"required,gt=0"`
		IsFeatured  bool      `json:"is_featured"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.catalog.UpdateProduct(ctx.Request.Context(), id, services.CreateProduct{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Quantity:    req.Quantity,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, services.ErrCategoryNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

func (h *CatalogHandler) DeleteProduct(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteProduct(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *CatalogHandler) GetProduct(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toProductResponse(product))
}

func (h *CatalogHandler) ListProducts(ctx *gin.Context) {
	page, size := pagination(ctx)

	var categoryID *uuid.UUID
	if raw := ctx.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "id should be a UUID"})
			return
		}
		categoryID = &id
	}

	products, total, err := h.catalog.ListProducts(ctx.Request.Context(), categoryID, page, size)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	ctx.JSON(http.StatusOK, gin.H{"products": out, "total": total, "page": page, "size": size})
}

func (h *CatalogHandler) ListFeaturedProducts(ctx *gin.Context) {
	products, err := h.catalog.ListFeaturedProducts(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	ctx.JSON(http.StatusOK, gin.H{"products": out})
}

func (h *CatalogHandler) ListProductReviews(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	entries, err := h.reviews.ListProductReviews(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"reviews": entries})
}
