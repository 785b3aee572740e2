package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NhatNguyen1502/ecommerce-services/internal/services"
)

type CartHandler struct {
	cart    *services.Cart
	reviews *services.Reviews
}

func NewCartHandler(cart *services.Cart, reviews *services.Reviews) *CartHandler {
	return &CartHandler{cart: cart, reviews: reviews}
}

func (h *CartHandler) AddToCart(ctx *gin.Context) {
	customerID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req struct {
		ProductID uuid.UUID `json:"product_id" binding:"required"`
		Quantity  int       `json:"quantity" binding:"required,gt=0"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.cart.AddToCart(ctx.Request.Context(), customerID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, services.ErrInsufficientStock):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "insufficient stock"})
		case errors.Is(err, services.ErrQuantityInvalid):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be greater than zero"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "added to cart"})
}

func (h *CartHandler) GetCart(ctx *gin.Context) {
	customerID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	lines, err := h.cart.ListItems(ctx.Request.Context(), customerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": lines})
}

func (h *CartHandler) GetCartCount(ctx *gin.Context) {
	customerID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	count, err := h.cart.CountItems(ctx.Request.Context(), customerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *CartHandler) UpdateCartItem(ctx *gin.Context) {
	customerID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	productID, ok := pathID(ctx, "productId")
	if !ok {
		return
	}

	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.cart.UpdateQuantity(ctx.Request.Context(), customerID, productID, *req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartItemNotFound):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "cart item not found"})
		case errors.Is(err, services.ErrInsufficientStock):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "insufficient stock"})
		case errors.Is(err, services.ErrQuantityInvalid):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "quantity must not be negative"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "cart updated"})
}

func (h *CartHandler) CreateReview(ctx *gin.Context) {
	customerID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	productID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Content string `json:"content" binding:"max=2000"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.reviews.CreateReview(ctx.Request.Context(), customerID, productID, req.Rating, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, services.ErrReviewExists):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "product already reviewed"})
		case errors.Is(err, services.ErrRatingInvalid):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "review created"})
}
