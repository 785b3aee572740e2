package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NhatNguyen1502/ecommerce-services/internal/services"
)

type UserHandler struct {
	users *services.Users
}

func NewUserHandler(users *services.Users) *UserHandler {
	return &UserHandler{users: users}
}

// GetProfile returns the authenticated customer's own details.
func (h *UserHandler) GetProfile(ctx *gin.Context) {
	id, ok := currentUserID(ctx)
	if !ok {
		return
	}

	detail, err := h.users.GetCustomer(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

func (h *UserHandler) UpdateProfile(ctx *gin.Context) {
	id, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req struct {
		FirstName   string `json:"first_name" binding:"required,max=50"`
		LastName    string `json:"last_name" binding:"required,max=50"`
		PhoneNumber string `json:"phone_number" binding:"required"`
		Address     string `json:"address" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.users.UpdateCustomer(ctx.Request.Context(), id, services.UpdateCustomer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

// ListCustomers is admin-only.
func (h *UserHandler) ListCustomers(ctx *gin.Context) {
	page, size := pagination(ctx)

	customers, total, err := h.users.ListCustomers(ctx.Request.Context(), page, size)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"customers": customers, "total": total, "page": page, "size": size})
}

func (h *UserHandler) GetCustomer(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	detail, err := h.users.GetCustomer(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

func (h *UserHandler) UpdateCustomerStatus(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.users.SetCustomerStatus(ctx.Request.Context(), id, *req.IsActive); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

func (h *UserHandler) DeleteCustomer(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.users.DeleteCustomer(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
