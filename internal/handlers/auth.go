package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NhatNguyen1502/ecommerce-services/internal/services"
	"github.com/NhatNguyen1502/ecommerce-services/internal/token"
)

type AuthHandler struct {
	auth  *services.Auth
	users *services.Users
}

func NewAuthHandler(auth *services.Auth, users *services.Users) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

func (h *AuthHandler) SignUp(ctx *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=8,max=100"`
		FirstName   string `json:"first_name" binding:"required,max=50"`
		LastName    string `json:"last_name" binding:"required,max=50"`
		PhoneNumber string `json:"phone_number" binding:"required"`
		Address     string `json:"address" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.users.SignUp(ctx.Request.Context(), services.CreateCustomer{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserExists):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "email already exists"})
		case errors.Is(err, services.ErrUserInactive):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "account is deactivated"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "sign up successfully"})
}

func (h *AuthHandler) SignIn(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.auth.SignIn(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"user":          result.User,
	})
}

func (h *AuthHandler) RefreshToken(ctx *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	accessToken, err := h.auth.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRefreshTokenRequired):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "refresh token is required"})
		case errors.Is(err, services.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, services.ErrInvalidRefreshToken):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		case errors.Is(err, token.ErrTokenExpired):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "token is expired"})
		case errors.Is(err, token.ErrTokenMalformed):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid refresh token"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	err := h.auth.Logout(ctx.Request.Context(), ctx.GetHeader("Authorization"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTokenAlreadyInvalid):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "token has been disabled"})
		case errors.Is(err, token.ErrTokenExpired):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "token is expired"})
		case errors.Is(err, token.ErrTokenMalformed):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "token is invalid"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "logout successfully"})
}
