package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NhatNguyen1502/ecommerce-services/internal/middleware"
)

// currentUserID reads the authenticated user's id placed in the context by
// the auth middleware. Aborts with 401 when absent or unparseable.
func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.GetString(middleware.CtxUserID))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return uuid.Nil, false
	}
	return id, true
}

func pathID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "id should be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads ?page= and ?size= with sane defaults.
func pagination(ctx *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(ctx.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(ctx.DefaultQuery("size", "10"))
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	return page, size
}
