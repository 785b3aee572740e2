package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NhatNguyen1502/ecommerce-services/internal/token"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth guards protected routes: the request must carry a valid, non-revoked,
// non-expired access token.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := tokens.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "authorization header is missing or invalid"})
			return
		}

		invalid, err := tokens.IsTokenInvalid(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not verify token"})
			return
		}
		if invalid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token has been disabled, please log in again"})
			return
		}

		claims, err := tokens.DecodeToken(raw)
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is invalid"})
			return
		}

		// Refresh tokens never authorize API calls.
		if claims.Type != token.TypeAccess {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is invalid"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Subject)
		c.Set(CtxRole, claims.Role)

		c.Next()
	}
}

// RequireRole allows only the listed role labels past.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
	}
}
