package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/pkg/jwt"
)

const (
	// ContextUserID key for the authenticated user's id
	ContextUserID = "userID"
	// ContextUserRole key for the authenticated user's role
	ContextUserRole = "userRole"
)

// JWTAuth verifies the Bearer token and stores the caller's identity in
// the request context
func JWTAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, http.StatusUnauthorized, "authorization header required", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			common.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format", nil)
			c.Abort()
			return
		}

		claims, err := manager.VerifyToken(tokenString)
		if err != nil {
			common.ErrorResponse(c, http.StatusUnauthorized, err.Error(), nil)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after JWTAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if role != string(domain.RoleAdmin) {
			common.ErrorResponse(c, http.StatusForbidden, "admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetActor reads the authenticated caller out of the request context
func GetActor(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   c.GetString(ContextUserID),
		Role: domain.Role(c.GetString(ContextUserRole)),
	}
}
