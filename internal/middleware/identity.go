package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "shareit/internal/pkg/jwt"
	"shareit/internal/pkg/response"
)

// UserIDHeader carries the acting user's id on direct calls.
const UserIDHeader = "X-Sharer-User-Id"

const userIDKey = "user_id"

// Identity resolves the acting user. A bearer token minted by the gateway takes
// precedence; without one the X-Sharer-User-Id header is trusted.
func Identity(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h := c.GetHeader("Authorization"); h != "" {
			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
				c.Abort()
				return
			}
			if jwt == nil {
				response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Token authentication is not configured")
				c.Abort()
				return
			}
			claims, err := jwt.ValidateToken(strings.TrimSpace(parts[1]))
			if err != nil {
				response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
				c.Abort()
				return
			}
			c.Set(userIDKey, claims.UserID)
			c.Next()
			return
		}

		raw := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if raw == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", UserIDHeader+" header is required")
			c.Abort()
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_USER_ID", UserIDHeader+" must be a positive integer")
			c.Abort()
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

// UserID returns the id stored by Identity, or 0.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
