package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/shared/response"
	"bookshelf-backend/pkg/jwt"
)

// Auth xác thực Bearer token trước khi cho phép ghi dữ liệu
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "AUTH_001", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "AUTH_002", "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "AUTH_003", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userName", claims.Name)

		c.Next()
	}
}
