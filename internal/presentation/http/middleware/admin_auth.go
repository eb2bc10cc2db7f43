package middleware

import (
	"strings"

	"github.com/bakehouse/counter-api/internal/presentation/http/dto/response"
	"github.com/bakehouse/counter-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AdminTokenKey is the context key holding the raw admin session token.
const AdminTokenKey = "admin_token"

// AdminAuthMiddleware validates the admin session token on destructive
// routes. The raw token is also stashed in the context so services that run
// their own authorization gate can re-check it.
func AdminAuthMiddleware(tokenManager *utils.AdminTokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]

		if _, err := tokenManager.Validate(tokenString); err != nil {
			response.Unauthorized(c, "Invalid or expired admin token")
			c.Abort()
			return
		}

		c.Set(AdminTokenKey, tokenString)

		c.Next()
	}
}

// GetAdminToken extracts the validated admin token from the Gin context.
func GetAdminToken(c *gin.Context) string {
	token, exists := c.Get(AdminTokenKey)
	if !exists {
		return ""
	}
	s, ok := token.(string)
	if !ok {
		return ""
	}
	return s
}
