package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/services"
	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware validates the admin JWT from the admin_token cookie or the
// Authorization header and stores its claims in the context.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Set("adminRole", claims.Role)

		c.Next()
	}
}

// RequireWriteRoleMiddleware blocks viewers from write endpoints.
func RequireWriteRoleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminRole, exists := c.Get("adminRole")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			c.Abort()
			return
		}

		if adminRole != services.RoleAdmin && adminRole != services.RoleSuperAdmin {
			log.Printf("[auth] role=%v attempted write action path=%s", adminRole, c.FullPath())
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
