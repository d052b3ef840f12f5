package middleware

import (
	"net/http"
	"strings"

	"github.com/Gothsec/centro-digital/models"
	"github.com/Gothsec/centro-digital/services"
	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware validates the admin JWT from the auth cookie or the
// Authorization header, then checks that the session has not been revoked.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		cookieToken, err := c.Cookie("admin_token")
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			// Fallback to Authorization header
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization required"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}

			token = parts[1]
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		// Reject tokens whose session was revoked by logout
		if _, err := services.GetSessionService().ValidateSession(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Session expired"))
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Set("adminToken", token)

		c.Next()
	}
}

// GetAdminIDFromContext returns the authenticated admin id set by the middleware
func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	adminID, exists := c.Get("adminID")
	if !exists {
		return "", false
	}
	return adminID.(string), true
}

// GetAdminTokenFromContext returns the raw token set by the middleware
func GetAdminTokenFromContext(c *gin.Context) (string, bool) {
	token, exists := c.Get("adminToken")
	if !exists {
		return "", false
	}
	return token.(string), true
}
