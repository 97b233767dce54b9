package middleware

import (
	"net/http"
	"strings"

	"gamefi_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// JWT validates the bearer session token and stores the caller identity in
// the request context under "user_id" and "public_address".
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		userID, publicAddress, err := service.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("user_id", userID)
		c.Set("public_address", publicAddress)
		c.Next()
	}
}
