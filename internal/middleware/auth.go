package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"launchpad/config"
	"launchpad/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the JWT and sets user_id, role and claims in context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}
		claims, err := auth.ParseAccessToken(cfg, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// ServiceTokenRequired guards service-to-service endpoints with a shared
// bearer token. An empty configured token rejects everything.
func ServiceTokenRequired(cfg *config.InternalConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}
		if cfg.ServiceToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(cfg.ServiceToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid service token"})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
		return "", false
	}
	return parts[1], true
}

// GetUserID returns the authenticated user ID from context (must be used after AuthRequired).
func GetUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
