package middleware

import (
	"net/http"

	"launchpad/internal/domain"

	"github.com/gin-gonic/gin"
)

// AdminRequired checks that the authenticated user has the ADMIN role.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
