package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InternalAuthMiddleware guards operator-only routes with the token from
// configuration. An empty configured token rejects every request.
func InternalAuthMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authToken := c.GetHeader("X-Internal-Auth")

		if token == "" || authToken != token {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Forbidden",
			})
			return
		}

		c.Next()
	}
}
