package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"garbage-watch/db"
)

// AdminAuth gates a route group behind a Firebase ID token with the admin
// claim set. The token arrives as "Authorization: Bearer <token>".
func AdminAuth(dbClient *db.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		idToken := strings.TrimPrefix(header, "Bearer ")
		if idToken == "" || idToken == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}

		token, err := dbClient.VerifyAdminToken(c.Request.Context(), idToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set("adminUID", token.UID)
		c.Next()
	}
}
