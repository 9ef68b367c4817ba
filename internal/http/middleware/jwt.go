package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kittens_server/internal/service"
)

// JWT validates the bearer token and stores player identity in the context.
// The token can come from the Authorization header or, for websocket upgrades,
// from the "token" query parameter.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		playerID, name, err := service.ParseJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("player_id", playerID)
		c.Set("player_name", name)
		c.Next()
	}
}
