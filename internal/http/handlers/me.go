package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Me echoes the identity from the token, so the frontend can restore a
// session after reload.
func (h *Handler) Me(c *gin.Context) {
	playerID, _ := c.Get("player_id")
	name, _ := c.Get("player_name")

	c.JSON(http.StatusOK, gin.H{
		"id":   playerID,
		"name": name,
	})
}
