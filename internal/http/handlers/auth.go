package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"kittens_server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthRequest struct {
	Name string `json:"name"`
}

const maxNameLength = 24

// Auth issues a guest token. No accounts: a player picks a display name and
// gets a fresh player id for the session.
func (h *Handler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name too long"})
		return
	}

	playerID := uuid.NewString()

	token, err := service.GenerateJWT(playerID, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"player": gin.H{
			"id":   playerID,
			"name": name,
		},
	})
}
