package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RecentMatches returns the latest finished matches. Empty list when the
// server runs without a database.
func (h *Handler) RecentMatches(c *gin.Context) {
	if h.MatchRepo == nil {
		c.JSON(http.StatusOK, gin.H{"matches": []any{}})
		return
	}

	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	matches, err := h.MatchRepo.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load matches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
