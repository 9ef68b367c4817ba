package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientInfo struct {
	last  time.Time
	count int
}

var rlMu sync.Mutex
var clients = make(map[string]*clientInfo)

// SimpleRateLimit blocks clients that send more than maxRequests per window.
// In-memory fallback used when Redis is not configured.
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if allowInMemory(c.ClientIP(), maxRequests, window) {
			RLRequests.WithLabelValues(c.FullPath()).Inc()
			c.Next()
			return
		}
		RLBlocked.WithLabelValues(c.FullPath()).Inc()
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
	}
}

func allowInMemory(ip string, maxRequests int, window time.Duration) bool {
	rlMu.Lock()
	defer rlMu.Unlock()

	// separate counters per window size, same as the redis key scheme
	key := ip + ":" + window.String()
	now := time.Now()
	ci, ok := clients[key]
	if !ok || now.Sub(ci.last) > window {
		clients[key] = &clientInfo{last: now, count: 1}
		return true
	}

	ci.count++
	return ci.count <= maxRequests
}
