package http

import (
	"os"
	"strconv"
	"time"

	"kittens_server/internal/config"
	"kittens_server/internal/game"
	"kittens_server/internal/http/handlers"
	"kittens_server/internal/http/middleware"
	"kittens_server/internal/repository"
	"kittens_server/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) *ws.Hub {
	h := handlers.NewHandler(db)

	matchRepo := repository.NewMatchRepository(db)
	hub := ws.NewHub(matchRepo, cfg.MaxRoomSize, game.Options{
		NopeWindow: cfg.NopeWindow,
		NopeExtend: cfg.NopeExtend,
	})
	hub.StartCleanup()

	healthHandler := handlers.NewHealthHandler(db, hub, version)

	// read limits from env, with safe defaults
	apiRateLimit := 30
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))
	v1.POST("/auth", middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow), h.Auth)
	v1.GET("/me", middleware.JWT(), h.Me)
	v1.GET("/matches", h.RecentMatches)

	// WebSocket for game rooms
	r.GET("/ws", h.WS(hub))

	// Frontend static files
	r.StaticFS("/assets", gin.Dir("./web", false))
	r.NoRoute(func(c *gin.Context) {
		c.File("./web/index.html")
	})

	return hub
}
