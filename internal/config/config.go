package config

import (
	"os"
	"strconv"
	"time"

	"kittens_server/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	JWTSecret   string
	DatabaseURL string // optional: match history is skipped when empty

	RedisAddr     string // optional: rate limiting fails open when empty
	RedisPassword string
	RedisDB       int

	LogLevel string
	LogJSON  bool

	// Game tuning
	NopeWindow  time.Duration
	NopeExtend  time.Duration
	MaxRoomSize int

	// Rate limits
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// Загрузка конфига из env
func Load() *Config {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	// Окно для Nope (по умолчанию как в базовых правилах)
	nopeWindow := 5000
	if v := os.Getenv("NOPE_WINDOW_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			nopeWindow = n
		}
	}

	nopeExtend := 3000
	if v := os.Getenv("NOPE_EXTEND_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			nopeExtend = n
		}
	}

	maxRoomSize := 5
	if v := os.Getenv("MAX_ROOM_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 2 {
			maxRoomSize = n
		}
	}

	authRateLimit := 5
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			authRateLimit = n
		}
	}

	authRateWindow := time.Minute
	if v := os.Getenv("AUTH_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			authRateWindow = time.Duration(n) * time.Second
		}
	}

	return &Config{
		AppPort:        port,
		JWTSecret:      jwtSecret,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogJSON:        os.Getenv("LOG_JSON") == "true",
		NopeWindow:     time.Duration(nopeWindow) * time.Millisecond,
		NopeExtend:     time.Duration(nopeExtend) * time.Millisecond,
		MaxRoomSize:    maxRoomSize,
		AuthRateLimit:  authRateLimit,
		AuthRateWindow: authRateWindow,
	}
}
