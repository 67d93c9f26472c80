package api

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Sagarika1109/Network-Security-Scanner/docs"
	"github.com/Sagarika1109/Network-Security-Scanner/logging"
)

// Run initializes dependencies and starts the API server. Configuration comes
// from the environment, optionally seeded from a .env file:
//
//	REDIS_ADDR        redis host:port (default localhost:6379)
//	API_KEY           bearer token required on /api/v1 when set
//	LISTEN_ADDR       HTTP listen address (default :8080)
//	SCAN_WORKERS      background scan worker count (default 5)
//	RATE_LIMIT        requests per window per client IP (default 60)
//	RATE_LIMIT_WINDOW window in seconds (default 60)
func Run() error {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	logger := logging.Configure()

	redisAddr := getenv("REDIS_ADDR", "localhost:6379")
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", redisAddr, err)
	}

	store := NewRedisStore(redisClient)

	workers := getenvInt("SCAN_WORKERS", 5)
	StartWorkers(store, workers)

	rateLimit := int64(getenvInt("RATE_LIMIT", 60))
	rateWindow := time.Duration(getenvInt("RATE_LIMIT_WINDOW", 60)) * time.Second

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware(logger))
	router.Use(SecurityHeadersMiddleware())

	v1 := router.Group("/api/v1")
	if apiKey := os.Getenv("API_KEY"); apiKey != "" {
		v1.Use(AuthMiddleware(apiKey, logger))
	}
	v1.Use(RateLimitMiddleware(redisClient, rateLimit, rateWindow, logger))

	server := NewServer(store)
	server.RegisterRoutes(v1)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	listenAddr := getenv("LISTEN_ADDR", ":8080")
	logger.Info("starting scan API server", "addr", listenAddr, "workers", workers)
	return router.Run(listenAddr)
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
