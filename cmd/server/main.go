package main

import (
	"bungeoppang/internal/api"     // Custom package for API handlers
	"bungeoppang/internal/config"  // Custom package for configuration
	"bungeoppang/internal/db"      // Custom package for database access
	"bungeoppang/internal/service" // Custom package for business operations
	"bungeoppang/internal/utils"   // Custom package for cache and logging helpers
	"context"                      // context package is needed for Redis operations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// devJWTSecret signs tokens when no secret is configured outside production
const devJWTSecret = "bungeoppang-dev-secret"

// Main function to set up and run the server
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	// Setup logger
	if err := utils.SetupLogger(cfg.IsProd, cfg.LogLevel); err != nil {
		logrus.Fatalf("failed to setup logger: %v", err)
	}

	// Connect to the database and bring the schema up to date
	conn, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	if err := db.Migrate(conn); err != nil {
		logrus.Fatalf("failed to migrate DB: %v", err)
	}

	// Setup Redis client when caching is configured
	var store utils.CacheStore // Stays nil when caching is disabled
	if cfg.CacheEnabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		store = redisClient
	} else {
		logrus.Info("REDIS_ADDR not set, listing cache disabled")
	}

	jwtSecret := cfg.JWTSecret // Production config guarantees a secret
	if jwtSecret == "" {
		logrus.Warn("JWT_SECRET not set, using development secret")
		jwtSecret = devJWTSecret
	}

	svc, err := service.New(conn, service.WithMaxCodeAttempts(cfg.CodeMaxAttempts))
	if err != nil {
		logrus.Fatalf("failed to create service: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(svc, utils.NewListCache(store, cfg.CacheTTL), jwtSecret) // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.WithField("port", cfg.AppPort).Info("Server running") // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
