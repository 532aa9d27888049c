package main

import (
	"context" // context package is needed for Redis operations

	"card_transfer/internal/api"        // Custom package for API handlers
	"card_transfer/internal/cache"      // Custom package for the leaderboard cache
	"card_transfer/internal/config"     // Custom package for configuration
	"card_transfer/internal/db"         // Custom package for the database connection
	"card_transfer/internal/middleware" // Custom package for middleware
	"card_transfer/internal/queue"      // Custom package for transfer events
	"card_transfer/internal/service"    // Custom package for business logic
	"card_transfer/internal/store"      // Custom package for the card ledger

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(cfg.LogLevel)

	// Connect to the database
	gdb, err := db.Connect(cfg.DSN(), cfg.LogLevel >= logrus.DebugLevel)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	ledger := store.New(gdb) // Card ledger store

	// Setup Redis client when configured
	var leaderboard service.LeaderboardCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		leaderboard = cache.NewLeaderboard(redisClient, cfg.LeaderboardTTL)
	} else {
		logrus.Warn("REDIS_ADDR not set, leaderboard cache disabled")
	}

	// Setup RabbitMQ publisher when configured
	var publisher service.TransferPublisher
	if cfg.AMQPURL != "" {
		p, err := queue.Dial(cfg.AMQPURL)
		if err != nil {
			logrus.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		logrus.Warn("AMQP_URL not set, transfer events disabled")
	}

	// Setup services
	transfers := service.NewTransferService(ledger, leaderboard, publisher)
	reporter := service.NewReporter(ledger, service.WithCache(leaderboard))

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.New()                                                        // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog()) // Recovery, request IDs, access log

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	api.RegisterRoutes(r, transfers, reporter) // Transaction routes

	logrus.Info("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
