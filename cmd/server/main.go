package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/prizedraw/internal/common/clock"
	"github.com/KirkDiggler/prizedraw/internal/common/uuid"
	"github.com/KirkDiggler/prizedraw/internal/config"
	"github.com/KirkDiggler/prizedraw/internal/handlers/httpapi"
	"github.com/KirkDiggler/prizedraw/internal/random"
	"github.com/KirkDiggler/prizedraw/internal/repositories/tenant"
	"github.com/KirkDiggler/prizedraw/internal/services/lottery"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Initialize repository; this also tests the connection
	tenantRepo, err := tenant.NewRedis(&tenant.Config{
		RedisClient: redisClient,
		KeyPrefix:   cfg.KeyPrefix,
		Timeout:     cfg.StorageTimeout,
	})
	if err != nil {
		logger.Fatal("Failed to create tenant repository", zap.Error(err))
	}

	// Initialize lottery service
	lotterySvc, err := lottery.New(&lottery.Config{
		Repository:    tenantRepo,
		Randomizer:    random.New(&random.Config{Seed: cfg.RandomSeed}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("Failed to create lottery service", zap.Error(err))
	}

	handler, err := httpapi.New(&httpapi.Config{
		Service: lotterySvc,
		HealthCheck: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("Failed to create HTTP handler", zap.Error(err))
	}

	if !cfg.LogDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to run server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Error stopping server", zap.Error(err))
	}

	logger.Info("Server has been shut down")
}

// newLogger builds a production or development zap logger at the configured level
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.LogDevelopment {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
