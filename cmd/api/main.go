package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"farmatch-backend/config"
	_ "farmatch-backend/docs" // Important for Swagger
	v1 "farmatch-backend/internal/delivery/http/v1"
	"farmatch-backend/internal/domain"
	"farmatch-backend/internal/gateway"
	"farmatch-backend/internal/repository/memory"
	"farmatch-backend/internal/repository/postgres"
	redisrepo "farmatch-backend/internal/repository/redis"
	"farmatch-backend/internal/usecase"
	"farmatch-backend/pkg/database"
	"farmatch-backend/pkg/logger"
	"farmatch-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           FarMatch API
// @version         1.0
// @description     Builder matchmaking backend for the FarMatch Farcaster mini-app.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting farmatch backend", "port", cfg.Port, "store", cfg.StoreDriver)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	// 3. Setup Stores
	var (
		profileRepo      domain.ProfileRepository
		notificationRepo domain.NotificationRepository
		rdb              *goredis.Client
	)

	if cfg.UpstashRedisURL != "" {
		rdb, err = redis.Connect(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			if cfg.StoreDriver == config.StoreRedis {
				logger.Log.Error("Failed to connect to Redis", "error", err)
				os.Exit(1)
			}
			logger.Log.Warn("Redis unavailable, notification details kept in memory", "error", err)
			rdb = nil
		}
	}
	if rdb != nil {
		defer rdb.Close()
		notificationRepo = redisrepo.NewNotificationRepository(rdb)
	} else {
		notificationRepo = memory.NewNotificationRepository()
	}

	switch cfg.StoreDriver {
	case config.StoreRedis:
		if rdb == nil {
			logger.Log.Error("STORE_DRIVER=redis requires UPSTASH_REDIS_URL")
			os.Exit(1)
		}
		profileRepo = redisrepo.NewProfileRepository(rdb)
	case config.StorePostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			logger.Log.Error("Failed to prepare database", "error", err)
			os.Exit(1)
		}
		profileRepo = postgres.NewProfileRepository(pool)
	default:
		profileRepo = memory.NewProfileRepository()
	}

	// 4. Setup UseCases
	var notifier domain.Notifier
	if cfg.NotificationsEnabled {
		notifier = gateway.NewFarcasterNotifier(cfg.NotificationTimeout)
	}
	var pendingNotifications sync.WaitGroup
	frameUC := usecase.NewFrameUsecase(notificationRepo, notifier, cfg.NotificationHosts)
	matchUC := usecase.NewMatchUsecase(profileRepo, frameUC, usecase.NewAnswerValidator(), usecase.MatchOptions{
		Threshold:     cfg.MatchThreshold,
		Limit:         cfg.MatchLimit,
		TargetURL:     cfg.AppURL,
		NotifyTimeout: cfg.NotificationTimeout,
		Pending:       &pendingNotifications,
	})
	adminUC := usecase.NewAdminUsecase(profileRepo, cfg.AdminSecret)

	var notificationStore goredis.UniversalClient
	if rdb != nil {
		notificationStore = rdb
	}
	healthUC := usecase.NewHealthUsecase(profileRepo, cfg.StoreDriver, notificationStore)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		MatchUC:  matchUC,
		AdminUC:  adminUC,
		FrameUC:  frameUC,
		HealthUC: healthUC,
		Config:   cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	// Let background notifications finish; each is bounded by NOTIFICATION_TIMEOUT
	drained := make(chan struct{})
	go func() {
		pendingNotifications.Wait()
		close(drained)
	}()
	select {
	case <-drained:
	case <-shutdownCtx.Done():
		logger.Log.Warn("Shutdown timed out with notifications in flight")
	}

	logger.Log.Info("Server exiting")
}
