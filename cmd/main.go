package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisCache "github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/cache/redis"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/http/handler"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/http/router"
	natsAdapter "github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/messaging/nats"
	mongoRepo "github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/repository/mongodb"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/storage/s3"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/config"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/tracer"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/usecase"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, for local development)
	if err := godotenv.Load(); err != nil {
		fmt.Printf("INFO: .env file not found or error loading: %v. Relying on OS environment variables.\n", err)
	}

	// 1. Logger
	appLogger := logger.NewLogger()
	defer func() { _ = appLogger.Sync() }()

	// 2. Configuration
	cfg, err := config.LoadConfig(appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load configuration", zap.Error(err))
	}
	appLogger.Info("Application starting...", zap.String("service_name", cfg.ServiceName))

	// 3. Tracer
	tp := tracer.InitTracer(cfg.ServiceName, cfg.OTExporterOTLPEndpoint, appLogger)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			appLogger.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	// 4. MongoDB
	mongoClient, err := mongoRepo.Connect(context.Background(), cfg.MongoURI, 10*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		appLogger.Info("Disconnecting from MongoDB...")
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			appLogger.Error("Error disconnecting from MongoDB", zap.Error(err))
		}
	}()
	appLogger.Info("Successfully connected and pinged MongoDB.")
	db := mongoClient.Database(cfg.MongoDatabase)

	// 5. Media storage
	storage, err := s3.NewStorage(context.Background(), cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize media storage", zap.Error(err))
	}

	// 6. Redis cache. The service runs without it when Redis is unreachable.
	var cache domain.CacheRepository
	redisClient, err := redisCache.NewClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, appLogger)
	if err != nil {
		appLogger.Warn("Redis unavailable, video cache disabled", zap.Error(err))
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				appLogger.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		cache = redisCache.NewCache(redisClient, appLogger)
	}

	// 7. NATS publisher. Events are best-effort, so a missing broker is not fatal.
	var events domain.EventPublisher
	healthChecks := []handler.HealthCheck{{
		Name: "mongodb",
		Check: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, readpref.Primary())
		},
	}}
	natsPublisher, err := natsAdapter.NewPublisher(cfg.NATSURL, appLogger, cfg.ServiceName)
	if err != nil {
		appLogger.Warn("NATS unavailable, domain events disabled", zap.Error(err))
	} else {
		defer natsPublisher.Close()
		events = natsPublisher
		healthChecks = append(healthChecks, handler.HealthCheck{Name: "nats", Check: natsPublisher.Ping})
	}

	// 8. Repositories
	videoRepo := mongoRepo.NewVideoRepository(db, appLogger)
	commentRepo := mongoRepo.NewCommentRepository(db, appLogger)
	tweetRepo := mongoRepo.NewTweetRepository(db, appLogger)
	playlistRepo := mongoRepo.NewPlaylistRepository(db, appLogger)
	likeRepo, err := mongoRepo.NewLikeRepository(db, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize like repository", zap.Error(err))
	}
	subscriptionRepo, err := mongoRepo.NewSubscriptionRepository(db, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize subscription repository", zap.Error(err))
	}
	appLogger.Info("Repositories initialized.")

	// 9. Usecases
	videoUsecase := usecase.NewVideoUsecase(videoRepo, commentRepo, likeRepo, storage, cache, events, cfg.CacheTTL, appLogger)
	commentUsecase := usecase.NewCommentUsecase(commentRepo, videoRepo, likeRepo, events, appLogger)
	tweetUsecase := usecase.NewTweetUsecase(tweetRepo, likeRepo, events, appLogger)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepo, videoRepo, events, appLogger)
	likeUsecase := usecase.NewLikeUsecase(likeRepo, videoRepo, commentRepo, tweetRepo, events, appLogger)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepo, events, appLogger)
	dashboardUsecase := usecase.NewDashboardUsecase(videoRepo, likeRepo, subscriptionRepo, appLogger)

	// 10. Metrics
	metricsManager := metrics.NewMetricsManager(cfg.ServiceName)
	metricsServer := metrics.StartMetricsServer(cfg.PrometheusMetricsPort, appLogger, metricsManager)

	// 11. HTTP server
	handlers := router.Handlers{
		Videos:        handler.NewVideoHandler(videoUsecase, cfg.MaxUploadBytes(), appLogger, metricsManager),
		Comments:      handler.NewCommentHandler(commentUsecase, appLogger, metricsManager),
		Tweets:        handler.NewTweetHandler(tweetUsecase, appLogger, metricsManager),
		Playlists:     handler.NewPlaylistHandler(playlistUsecase, appLogger, metricsManager),
		Likes:         handler.NewLikeHandler(likeUsecase, appLogger, metricsManager),
		Subscriptions: handler.NewSubscriptionHandler(subscriptionUsecase, appLogger, metricsManager),
		Dashboard:     handler.NewDashboardHandler(dashboardUsecase, appLogger, metricsManager),
		Health:        handler.NewHealthHandler(appLogger, healthChecks...),
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router.NewRouter(handlers, cfg.JWTSecret, appLogger, metricsManager),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting HTTP server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		appLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-serverErr:
		appLogger.Error("HTTP server failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	appLogger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(ctx); err != nil {
			appLogger.Error("Metrics server shutdown failed", zap.Error(err))
		}
	}

	appLogger.Info("Application shutting down...")
	// Deferred cleanups (NATS, Redis, MongoDB, tracer) run now.
}
