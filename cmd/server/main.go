package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vidboard/video-annotation-go/internal/config"
	"github.com/vidboard/video-annotation-go/internal/db"
	"github.com/vidboard/video-annotation-go/internal/handler"
	"github.com/vidboard/video-annotation-go/internal/metrics"
	"github.com/vidboard/video-annotation-go/internal/service"
	"github.com/vidboard/video-annotation-go/internal/store"
	"github.com/vidboard/video-annotation-go/internal/youtube"
	"github.com/vidboard/video-annotation-go/pkg/logger"
)

func main() {
	// Load .env file if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.Database.URL, db.PoolConfig{
		MaxConns:        int32(cfg.Database.MaxConnections),
		MinConns:        int32(cfg.Database.MinConnections),
		MaxConnLifetime: cfg.Database.MaxLifetime,
		MaxConnIdleTime: cfg.Database.MaxIdleTime,
	})
	if err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	logger.Log.Info("database connection established",
		zap.Int32("maxConns", pool.Config().MaxConns),
	)

	youtubeClient, err := youtube.NewClient(ctx, cfg.YouTube.APIKey)
	if err != nil {
		logger.Log.Fatal("failed to initialize YouTube client", zap.Error(err))
	}

	videoStore := store.NewVideoStore(pool, youtubeClient)

	commentService := service.NewCommentService(videoStore, cfg.App.DefaultUsername)
	titleService := service.NewTitleService(videoStore)
	videoService := service.NewVideoService(videoStore, youtubeClient)

	videoHandler := handler.NewVideoHandler(commentService, titleService, videoService)
	youtubeHandler := handler.NewYouTubeHandler(videoService)
	healthHandler := handler.NewHealthHandler(videoStore)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())

	router.GET("/youtube", youtubeHandler.GetVideo)
	router.POST("/video/comment", videoHandler.AddComment)
	router.DELETE("/video/comment", videoHandler.DeleteComment)
	router.PUT("/video/title", videoHandler.UpdateTitle)
	router.GET("/video/history", videoHandler.GetHistory)

	router.GET("/health/live", healthHandler.LivenessProbe)
	router.GET("/health/ready", healthHandler.ReadinessProbe)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Log.Info("server starting", zap.Int("port", cfg.Server.Port))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Log.Fatal("server error", zap.Error(err))
	case sig := <-shutdown:
		logger.Log.Info("shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Log.Error("graceful shutdown failed", zap.Error(err))
			if err := server.Close(); err != nil {
				logger.Log.Error("failed to close server", zap.Error(err))
			}
			os.Exit(1)
		}

		logger.Log.Info("server stopped gracefully")
	}
}
