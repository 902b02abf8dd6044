package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/onegreenvn/gifting-campaign-service/docs"
	"github.com/onegreenvn/gifting-campaign-service/internal/config"
	"github.com/onegreenvn/gifting-campaign-service/internal/database"
	"github.com/onegreenvn/gifting-campaign-service/internal/database/repository"
	"github.com/onegreenvn/gifting-campaign-service/internal/router"
	"github.com/onegreenvn/gifting-campaign-service/internal/services"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/backend"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/campaign"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/touchpoint"
	"github.com/onegreenvn/gifting-campaign-service/internal/utils"

	"github.com/sirupsen/logrus"
)

// @title Gifting Campaign Launch API
// @version 1.0
// @description Orchestrates gifting campaign creation, configuration and launch against the gifting backend, and relays recipient touchpoints to the recipient timeline.

// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter `Bearer ` followed by your JWT token (e.g. "Bearer <token>")

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	docs.SwaggerInfo.BasePath = cfg.BasePath

	configureLogging(cfg.LogLevel)

	if err := utils.InitSentry(cfg.SentryDSN, os.Getenv("ENVIRONMENT")); err != nil {
		logrus.Warnf("Failed to initialize Sentry: %v", err)
	}
	defer utils.FlushSentry()

	// Launch run history lives in postgres when configured, in memory otherwise
	var store services.LaunchRunStore
	if cfg.Database.Enabled() {
		db, err := database.InitDB(cfg.Database)
		if err != nil {
			logrus.Fatalf("Failed to initialize database: %v", err)
		}
		store = repository.NewLaunchRunRepository(db)
	} else {
		logrus.Warn("Database not configured, launch runs are kept in memory")
		store = repository.NewMemoryLaunchRunRepository()
	}

	apiClient := backend.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	orchestrator := campaign.NewOrchestrator(campaign.NewSteps(apiClient), cfg.ParallelConfigSteps)

	sseHub := services.NewSSEHub()
	launchService := services.NewLaunchService(store, orchestrator, sseHub)
	launchService.SetErrorReporter(utils.CaptureError)
	launchService.SetStaleRunAfter(cfg.StaleRunAfter)

	if cfg.RabbitMQ.Enabled() {
		rabbitMQService, err := services.NewRabbitMQService(cfg.RabbitMQ, cfg.LaunchQueue)
		if err != nil {
			logrus.Warnf("Failed to initialize RabbitMQ: %v", err)
		} else {
			defer rabbitMQService.Close()
			launchService.SetPublisher(rabbitMQService, cfg.LaunchQueue)

			consumer := services.NewLaunchConsumer(rabbitMQService, launchService, cfg.LaunchQueue)
			if err := consumer.Start(); err != nil {
				logrus.Warnf("Failed to start RabbitMQ launch consumer: %v", err)
			} else {
				logrus.Info("RabbitMQ launch consumer started")
				defer consumer.Stop()
			}
		}
	}

	tracker := touchpoint.NewTracker(backend.NewClient(cfg.TimelineAPIBaseURL, cfg.APITimeout))
	defer tracker.Wait()

	r := router.SetupRouter(cfg, launchService, sseHub, tracker)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	go func() {
		logrus.Infof("Server starting on port %s", cfg.Port)
		logrus.Infof("API Health Check: http://localhost:%s/api/v1/health", cfg.Port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Synchronous launches are in-flight requests; give them time to finish
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

func configureLogging(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
