package router

import (
	"time"

	"github.com/onegreenvn/gifting-campaign-service/internal/config"
	"github.com/onegreenvn/gifting-campaign-service/internal/handlers"
	"github.com/onegreenvn/gifting-campaign-service/internal/middleware"
	"github.com/onegreenvn/gifting-campaign-service/internal/services"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/excel"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/touchpoint"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter configures the Gin router with the launch, run history and touchpoint routes
func SetupRouter(cfg *config.Config, launchService *services.LaunchService, sseHub *services.SSEHub, tracker *touchpoint.Tracker) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", handlers.IdempotencyKeyHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", handlers.IdempotencyKeyHeader, "Idempotent-Replayed"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	bearerTokenMiddleware := middleware.NewBearerTokenMiddleware(cfg.JWTSecret)

	launchHandler := handlers.NewLaunchHandler(launchService, cfg.LaunchTimeout)
	launchRunHandler := handlers.NewLaunchRunHandler(launchService, excel.NewExcelService(), sseHub)
	touchpointHandler := handlers.NewTouchpointHandler(tracker)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logrus.Info("Swagger UI endpoint registered at /swagger/index.html")

	api := r.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"async":  launchService.AsyncEnabled(),
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Public: recipient-facing landing pages carry no operator token
		touchpoints := api.Group("/touchpoints")
		{
			touchpoints.POST("", touchpointHandler.LogTouchpoint)
			touchpoints.GET("/types", touchpointHandler.ListTouchpointTypes)
		}

		protected := api.Group("")
		protected.Use(bearerTokenMiddleware.BearerTokenAuthMiddleware())
		{
			campaigns := protected.Group("/organizations/:org/campaigns")
			campaigns.Use(middleware.RequireOrganization("org"))
			{
				campaigns.POST("/launch", launchHandler.LaunchCampaign)
				campaigns.POST("/draft", launchHandler.SaveDraft)
				campaigns.POST("/booth-giveaway", launchHandler.LaunchBoothGiveaway)
			}

			runs := protected.Group("/organizations/:org/launch-runs")
			runs.Use(middleware.RequireOrganization("org"))
			{
				runs.GET("", launchRunHandler.ListLaunchRuns)
				runs.GET("/export", launchRunHandler.ExportLaunchRuns)
				runs.GET("/:id", launchRunHandler.GetLaunchRun)
				runs.GET("/:id/stream", launchRunHandler.StreamLaunchRun)
			}
		}
	}

	return r
}
