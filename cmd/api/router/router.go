package router

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"adforge/cmd/api/handlers"
	"adforge/cmd/api/middleware"
	"adforge/cmd/api/services"
	"adforge/config"
	"adforge/db"
	_ "adforge/docs"
	"adforge/eventbus"
	"adforge/quota"
	"adforge/repositories"
)

func New(bus eventbus.EventBus) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), middleware.RequestLoggingMiddleware())

	cfg := config.GetConfig()

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Client().Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongodb": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 생성된 이미지 파일 서빙
	r.Static(cfg.Media.BaseURL, filepath.Join(config.GetBasePath(), cfg.Media.Dir))

	// v1 routes
	api := r.Group("/api/v1")
	{
		database := db.Database()
		campaignRepo := repositories.NewCampaignRepository(database)
		postRepo := repositories.NewPostRepository(database)
		logRepo := repositories.NewGenerationLogRepository(database)
		limiter := quota.NewGenerationQuotaLimiterFromConfig(cfg)

		campaignSvc := services.NewCampaignService(campaignRepo, postRepo)
		api.POST("/campaigns/create", handlers.CreateCampaignHandler(campaignSvc))
		api.GET("/campaigns", handlers.ListCampaignsHandler(campaignSvc))
		api.GET("/campaigns/:id", handlers.GetCampaignHandler(campaignSvc))
		api.GET("/campaigns/:id/posts", handlers.ListCampaignPostsHandler(campaignSvc))

		contentSvc := services.NewContentService(campaignRepo, postRepo, logRepo, limiter, bus)
		api.POST("/content/generate", handlers.GenerateContentHandler(contentSvc))
		api.POST("/content/generate-visuals", handlers.GenerateVisualsHandler(contentSvc))

		analysisSvc := services.NewAnalysisService(campaignRepo, logRepo, limiter)
		api.POST("/analysis/url", handlers.AnalyzeURLHandler(analysisSvc))
	}

	return r
}
