package api

import (
	"fmt"
	"log"
	"net/http"

	"webstar/email-hunter-api/internal/api/controllers"
	"webstar/email-hunter-api/internal/api/middleware"
	"webstar/email-hunter-api/internal/dto"
	"webstar/email-hunter-api/internal/keystore"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	// ServiceName identifies the service in health responses
	ServiceName = "Email Hunter API"
	// ServiceVersion is reported by the health endpoints
	ServiceVersion = "1.0.0"
)

// healthCheck godoc
// @Summary      Health check
// @Description  Check if the API service is running and healthy.
// @Tags         Health
// @Produce      json
// @Success      200 {object} dto.HealthResponse "Service status"
// @Router       /api/health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: ServiceName,
		Version: ServiceVersion,
	})
}

// NewRouter creates and configures a new Gin router. The admin controller
// may be nil, which leaves the admin routes unregistered.
func NewRouter(
	store keystore.Store,
	limiter *middleware.RateLimiter,
	extractController *controllers.ExtractController,
	keysController *controllers.KeysController,
	huntController *controllers.HuntController,
	usageController *controllers.UsageController,
	adminController *controllers.AdminController,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[Router] Panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:  "Internal server error",
			Detail: "An unexpected error occurred. Please try again later.",
		})
	}))
	router.Use(middleware.CORS())

	// Health check endpoints
	router.GET("/", healthCheck)
	router.GET("/api/health", healthCheck)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Unknown endpoints get the uniform error envelope
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:  "Endpoint not found",
			Detail: fmt.Sprintf("The requested endpoint %s does not exist. Check /swagger/index.html for available endpoints.", c.Request.URL.Path),
		})
	})

	api := router.Group("/api")
	{
		api.POST("/generate-key", keysController.GenerateKey)

		authed := api.Group("")
		authed.Use(middleware.RequireAPIKey(store), middleware.RateLimit(limiter))
		{
			authed.POST("/extract-emails", extractController.ExtractEmails)
			authed.POST("/extract-from-url", extractController.ExtractFromURL)
			authed.POST("/hunt-emails", huntController.HuntEmails)
			authed.GET("/usage", usageController.GetUsage)
		}

		if adminController != nil {
			admin := api.Group("/admin")
			{
				admin.GET("/keys", adminController.ListKeys)
				admin.DELETE("/keys/:key", adminController.RevokeKey)
			}
		}
	}

	return router
}
