package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "users-api/docs"
	"users-api/internal/config"
	"users-api/internal/middleware"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	UserRouter *Router
	Logger     logrus.FieldLogger
	RateLimit  config.RateLimitConfig
}

// SetupRoutes configures all routes of the local server
func SetupRoutes(router *gin.Engine, cfg *RouterConfig) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "users-api",
			"mode":      config.GetDeploymentMode(),
			"timestamp": time.Now().UTC(),
		})
	})

	users := GinHandler(cfg.UserRouter)
	router.Any("/users", users)
	router.Any("/users/:"+UserIDParam, users)

	// Methods gin has no tree for still reach the users router, which
	// answers 405 and logs them
	router.HandleMethodNotAllowed = true
	router.NoMethod(users)
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(gin.Recovery())

	// Request ID
	router.Use(middleware.RequestID())

	// Rate limiting is off when either value is zero
	if cfg.RateLimit.RequestsPerSecond > 0 && cfg.RateLimit.Burst > 0 {
		router.Use(middleware.RateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.Logger))
	}

	// Structured logging
	router.Use(middleware.StructuredLogger(cfg.Logger))

	// Error tracking
	router.Use(middleware.ErrorHandler(cfg.Logger))
}
