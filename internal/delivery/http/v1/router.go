package v1

import (
	"net/http"

	"farmatch-backend/config"
	"farmatch-backend/internal/delivery/http/middleware"
	"farmatch-backend/internal/delivery/http/response"
	"farmatch-backend/internal/domain"
	"farmatch-backend/internal/usecase"
	"farmatch-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	MatchUC  domain.MatchUsecase
	AdminUC  domain.AdminUsecase
	FrameUC  domain.FrameUsecase
	HealthUC usecase.HealthUsecase
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	production := deps.Config != nil && deps.Config.GinMode == gin.ReleaseMode
	var origins []string
	if deps.Config != nil {
		origins = deps.Config.AllowedOrigins
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(origins, production)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		status, err := deps.HealthUC.Check(c.Request.Context())
		if err != nil {
			logger.Log.Warn("Health check failed", "error", err)
			response.Error(c, http.StatusServiceUnavailable, "Store unavailable", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewMatchHandler(v1, deps.MatchUC)
	NewAdminHandler(v1, deps.AdminUC)
	NewWebhookHandler(v1, deps.FrameUC)

	return r
}
