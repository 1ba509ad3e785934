package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ressKim-io/toxicity-api/internal/adapter/http/handler"
	"github.com/ressKim-io/toxicity-api/internal/adapter/http/middleware"
	"github.com/ressKim-io/toxicity-api/internal/domain/service"
	"github.com/ressKim-io/toxicity-api/internal/infrastructure/metrics"
	"github.com/ressKim-io/toxicity-api/internal/usecase"
)

// Deps are the collaborators the HTTP surface is built from
type Deps struct {
	PredictUsecase usecase.PredictUsecase
	HealthChecker  service.HealthChecker
	Logger         *zap.Logger

	// Metrics may be nil, in which case no /metrics route is registered
	Metrics     *metrics.Metrics
	MetricsPath string
}

// Setup creates and configures the Gin router
func Setup(deps Deps) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS())
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}

	// Health endpoints
	healthHandler := handler.NewHealthHandler(deps.HealthChecker)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(deps.Metrics.Handler()))
	}

	predictHandler := handler.NewPredictHandler(deps.PredictUsecase)
	router.POST("/predict", predictHandler.Predict)

	return router
}
