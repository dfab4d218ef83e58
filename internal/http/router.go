package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"clickrec/internal/config"
	"clickrec/internal/http/controller"
	"clickrec/internal/http/middleware"
)

func NewRouter(cfg *config.Config, handler *controller.Handler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		otelgin.Middleware(cfg.OTELServiceName),
		middleware.ZapLogger(logger),
		middleware.ZapRecovery(logger),
	)

	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", handler.Welcome)
	router.POST("/update-clicks", handler.RecordClick)
	router.POST("/update-clicks/publish", handler.PublishClick)
	router.GET("/get-recommendations/:userId", handler.GetRecommendations)
	router.DELETE("/reset-clicks/:userId", handler.ResetClicks)
	router.GET("/clicks/stream/:userId", handler.ClickStream)

	return router
}
