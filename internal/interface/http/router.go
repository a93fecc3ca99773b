package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sujal12345-pheoniix/AirGaurd/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
		errorHandlingMiddleware(handler.logger),
	)

	api := router.Group("/api")
	{
		api.POST("/predict-aqi", handler.PredictAQI)
		api.POST("/location-aqi", handler.LocationAQI)
		api.POST("/chatbot", handler.Chat)
		api.GET("/health-advice", handler.HealthAdvice)
		api.GET("/healthz", handler.Healthz)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
