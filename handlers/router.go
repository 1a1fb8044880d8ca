package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig holds what NewRouter needs besides the handler.
type RouterConfig struct {
	AllowOrigins []string
	Logger       *slog.Logger
	Gatherer     prometheus.Gatherer // nil disables /metrics
}

// NewRouter wires the API routes.
func NewRouter(h *CipherHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(cfg.Logger))

	config := cors.DefaultConfig()
	config.AllowOrigins = cfg.AllowOrigins
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(config.AllowOrigins) == 0 {
		config.AllowAllOrigins = true
	}
	router.Use(cors.New(config))

	api := router.Group("/api/v1")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/alphabet", h.Alphabet)

		cipher := api.Group("/cipher")
		{
			cipher.POST("/encode", h.Encode)
			cipher.POST("/decode", h.Decode)
		}
	}

	if cfg.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	return router
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
