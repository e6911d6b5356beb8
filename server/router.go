// Package server exposes the parts ledger over HTTP.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the Gin engine with the ledger routes and middlewares.
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/purchases", h.ListPurchases)
	r.POST("/purchases", h.CreatePurchase)
	r.PUT("/purchases/:id", h.UpdatePurchase)
	r.DELETE("/purchases/:id", h.DeletePurchase)

	r.GET("/sales", h.ListSales)
	r.POST("/sales", h.CreateSale)

	r.GET("/stock", h.Stock)
	r.GET("/stock/low", h.LowStock)
	r.GET("/summary", h.Summary)

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
