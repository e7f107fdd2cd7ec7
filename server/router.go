// Package server exposes the move selector over HTTP for the web front end.
package server

import (
	"math/rand"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler carries what the HTTP handlers share.
type Handler struct {
	logger *zap.Logger
	seed   func() int64
}

// NewHandler returns handlers seeding each request's selector from seed.
// A nil seed uses the clock.
func NewHandler(logger *zap.Logger, seed func() int64) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if seed == nil {
		seed = func() int64 { return time.Now().UnixNano() }
	}
	return &Handler{logger: logger, seed: seed}
}

func (h *Handler) rng() *rand.Rand {
	return rand.New(rand.NewSource(h.seed()))
}

// NewRouter builds the HTTP router.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/health", Health)
	router.POST("/move", h.SelectMove)
	router.POST("/evaluate", h.Evaluate)
	return router
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)))
	}
}
