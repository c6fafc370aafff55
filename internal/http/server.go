// Package http provides the HTTP server that exposes the tokenization API.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/tokenizer/internal/config"
	tokenizerHTTP "github.com/allisson/tokenizer/internal/tokenizer/http"
	tokenizerUsecase "github.com/allisson/tokenizer/internal/tokenizer/usecase"
)

// Server represents the HTTP server.
type Server struct {
	server            *http.Server
	router            *gin.Engine
	logger            *slog.Logger
	config            *config.Config
	tokenizerHandler  *tokenizerHTTP.TokenizerHandler
	tokenizerUseCase  tokenizerUsecase.TokenizerUseCase
	metricsMiddleware gin.HandlerFunc
}

// NewServer creates a new HTTP server.
//
// The metricsMiddleware parameter may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	tokenizerHandler *tokenizerHTTP.TokenizerHandler,
	tokenizerUseCase tokenizerUsecase.TokenizerUseCase,
	metricsMiddleware gin.HandlerFunc,
) *Server {
	return &Server{
		logger:            logger,
		config:            cfg,
		tokenizerHandler:  tokenizerHandler,
		tokenizerUseCase:  tokenizerUseCase,
		metricsMiddleware: metricsMiddleware,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the Gin router with all middleware and routes.
func (s *Server) SetupRouter() *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if s.metricsMiddleware != nil {
		router.Use(s.metricsMiddleware)
	}

	if corsMiddleware := createCORSMiddleware(s.config.CORSEnabled, s.config.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	// Service info and probes
	router.GET("/", s.rootHandler)
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Tokenization API
	v1 := router.Group("/v1")
	if s.config.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(
			s.config.RateLimitRequestsPerSec,
			s.config.RateLimitBurst,
			s.logger,
		))
	}
	v1.POST("/tokenize", s.tokenizerHandler.TokenizeHandler)
	v1.POST("/detokenize", s.tokenizerHandler.DetokenizeHandler)

	// The redirect endpoint is only registered when a template is configured.
	if s.config.RedirectURLTemplate != "" {
		v1.GET("/redirect", s.tokenizerHandler.RedirectHandler(s.config.RedirectURLTemplate))
	}

	return router
}

// rootHandler returns basic service information.
func (s *Server) rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":   "tokenizer",
		"status": "ok",
	})
}

// healthHandler reports service health. When no valid tokenization key is
// configured the service is degraded and the handler returns 503.
func (s *Server) healthHandler(c *gin.Context) {
	if s.tokenizerUseCase == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"reason": "tokenizer not initialized",
		})
		return
	}

	if err := s.tokenizerUseCase.Available(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"reason": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the service is ready to serve requests.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"tokenizer": "ok"}

	if s.tokenizerUseCase == nil {
		components["tokenizer"] = "error"
	} else if err := s.tokenizerUseCase.Available(); err != nil {
		components["tokenizer"] = "error"
	}

	if components["tokenizer"] != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		s.router = s.SetupRouter()
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
