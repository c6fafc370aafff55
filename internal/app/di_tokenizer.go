package app

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tokenizer/internal/http"
	"github.com/allisson/tokenizer/internal/metrics"
	"github.com/allisson/tokenizer/internal/tokenizer/domain"
	tokenizerHTTP "github.com/allisson/tokenizer/internal/tokenizer/http"
	"github.com/allisson/tokenizer/internal/tokenizer/service"
	tokenizerUsecase "github.com/allisson/tokenizer/internal/tokenizer/usecase"
)

// initTokenizerUseCase creates the tokenizer use case.
//
// A missing or malformed tokenization key does not abort startup: the use
// case is built in a degraded state that reports the configuration error on
// every operation, so the service can still answer health probes.
func (c *Container) initTokenizerUseCase() (tokenizerUsecase.TokenizerUseCase, error) {
	logger := c.Logger()

	var baseUseCase tokenizerUsecase.TokenizerUseCase

	tokenizer, err := service.NewTokenizer(
		c.config.TokenizationKey,
		domain.Algorithm(c.config.TokenizationAlgorithm),
		c.config.TokenMaxAge,
	)
	if err != nil {
		logger.Warn("tokenization key unavailable, starting in degraded state",
			slog.Any("error", err))
		baseUseCase = tokenizerUsecase.NewTokenizerUseCase(nil, c.config.MaxIDLength, err)
	} else {
		baseUseCase = tokenizerUsecase.NewTokenizerUseCase(tokenizer, c.config.MaxIDLength, nil)
	}

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for tokenizer use case: %w", err)
		}
		return tokenizerUsecase.NewTokenizerUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initTokenizerHandler creates the tokenizer HTTP handler with all its dependencies.
func (c *Container) initTokenizerHandler() (*tokenizerHTTP.TokenizerHandler, error) {
	useCase, err := c.TokenizerUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get tokenizer use case for tokenizer handler: %w", err)
	}

	logger := c.Logger()

	return tokenizerHTTP.NewTokenizerHandler(useCase, c.config.MaxIDLength, logger), nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
//
// An invalid redirect template is an operator error and aborts startup, unlike
// a missing tokenization key which only degrades the service.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	if c.config.RedirectURLTemplate != "" {
		if err := tokenizerHTTP.ValidateRedirectTemplate(c.config.RedirectURLTemplate); err != nil {
			return nil, fmt.Errorf("invalid redirect url template: %w", err)
		}
	}

	handler, err := c.TokenizerHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get tokenizer handler for http server: %w", err)
	}

	useCase, err := c.TokenizerUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get tokenizer use case for http server: %w", err)
	}

	var metricsMiddleware gin.HandlerFunc
	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		if provider != nil {
			metricsMiddleware = metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace)
		}
	}

	return http.NewServer(c.config, logger, handler, useCase, metricsMiddleware), nil
}
