// Package http provides HTTP handlers for tokenization operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tokenizer/internal/httputil"
	"github.com/allisson/tokenizer/internal/tokenizer/http/dto"
	tokenizerUseCase "github.com/allisson/tokenizer/internal/tokenizer/usecase"
	customValidation "github.com/allisson/tokenizer/internal/validation"
)

// TokenizerHandler handles HTTP requests for tokenize and detokenize operations.
type TokenizerHandler struct {
	useCase  tokenizerUseCase.TokenizerUseCase // Business logic for seal and open operations
	maxIDLen int                               // Maximum accepted identifier length in bytes
	logger   *slog.Logger                      // Structured logger for request handling and error reporting
}

// NewTokenizerHandler creates a new tokenizer handler with required dependencies.
func NewTokenizerHandler(
	useCase tokenizerUseCase.TokenizerUseCase,
	maxIDLen int,
	logger *slog.Logger,
) *TokenizerHandler {
	return &TokenizerHandler{
		useCase:  useCase,
		maxIDLen: maxIDLen,
		logger:   logger,
	}
}

// TokenizeHandler seals a plaintext identifier into an opaque token.
// POST /v1/tokenize - Returns 200 OK with the token.
func (h *TokenizerHandler) TokenizeHandler(c *gin.Context) {
	var req dto.TokenizeRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(h.maxIDLen); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	token, err := h.useCase.Tokenize(c.Request.Context(), req.ID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TokenizeResponse{Token: token})
}

// DetokenizeHandler recovers the plaintext identifier from a token.
// POST /v1/detokenize - Returns 200 OK with the identifier, 422 for
// invalid/corrupted tokens.
func (h *TokenizerHandler) DetokenizeHandler(c *gin.Context) {
	var req dto.DetokenizeRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	id, err := h.useCase.Detokenize(c.Request.Context(), req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DetokenizeResponse{ID: id})
}

// RedirectHandler seals the identifier from the query string and issues a
// redirect to the configured URL template with the token substituted.
// GET /v1/redirect?id=... - Returns 302 Found with the Location header set.
func (h *TokenizerHandler) RedirectHandler(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")

		req := dto.TokenizeRequest{ID: id}
		if err := req.Validate(h.maxIDLen); err != nil {
			httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
			return
		}

		token, err := h.useCase.Tokenize(c.Request.Context(), id)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}

		location, err := BuildRedirectURL(template, token)
		if err != nil {
			httputil.HandleErrorGin(c, fmt.Errorf("failed to build redirect url: %w", err), h.logger)
			return
		}

		c.Redirect(http.StatusFound, location)
	}
}
