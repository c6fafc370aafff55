package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	tokenizerDomain "github.com/allisson/tokenizer/internal/tokenizer/domain"
	"github.com/allisson/tokenizer/internal/tokenizer/http/dto"
	"github.com/allisson/tokenizer/internal/tokenizer/usecase/mocks"
)

// setupTestTokenizerHandler creates a test handler with a mocked use case.
func setupTestTokenizerHandler(t *testing.T) (*TokenizerHandler, *mocks.MockTokenizerUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockTokenizerUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewTokenizerHandler(mockUseCase, 256, logger)

	return handler, mockUseCase
}

func TestTokenizerHandler_TokenizeHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenizerHandler(t)

		mockUseCase.On("Tokenize", mock.Anything, "TEST-RAW-001").
			Return("opaque-token", nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/tokenize", dto.TokenizeRequest{ID: "TEST-RAW-001"})

		handler.TokenizeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.TokenizeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "opaque-token", response.Token)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestTokenizerHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/tokenize", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.TokenizeHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_NonStringID", func(t *testing.T) {
		handler, _ := setupTestTokenizerHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/tokenize", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte(`{"id": 12345}`)))

		handler.TokenizeHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_ValidationFailed_BlankID", func(t *testing.T) {
		handler, _ := setupTestTokenizerHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/tokenize", dto.TokenizeRequest{ID: "   "})

		handler.TokenizeHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "validation_error", response["error"])
	})

	t.Run("Error_ValidationFailed_OversizedID", func(t *testing.T) {
		handler, _ := setupTestTokenizerHandler(t)

		c, w := createTestContext(
			http.MethodPost,
			"/v1/tokenize",
			dto.TokenizeRequest{ID: strings.Repeat("a", 257)},
		)

		handler.TokenizeHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_ServiceUnavailable", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenizerHandler(t)

		mockUseCase.On("Tokenize", mock.Anything, "TEST-RAW-001").
			Return("", tokenizerDomain.ErrKeyNotSet).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/tokenize", dto.TokenizeRequest{ID: "TEST-RAW-001"})

		handler.TokenizeHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		mockUseCase.AssertExpectations(t)
	})
}

func TestTokenizerHandler_DetokenizeHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenizerHandler(t)

		mockUseCase.On("Detokenize", mock.Anything, "opaque-token").
			Return("TEST-RAW-001", nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/detokenize", dto.DetokenizeRequest{Token: "opaque-token"})

		handler.DetokenizeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.DetokenizeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "TEST-RAW-001", response.ID)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_ValidationFailed_EmptyToken", func(t *testing.T) {
		handler, _ := setupTestTokenizerHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/detokenize", dto.DetokenizeRequest{Token: ""})

		handler.DetokenizeHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_InvalidToken", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenizerHandler(t)

		mockUseCase.On("Detokenize", mock.Anything, "tampered-token").
			Return("", tokenizerDomain.ErrInvalidToken).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/detokenize", dto.DetokenizeRequest{Token: "tampered-token"})

		handler.DetokenizeHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "invalid_token", response["error"])
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_ExpiredToken", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenizerHandler(t)

		mockUseCase.On("Detokenize", mock.Anything, "stale-token").
			Return("", tokenizerDomain.ErrTokenExpired).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/detokenize", dto.DetokenizeRequest{Token: "stale-token"})

		handler.DetokenizeHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "token_expired", response["error"])
		mockUseCase.AssertExpectations(t)
	})
}

func TestTokenizerHandler_RedirectHandler(t *testing.T) {
	const template = "https://forms.example.com/survey?sid={token}&lang=en"

	t.Run("Success_RedirectsWithToken", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenizerHandler(t)

		mockUseCase.On("Tokenize", mock.Anything, "TEST-RAW-001").
			Return("opaque-token", nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/redirect?id=TEST-RAW-001", nil)

		handler.RedirectHandler(template)(c)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://forms.example.com/survey?sid=opaque-token&lang=en", w.Header().Get("Location"))
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingID", func(t *testing.T) {
		handler, _ := setupTestTokenizerHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/redirect", nil)

		handler.RedirectHandler(template)(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_ServiceUnavailable", func(t *testing.T) {
		handler, mockUseCase := setupTestTokenizerHandler(t)

		mockUseCase.On("Tokenize", mock.Anything, "TEST-RAW-001").
			Return("", tokenizerDomain.ErrKeyNotSet).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/redirect?id=TEST-RAW-001", nil)

		handler.RedirectHandler(template)(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		mockUseCase.AssertExpectations(t)
	})
}
