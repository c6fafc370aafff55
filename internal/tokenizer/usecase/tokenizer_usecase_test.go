package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/tokenizer/internal/errors"
	"github.com/allisson/tokenizer/internal/tokenizer/domain"
	"github.com/allisson/tokenizer/internal/tokenizer/service"
)

func newOperationalUseCase(t *testing.T) TokenizerUseCase {
	t.Helper()

	keyMaterial, err := service.GenerateKey()
	require.NoError(t, err)

	tokenizer, err := service.NewTokenizer(keyMaterial, domain.AESGCM, 0)
	require.NoError(t, err)

	return NewTokenizerUseCase(tokenizer, 256, nil)
}

func TestTokenizerUseCase_Tokenize(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		useCase := newOperationalUseCase(t)

		token, err := useCase.Tokenize(ctx, "TEST-RAW-001")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		id, err := useCase.Detokenize(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "TEST-RAW-001", id)
	})

	t.Run("blank identifier is rejected", func(t *testing.T) {
		useCase := newOperationalUseCase(t)

		_, err := useCase.Tokenize(ctx, "   ")
		assert.ErrorIs(t, err, domain.ErrIDBlank)
	})

	t.Run("oversized identifier is rejected", func(t *testing.T) {
		useCase := newOperationalUseCase(t)

		_, err := useCase.Tokenize(ctx, strings.Repeat("x", 257))
		assert.ErrorIs(t, err, domain.ErrIDTooLong)
	})
}

func TestTokenizerUseCase_Detokenize(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid token", func(t *testing.T) {
		useCase := newOperationalUseCase(t)

		_, err := useCase.Detokenize(ctx, "garbage")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestTokenizerUseCase_Degraded(t *testing.T) {
	ctx := context.Background()

	t.Run("key configuration error propagates as unavailable", func(t *testing.T) {
		useCase := NewTokenizerUseCase(nil, 256, domain.ErrKeyNotSet)

		assert.ErrorIs(t, useCase.Available(), domain.ErrKeyConfiguration)

		_, err := useCase.Tokenize(ctx, "some-id")
		assert.True(t, apperrors.Is(err, apperrors.ErrUnavailable))

		_, err = useCase.Detokenize(ctx, "some-token")
		assert.True(t, apperrors.Is(err, apperrors.ErrUnavailable))
	})

	t.Run("nil tokenizer without stored error is still unavailable", func(t *testing.T) {
		useCase := NewTokenizerUseCase(nil, 256, nil)

		err := useCase.Available()
		assert.True(t, apperrors.Is(err, apperrors.ErrUnavailable))
	})

	t.Run("operational use case reports available", func(t *testing.T) {
		useCase := newOperationalUseCase(t)
		assert.NoError(t, useCase.Available())
	})
}
