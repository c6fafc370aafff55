package usecase

import (
	"context"

	apperrors "github.com/allisson/tokenizer/internal/errors"
	"github.com/allisson/tokenizer/internal/tokenizer/domain"
	"github.com/allisson/tokenizer/internal/tokenizer/service"
)

// tokenizerUseCase implements TokenizerUseCase on top of the tokenizer core.
type tokenizerUseCase struct {
	tokenizer *service.Tokenizer
	maxIDLen  int
	configErr error
}

// NewTokenizerUseCase creates the tokenization use case.
//
// When configErr is non-nil the use case is constructed in a degraded state:
// the process keeps serving, but every Tokenize/Detokenize call reports
// service unavailable until the key is reconfigured and the process restarted.
// The configuration error itself is kept for the health surface; its message
// is operator-facing and never includes key material.
func NewTokenizerUseCase(tokenizer *service.Tokenizer, maxIDLen int, configErr error) TokenizerUseCase {
	if maxIDLen <= 0 {
		maxIDLen = domain.MaxIDLength
	}
	return &tokenizerUseCase{
		tokenizer: tokenizer,
		maxIDLen:  maxIDLen,
		configErr: configErr,
	}
}

// Tokenize seals a plaintext identifier into an opaque token.
func (u *tokenizerUseCase) Tokenize(ctx context.Context, id string) (string, error) {
	if err := u.Available(); err != nil {
		return "", err
	}

	token, err := u.tokenizer.Seal([]byte(id), u.maxIDLen)
	if err != nil {
		return "", err
	}

	return token, nil
}

// Detokenize recovers the plaintext identifier from a token.
func (u *tokenizerUseCase) Detokenize(ctx context.Context, token string) (string, error) {
	if err := u.Available(); err != nil {
		return "", err
	}

	plaintext, err := u.tokenizer.Open(token)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// Available reports whether the tokenizer is operational.
func (u *tokenizerUseCase) Available() error {
	if u.configErr != nil {
		return u.configErr
	}
	if u.tokenizer == nil {
		return apperrors.Wrap(apperrors.ErrUnavailable, "tokenizer is not configured")
	}
	return nil
}
