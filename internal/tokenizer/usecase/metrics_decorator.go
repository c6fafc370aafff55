package usecase

import (
	"context"
	"time"

	"github.com/allisson/tokenizer/internal/metrics"
)

// tokenizerUseCaseWithMetrics decorates TokenizerUseCase with metrics instrumentation.
type tokenizerUseCaseWithMetrics struct {
	next    TokenizerUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenizerUseCaseWithMetrics wraps a TokenizerUseCase with metrics recording.
func NewTokenizerUseCaseWithMetrics(useCase TokenizerUseCase, m metrics.BusinessMetrics) TokenizerUseCase {
	return &tokenizerUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Tokenize records metrics for seal operations.
func (t *tokenizerUseCaseWithMetrics) Tokenize(ctx context.Context, id string) (string, error) {
	start := time.Now()
	token, err := t.next.Tokenize(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tokenizer", "tokenize", status)
	t.metrics.RecordDuration(ctx, "tokenizer", "tokenize", time.Since(start), status)

	return token, err
}

// Detokenize records metrics for open operations.
func (t *tokenizerUseCaseWithMetrics) Detokenize(ctx context.Context, token string) (string, error) {
	start := time.Now()
	id, err := t.next.Detokenize(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tokenizer", "detokenize", status)
	t.metrics.RecordDuration(ctx, "tokenizer", "detokenize", time.Since(start), status)

	return id, err
}

// Available delegates to the wrapped use case without recording metrics.
func (t *tokenizerUseCaseWithMetrics) Available() error {
	return t.next.Available()
}
