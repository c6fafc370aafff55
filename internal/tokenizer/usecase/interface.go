// Package usecase provides the application-level tokenization operations
// consumed by the HTTP layer.
package usecase

import (
	"context"
)

// TokenizerUseCase defines the interface for tokenization operations.
//
// Implementations remain constructible when no valid tokenization key is
// configured; in that degraded state Tokenize and Detokenize fail with a
// service-unavailable error and Available reports the stored reason.
type TokenizerUseCase interface {
	// Tokenize seals a plaintext identifier into an opaque token.
	Tokenize(ctx context.Context, id string) (string, error)

	// Detokenize recovers the plaintext identifier from a token.
	Detokenize(ctx context.Context, token string) (string, error)

	// Available returns nil when the tokenizer is operational, or the key
	// configuration error that put the service into its degraded state.
	Available() error
}
