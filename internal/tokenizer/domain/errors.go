package domain

import (
	"github.com/allisson/tokenizer/internal/errors"
)

// Tokenizer error definitions.
//
// Key configuration errors carry operator-distinguishable messages but all
// match ErrKeyConfiguration, so callers see a single error kind. Open-time
// failures collapse into ErrInvalidToken regardless of the internal cause:
// distinguishing "malformed framing" from "valid framing, failed
// authentication" would leak information useful to an attacker probing the
// scheme.
var (
	// ErrKeyConfiguration is the parent error for all key configuration failures.
	// While it is unresolved the service runs degraded and seal/open are unavailable.
	//
	// HTTP Status: 503 Service Unavailable
	ErrKeyConfiguration = errors.Wrap(errors.ErrUnavailable, "tokenization key configuration error")

	// ErrKeyNotSet indicates no key material was provided.
	ErrKeyNotSet = errors.Wrap(ErrKeyConfiguration, "key is not set")

	// ErrInvalidKeyBase64 indicates the key material is not valid base64.
	ErrInvalidKeyBase64 = errors.Wrap(ErrKeyConfiguration, "key is not valid base64")

	// ErrInvalidKeySize indicates the decoded key is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.Wrap(ErrKeyConfiguration, "key has invalid size")

	// ErrInvalidToken indicates a token failed framing validation or
	// authentication. Covers malformed encoding, truncated data, unsupported
	// version bytes, tampered ciphertext, and tokens sealed under a different key.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrInvalidToken = errors.Wrap(errors.ErrInvalidInput, "invalid or corrupted token")

	// ErrTokenExpired indicates a well-formed, authentic token is older than
	// the configured maximum age. Only returned when an expiry policy is set.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrTokenExpired = errors.Wrap(errors.ErrInvalidInput, "token expired")

	// ErrIDBlank indicates the identifier is empty after trimming whitespace.
	ErrIDBlank = errors.Wrap(errors.ErrInvalidInput, "identifier must not be blank")

	// ErrIDTooLong indicates the identifier exceeds the configured maximum length.
	ErrIDTooLong = errors.Wrap(errors.ErrInvalidInput, "identifier exceeds maximum length")

	// ErrUnsupportedAlgorithm indicates the configured AEAD algorithm is not supported.
	ErrUnsupportedAlgorithm = errors.Wrap(ErrKeyConfiguration, "unsupported algorithm")
)
