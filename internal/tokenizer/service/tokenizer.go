package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/allisson/tokenizer/internal/tokenizer/domain"
)

// Tokenizer performs the authenticated, reversible transformation between a
// plaintext identifier and an opaque token under one immutable key.
//
// A Tokenizer is a pure, stateless-per-call transform: the key is read-only
// after construction and every seal generates its nonce locally, so any number
// of Seal/Open calls may run concurrently without coordination.
type Tokenizer struct {
	aead   AEAD
	maxAge time.Duration
}

// NewTokenizer creates a Tokenizer from base64-encoded key material.
//
// The key material must decode to exactly 32 bytes using standard base64
// encoding. On failure a key configuration error is returned; the messages
// distinguish missing, malformed, and wrong-length material for operators but
// never echo the key itself. The decoded key copy is zeroed once the cipher
// has been initialized.
//
// A positive maxAge enables the expiry policy: tokens older than maxAge fail
// to open with ErrTokenExpired. Zero disables expiry, which is the default
// behavior; the timestamp is embedded and authenticated either way.
func NewTokenizer(keyMaterial string, alg domain.Algorithm, maxAge time.Duration) (*Tokenizer, error) {
	if strings.TrimSpace(keyMaterial) == "" {
		return nil, domain.ErrKeyNotSet
	}

	key, err := base64.StdEncoding.DecodeString(keyMaterial)
	if err != nil {
		return nil, domain.ErrInvalidKeyBase64
	}
	defer domain.Zero(key)

	if len(key) != domain.KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", domain.ErrInvalidKeySize, len(key), domain.KeySize)
	}

	aead, err := newCipher(key, alg)
	if err != nil {
		return nil, err
	}

	return &Tokenizer{aead: aead, maxAge: maxAge}, nil
}

// newCipher creates the AEAD instance for the given algorithm.
func newCipher(key []byte, alg domain.Algorithm) (AEAD, error) {
	switch alg {
	case domain.AESGCM:
		return NewAESGCM(key)
	case domain.ChaCha20:
		return NewChaCha20Poly1305(key)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedAlgorithm, alg)
	}
}

// Seal encrypts a plaintext identifier into an opaque token string.
//
// The plaintext must be non-blank after trimming surrounding whitespace and no
// longer than maxLen bytes (maxLen <= 0 disables the length check). The token
// embeds the format version, the issue timestamp, a fresh random nonce, and
// the ciphertext with its authentication tag; the version and timestamp are
// authenticated as AAD. Two calls with identical plaintext produce different
// tokens because of the per-call nonce.
func (t *Tokenizer) Seal(plaintext []byte, maxLen int) (string, error) {
	if strings.TrimSpace(string(plaintext)) == "" {
		return "", domain.ErrIDBlank
	}
	if maxLen > 0 && len(plaintext) > maxLen {
		return "", fmt.Errorf("%w: got %d bytes, max %d", domain.ErrIDTooLong, len(plaintext), maxLen)
	}

	token := domain.NewToken(time.Now().UTC(), nil, nil)

	ciphertext, nonce, err := t.aead.Encrypt(plaintext, token.Header())
	if err != nil {
		return "", fmt.Errorf("failed to seal identifier: %w", err)
	}

	token.Nonce = nonce
	token.Ciphertext = ciphertext

	return token.String(), nil
}

// Open recovers the plaintext identifier from a token produced by Seal.
//
// Malformed framing is rejected before any decryption is attempted. The
// authentication tag is then verified over the ciphertext and the framing
// header; tampered, forged, or cross-key tokens fail verification and no
// partial plaintext is ever returned. Both failure paths surface as the same
// ErrInvalidToken. The expiry policy, when enabled, is applied only after
// successful authentication so an attacker cannot probe it with forged
// timestamps.
func (t *Tokenizer) Open(value string) ([]byte, error) {
	token, err := domain.ParseToken(value)
	if err != nil {
		return nil, err
	}

	plaintext, err := t.aead.Decrypt(token.Ciphertext, token.Nonce, token.Header())
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	if t.maxAge > 0 && time.Since(token.IssuedAt) > t.maxAge {
		return nil, domain.ErrTokenExpired
	}

	return plaintext, nil
}

// GenerateKey produces fresh random key material suitable for the
// TOKENIZATION_KEY configuration: 32 cryptographically random bytes encoded
// with standard base64. It is a development/ops utility and is not tied to any
// Tokenizer instance.
func GenerateKey() (string, error) {
	key := make([]byte, domain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	defer domain.Zero(key)

	return base64.StdEncoding.EncodeToString(key), nil
}
