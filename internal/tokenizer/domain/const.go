// Package domain defines the tokenizer domain model: the token wire format,
// policy constants, and the error taxonomy surfaced by the tokenizer core.
package domain

// Algorithm represents the AEAD algorithm used to seal and open tokens.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	// Recommended on CPUs with AES-NI hardware acceleration.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	// Constant-time in software, preferred on platforms without AES acceleration.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

const (
	// KeySize is the required key length in bytes for both supported algorithms.
	KeySize = 32

	// MaxIDLength is the default maximum accepted identifier length in bytes.
	MaxIDLength = 256

	// TokenVersion is the current token format version byte.
	TokenVersion byte = 0x01
)
