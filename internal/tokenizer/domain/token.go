package domain

import (
	"encoding/base64"
	"encoding/binary"
	"time"
)

// Token wire format sizes, in bytes.
const (
	// NonceSize is the AEAD nonce length (96 bits, both supported algorithms).
	NonceSize = 12

	// TagSize is the AEAD authentication tag length appended to the ciphertext.
	TagSize = 16

	// headerSize is the version byte plus the big-endian unix timestamp.
	headerSize = 1 + 8

	// minDecodedSize is the smallest valid decoded token: header, nonce, and
	// the tag of an empty plaintext.
	minDecodedSize = headerSize + NonceSize + TagSize
)

// tokenEncoding is the printable framing for tokens. URL-safe without padding,
// so a token can be placed unmodified in a URL query parameter or JSON field.
var tokenEncoding = base64.RawURLEncoding

// Token is the decoded form of an opaque token string.
//
// A token is self-describing: version, issue timestamp, nonce, and ciphertext
// (with the authentication tag appended) are all carried in the token itself,
// so opening one requires no external lookup. The version and timestamp are
// bound to the ciphertext as additional authenticated data, which means the
// framing metadata cannot be altered without failing authentication.
//
// Wire layout before encoding:
//
//	version(1) || unix-timestamp(8, big-endian) || nonce(12) || ciphertext+tag
type Token struct {
	Version    byte
	IssuedAt   time.Time
	Nonce      []byte
	Ciphertext []byte
}

// NewToken builds a Token for the current format version.
func NewToken(issuedAt time.Time, nonce, ciphertext []byte) Token {
	return Token{
		Version:    TokenVersion,
		IssuedAt:   issuedAt,
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}
}

// Header returns the authenticated framing metadata: the version byte followed
// by the issue timestamp as big-endian unix seconds. It is used as AAD during
// sealing and opening.
func (t Token) Header() []byte {
	header := make([]byte, headerSize)
	header[0] = t.Version
	binary.BigEndian.PutUint64(header[1:], uint64(t.IssuedAt.Unix()))
	return header
}

// String serializes the token to its printable form.
func (t Token) String() string {
	raw := make([]byte, 0, headerSize+len(t.Nonce)+len(t.Ciphertext))
	raw = append(raw, t.Header()...)
	raw = append(raw, t.Nonce...)
	raw = append(raw, t.Ciphertext...)
	return tokenEncoding.EncodeToString(raw)
}

// ParseToken decodes a token string into its parts without attempting
// decryption. Malformed encoding, truncated data, and unsupported version
// bytes are all rejected with the single opaque ErrInvalidToken; the caller
// never learns which framing check failed.
func ParseToken(value string) (Token, error) {
	if value == "" {
		return Token{}, ErrInvalidToken
	}

	raw, err := tokenEncoding.DecodeString(value)
	if err != nil {
		return Token{}, ErrInvalidToken
	}

	if len(raw) < minDecodedSize {
		return Token{}, ErrInvalidToken
	}

	if raw[0] != TokenVersion {
		return Token{}, ErrInvalidToken
	}

	issuedAt := time.Unix(int64(binary.BigEndian.Uint64(raw[1:headerSize])), 0)

	return Token{
		Version:    raw[0],
		IssuedAt:   issuedAt,
		Nonce:      raw[headerSize : headerSize+NonceSize],
		Ciphertext: raw[headerSize+NonceSize:],
	}, nil
}
