// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/tokenizer/internal/validation"
)

// TokenizeRequest contains the identifier to seal into a token.
type TokenizeRequest struct {
	ID string `json:"id"`
}

// Validate checks if the tokenize request is valid. The identifier must be
// non-blank and at most maxIDLen bytes.
func (r *TokenizeRequest) Validate(maxIDLen int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, maxIDLen),
		),
	)
}

// DetokenizeRequest contains the token to open.
type DetokenizeRequest struct {
	Token string `json:"token"`
}

// Validate checks if the detokenize request is valid.
func (r *DetokenizeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
