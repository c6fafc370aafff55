package dto

// TokenizeResponse contains the result of a tokenize operation.
type TokenizeResponse struct {
	Token string `json:"token"`
}

// DetokenizeResponse contains the result of a detokenize operation.
// SECURITY: the ID field carries the recovered identifier and should be
// transmitted over HTTPS only.
type DetokenizeResponse struct {
	ID string `json:"id"`
}
