package http

import (
	"fmt"
	"net/url"
	"strings"

	apperrors "github.com/allisson/tokenizer/internal/errors"
)

// TokenPlaceholder is the explicit placeholder the redirect URL template must
// contain. Every occurrence is replaced with the query-escaped token. An
// explicit placeholder avoids the ambiguity of substring-based substitution,
// where legitimate parts of the URL could collide with the replacement target.
const TokenPlaceholder = "{token}"

// ValidateRedirectTemplate checks that a redirect URL template is usable:
// it must parse as an absolute URL and contain TokenPlaceholder at least once.
func ValidateRedirectTemplate(template string) error {
	if strings.TrimSpace(template) == "" {
		return apperrors.New("redirect url template is empty")
	}

	if !strings.Contains(template, TokenPlaceholder) {
		return fmt.Errorf("redirect url template must contain the %q placeholder", TokenPlaceholder)
	}

	parsed, err := url.Parse(strings.ReplaceAll(template, TokenPlaceholder, "placeholder"))
	if err != nil {
		return fmt.Errorf("redirect url template is not a valid url: %w", err)
	}
	if !parsed.IsAbs() {
		return apperrors.New("redirect url template must be an absolute url")
	}

	return nil
}

// BuildRedirectURL substitutes the token into the template. The token is
// query-escaped before substitution; tokens are URL-safe base64 already, so
// escaping is a no-op today, but the rule keeps the output well-formed if the
// token encoding ever changes.
func BuildRedirectURL(template, token string) (string, error) {
	if !strings.Contains(template, TokenPlaceholder) {
		return "", fmt.Errorf("redirect url template must contain the %q placeholder", TokenPlaceholder)
	}

	return strings.ReplaceAll(template, TokenPlaceholder, url.QueryEscape(token)), nil
}
