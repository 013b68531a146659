package urlutil

import (
	"fmt"
	neturl "net/url"
	"strings"
)

const (
	// MaxURLLength is the RFC 2616 practical limit for URL length
	MaxURLLength = 2048
)

// Validate performs comprehensive HTTP/HTTPS URL validation using net/url.Parse.
// It validates that the URL:
//   - Is not empty or only whitespace
//   - Uses http:// or https:// protocol
//   - Has a valid host/domain
//   - Does not exceed MaxURLLength (2048 characters)
//   - Can be parsed by net/url.Parse (RFC 3986 compliant)
//
// All failures wrap ErrMalformedURL so callers can test with errors.Is.
//
// Example:
//
//	if err := urlutil.Validate("https://example.com"); err != nil {
//		return fmt.Errorf("invalid URL: %w", err)
//	}
func Validate(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)

	if rawURL == "" {
		return fmt.Errorf("%w: url cannot be empty", ErrMalformedURL)
	}

	if len(rawURL) > MaxURLLength {
		return fmt.Errorf("%w: url exceeds maximum length of %d characters", ErrMalformedURL, MaxURLLength)
	}

	parsed, err := neturl.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedURL, err)
	}

	// Scheme must be exactly http or https (rejects ftp://, file://, javascript:, etc.)
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		if parsed.Scheme == "" {
			return fmt.Errorf("%w: url must use http:// or https://", ErrMalformedURL)
		}
		return fmt.Errorf("%w: url must use http:// or https://, got: %s", ErrMalformedURL, parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("%w: url missing host/domain", ErrMalformedURL)
	}

	return nil
}

// Parse parses and normalizes URLs with trimming and validation.
// It returns a *url.URL if the URL is valid, or an error wrapping
// ErrMalformedURL if validation fails.
//
// Example:
//
//	parsed, err := urlutil.Parse(userInput)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Host: %s\n", parsed.Host)
func Parse(rawURL string) (*neturl.URL, error) {
	if err := Validate(rawURL); err != nil {
		return nil, err
	}

	// Parse (we know it's valid)
	return neturl.Parse(strings.TrimSpace(rawURL))
}

// NormalizeScheme ensures URL has http:// or https:// prefix.
// If the URL already has a valid scheme (http:// or https://), it is returned unchanged.
// If the URL has no scheme or an invalid scheme, the defaultScheme is prepended.
//
// The defaultScheme should be either "http" or "https" (without "://").
//
// Example:
//
//	normalized := urlutil.NormalizeScheme("example.com", "https")
//	// Returns: "https://example.com"
func NormalizeScheme(rawURL, defaultScheme string) string {
	rawURL = strings.TrimSpace(rawURL)

	parsed, err := neturl.Parse(rawURL)
	if err != nil {
		return defaultScheme + "://" + rawURL
	}

	if parsed.Scheme == "http" || parsed.Scheme == "https" {
		return rawURL
	}

	return defaultScheme + "://" + rawURL
}
