// Package urlutil provides URL validation, sanitization, and query assembly
// for URLs that will be handed to an OS browser-launch mechanism.
//
// It uses the standard library's net/url.Parse for robust parsing and adds
// the checks the launch path needs: protocol restrictions, host validation,
// length limits, and platform-specific forbidden-character filtering.
//
// # Usage
//
// Use Validate for HTTP/HTTPS URL validation:
//
//	import "github.com/jongio/openurl-core/urlutil"
//
//	if err := urlutil.Validate(customURL); err != nil {
//		return fmt.Errorf("invalid URL: %w", err)
//	}
//
// Use BuildURL to assemble a sanitized URL with query parameters:
//
//	url, err := urlutil.BuildURL("https://example.com", map[any]any{
//		"q": "hello world",
//	})
//	// url: "https://example.com?q=hello world"
//
// Keys and values may be any type; they are converted to their string
// form before filtering. Two keys that coincide after conversion and
// filtering fail with ErrKeyCollision.
//
// # Validation Rules
//
// The validation functions enforce the following rules:
//   - URL must not be empty or only whitespace
//   - URL must use http:// or https:// protocol (rejects ftp://, file://, javascript://, etc.)
//   - URL must have a valid host/domain (rejects "http://", "https://")
//   - URL must not exceed 2048 characters (RFC 2616 practical limit)
//   - URL must be parseable by net/url.Parse (RFC 3986 compliant)
//
// # Security Considerations
//
// Character filtering strips, rather than escapes, characters that are
// meaningful to a shell command line (pipes, ampersands, carets, quotes,
// newlines; the exact set varies per platform). This reduces but does not
// eliminate shell-injection risk: callers must still never pass untrusted
// input directly. Filtering happens after structural validation, so a URL
// cannot become valid as a side effect of filtering.
package urlutil
