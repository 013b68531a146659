package urlutil

import "errors"

// Sentinel errors returned by the validation and assembly functions.
// Callers should test with errors.Is since all returned errors wrap
// one of these with additional context.
var (
	// ErrMalformedURL indicates the base URL is empty, cannot be parsed,
	// or does not use the http or https scheme.
	ErrMalformedURL = errors.New("malformed url")

	// ErrKeyCollision indicates two query parameter keys became textually
	// identical after string conversion and character filtering.
	ErrKeyCollision = errors.New("query key collision")
)
