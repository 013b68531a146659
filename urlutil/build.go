package urlutil

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// BuildURL assembles a launchable URL from a base URL and optional query
// parameters, sanitized for the current platform. See BuildURLFor.
func BuildURL(base string, params map[any]any) (string, error) {
	return BuildURLFor(runtime.GOOS, base, params)
}

// BuildURLFor assembles a launchable URL for the goos platform.
//
// The base URL is validated first (structure, then http/https scheme) and
// only then filtered, so a URL that is well-formed only because filtering
// removed a character is still rejected. Each query key and value is
// converted to its string form with cast.ToString and filtered the same
// way. Two keys that coincide after conversion and filtering are a hard
// error wrapping ErrKeyCollision, never a silent overwrite.
//
// Pairs are appended as base?k1=v1<sep>k2=v2 using the platform query
// separator, sorted by key so output is deterministic. When no parameters
// are given, the filtered base is returned without a '?'.
//
// On success the result contains no character from the platform's
// forbidden set apart from separators introduced by assembly itself.
func BuildURLFor(goos, base string, params map[any]any) (string, error) {
	if err := Validate(base); err != nil {
		return "", err
	}

	out := FilterFor(goos, strings.TrimSpace(base))

	if len(params) == 0 {
		return out, nil
	}

	filtered := make(map[string]string, len(params))
	for k, v := range params {
		key := FilterFor(goos, cast.ToString(k))
		if _, exists := filtered[key]; exists {
			return "", fmt.Errorf("%w: duplicate query parameter key %q", ErrKeyCollision, key)
		}
		filtered[key] = FilterFor(goos, cast.ToString(v))
	}

	keys := make([]string, 0, len(filtered))
	for k := range filtered {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sep := QuerySeparator(goos)

	var sb strings.Builder
	sb.Grow(len(out) + 1 + len(filtered)*16)
	sb.WriteString(out)
	sb.WriteByte('?')
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(filtered[k])
	}

	return sb.String(), nil
}
