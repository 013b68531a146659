// Package browser provides secure cross-platform utilities for launching
// URLs in the user's default web browser.
//
// URLs run through a sanitization pipeline (see urlutil) before anything
// is spawned: the base URL must validate as http/https, query parameters
// are converted to text and stripped of shell-significant characters, and
// colliding parameter keys are a hard error. Only then is the platform
// launch mechanism invoked.
//
// # Cross-Platform Behavior
//
//   - Windows: the URL is handed to cmd.exe as "start" input; this is a
//     shell context, which is why the Windows forbidden character set and
//     the ^& query separator exist.
//   - macOS: "open <url>" spawned directly, URL as a single argv element.
//   - Linux/FreeBSD: "xdg-open <url>" spawned directly, with a
//     github.com/pkg/browser fallback when xdg-utils is not installed.
//   - Anything else: fails with ErrUnsupportedPlatform.
//
// # Launcher Lifecycle
//
// Launcher is a scoped resource: create with New, release with Close.
// Every call after Close, including a second Close, fails fast with
// ErrDisposed. One Launcher serializes its own calls; share across
// goroutines freely or create one per call, both are safe.
//
//	l := browser.New(browser.WithTimeout(10 * time.Second))
//	defer l.Close()
//
//	ok, err := l.OpenURL(ctx, "https://example.com", map[any]any{"q": "hello"})
//	if err != nil {
//	    return err // nothing was launched
//	}
//	if !ok {
//	    log.Println("browser may not have opened") // soft failure
//	}
//
// # Error Handling
//
// Hard failures (malformed URL, key collision, disposed launcher,
// unsupported platform, spawn errors) return a non-nil error and nothing
// is launched. A non-zero exit status from the opener process is reported
// as ok == false with a nil error, because exit statuses from these tools
// are unreliable across desktops; callers that care must check the bool.
// There are no retries and no partial successes.
//
// # Security Considerations
//
// Character filtering reduces but does not eliminate shell-injection risk
// on the Windows shell path. Never pass untrusted input directly; the
// sanitizer is a mitigation, not a guarantee.
//
// The package-level Launch function is retained as a fire-and-forget
// convenience: validation is synchronous, the spawn is not, and launch
// failures are logged rather than returned.
package browser
