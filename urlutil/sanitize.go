package urlutil

import (
	"runtime"
	"strings"
)

// Forbidden character sets per platform. These are characters considered
// unsafe to pass through a shell command line; they are removed outright
// rather than escaped. The sets differ slightly because the launch
// mechanisms differ: Windows URLs travel through cmd.exe, while macOS and
// Linux/FreeBSD URLs are passed as a single argv element to the opener.
const (
	forbiddenWindows = "\"&|^<>%;`\\\n\r"
	forbiddenLinux   = "\"'&|<>;$`\\\n\r"
	forbiddenDarwin  = "\"'&|<>;$\n\r"
)

// ForbiddenChars returns the forbidden character set for the given GOOS.
// Unknown platforms get the Linux set, the most restrictive of the three.
func ForbiddenChars(goos string) string {
	switch goos {
	case "windows":
		return forbiddenWindows
	case "darwin":
		return forbiddenDarwin
	default:
		return forbiddenLinux
	}
}

// QuerySeparator returns the string used to join query parameter pairs on
// the given GOOS. On Windows the URL is handed to cmd.exe, where a bare
// ampersand terminates the command, so pairs are joined with an escaped
// ampersand instead.
func QuerySeparator(goos string) string {
	if goos == "windows" {
		return "^&"
	}
	return "&"
}

// Filter removes every character in the current platform's forbidden set
// from s. See FilterFor.
func Filter(s string) string {
	return FilterFor(runtime.GOOS, s)
}

// FilterFor removes every character in the goos platform's forbidden set
// from s. Characters are dropped, not escaped. Filtering is idempotent:
// a string containing no forbidden characters is returned unchanged.
func FilterFor(goos, s string) string {
	forbidden := ForbiddenChars(goos)
	if !strings.ContainsAny(s, forbidden) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(forbidden, r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
