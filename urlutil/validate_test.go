package urlutil

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid http URL", "http://example.com", false},
		{"valid https URL", "https://example.com", false},
		{"valid URL with path", "https://example.com/path/to/page", false},
		{"valid URL with port", "http://localhost:8080", false},
		{"valid URL with query", "https://example.com?q=test", false},
		{"surrounding whitespace is trimmed", "  https://example.com  ", false},
		{"empty URL", "", true},
		{"whitespace only", "   ", true},
		{"ftp scheme", "ftp://example.com", true},
		{"file scheme", "file:///etc/passwd", true},
		{"javascript scheme", "javascript:alert(1)", true},
		{"no scheme", "example.com", true},
		{"scheme only", "https://", true},
		{"uppercase scheme lowercased by parser", "HTTPS://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMalformedURL) {
				t.Errorf("Validate(%q) error = %v, want ErrMalformedURL", tt.url, err)
			}
		})
	}
}

func TestValidateLength(t *testing.T) {
	long := "https://example.com/" + strings.Repeat("a", MaxURLLength)
	if err := Validate(long); !errors.Is(err, ErrMalformedURL) {
		t.Errorf("Validate(long url) error = %v, want ErrMalformedURL", err)
	}

	// Exactly at the limit is still valid
	ok := "https://example.com/" + strings.Repeat("a", MaxURLLength-len("https://example.com/"))
	if err := Validate(ok); err != nil {
		t.Errorf("Validate(url at limit) error = %v, want nil", err)
	}
}

func TestParse(t *testing.T) {
	t.Run("valid URL parses", func(t *testing.T) {
		parsed, err := Parse("https://example.com/path?q=1")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if parsed.Scheme != "https" {
			t.Errorf("Scheme = %q, want %q", parsed.Scheme, "https")
		}
		if parsed.Host != "example.com" {
			t.Errorf("Host = %q, want %q", parsed.Host, "example.com")
		}
	})

	t.Run("invalid URL fails", func(t *testing.T) {
		if _, err := Parse("ftp://example.com"); !errors.Is(err, ErrMalformedURL) {
			t.Errorf("Parse() error = %v, want ErrMalformedURL", err)
		}
	})
}

func TestNormalizeScheme(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		defaultScheme string
		want          string
	}{
		{"bare host gets default", "example.com", "https", "https://example.com"},
		{"http kept", "http://example.com", "https", "http://example.com"},
		{"https kept", "https://example.com", "https", "https://example.com"},
		{"whitespace trimmed", "  example.com  ", "http", "http://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeScheme(tt.url, tt.defaultScheme); got != tt.want {
				t.Errorf("NormalizeScheme(%q, %q) = %q, want %q", tt.url, tt.defaultScheme, got, tt.want)
			}
		})
	}
}
