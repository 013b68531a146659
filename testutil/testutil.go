// Package testutil provides common testing utilities: capturing stdout
// during test execution and capturing log output. All functions use
// t.Helper() for proper test line reporting.
package testutil

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/jongio/openurl-core/logutil"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the captured output.
// The original stdout is always restored, even if the function returns an error.
// This is useful for testing commands that write to stdout.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    fmt.Println("test output")
//	    return nil
//	})
//	if !strings.Contains(output, "test output") {
//	    t.Error("expected output not found")
//	}
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = w

	// Buffered so the reader goroutine never leaks
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}

// CaptureLogs redirects the global logger to a buffer for the duration of
// fn and returns everything that was logged. The logger is restored to
// stderr afterwards.
//
// Example:
//
//	logs := testutil.CaptureLogs(t, func() {
//	    logutil.Warn("browser may not have opened")
//	})
func CaptureLogs(t *testing.T, fn func()) string {
	t.Helper()

	var buf bytes.Buffer
	logutil.SetOutput(&buf)
	defer logutil.SetOutput(os.Stderr)

	fn()

	return buf.String()
}
