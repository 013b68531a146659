// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	pkgbrowser "github.com/pkg/browser"
	"golang.org/x/time/rate"

	"github.com/jongio/openurl-core/cmdutil"
	"github.com/jongio/openurl-core/logutil"
	"github.com/jongio/openurl-core/urlutil"
)

// DefaultTimeout is the default timeout for the browser launch command.
const DefaultTimeout = 5 * time.Second

var (
	// ErrDisposed indicates an operation was attempted on a Launcher
	// after Close.
	ErrDisposed = errors.New("launcher is disposed")

	// ErrUnsupportedPlatform indicates the running OS has no known
	// browser launch mechanism.
	ErrUnsupportedPlatform = errors.New("unsupported platform: " + runtime.GOOS)

	// ErrRateLimited indicates the launcher's rate limit was exceeded.
	ErrRateLimited = errors.New("browser launch rate limit exceeded")

	// errOpenerNotFound is returned by launchCommand when the platform
	// opener is not on PATH; the launcher then falls back to pkg/browser.
	errOpenerNotFound = errors.New("platform opener not found")
)

// Launcher opens URLs in the system default browser. A Launcher serializes
// its own calls with a mutex but is otherwise a per-call pipeline: every
// OpenURL builds a fresh command, spawns it, and discards the handle.
//
// A Launcher must be released with Close; any call after Close fails with
// ErrDisposed.
type Launcher struct {
	mu       sync.Mutex
	disposed bool
	target   Target
	timeout  time.Duration
	wait     bool
	limiter  *rate.Limiter
	lastPID  int
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithTarget sets the browser target. Defaults to TargetSystem.
func WithTarget(t Target) Option {
	return func(l *Launcher) { l.target = t }
}

// WithTimeout sets the timeout for the launch command. Defaults to
// DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(l *Launcher) { l.timeout = d }
}

// WithWait controls whether OpenURL waits for the opener process to exit.
// Waiting (the default) is what makes a non-zero exit status observable;
// detached launches always report success once the process has started.
func WithWait(wait bool) Option {
	return func(l *Launcher) { l.wait = wait }
}

// WithRateLimit throttles launches to r per second with the given burst.
// Useful for hosts that open URLs in response to external events and want
// protection against an open-storm.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(l *Launcher) { l.limiter = rate.NewLimiter(r, burst) }
}

// New creates a Launcher targeting the system default browser.
func New(opts ...Option) *Launcher {
	l := &Launcher{
		target:  TargetSystem,
		timeout: DefaultTimeout,
		wait:    true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// OpenURL sanitizes rawURL plus the optional query parameters and opens the
// result in the configured browser target.
//
// The returned bool reports whether the launch is believed to have
// succeeded. A non-zero exit status from the opener process is a soft
// failure: (false, nil) plus a warning log, since several platforms return
// unreliable statuses here. Hard failures (malformed URL, key collision,
// disposed launcher, unsupported platform, spawn errors) return a non-nil
// error and nothing is launched.
func (l *Launcher) OpenURL(ctx context.Context, rawURL string, params map[any]any) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disposed {
		return false, ErrDisposed
	}

	if l.limiter != nil && !l.limiter.Allow() {
		return false, ErrRateLimited
	}

	launchURL, err := urlutil.BuildURLFor(runtime.GOOS, rawURL, params)
	if err != nil {
		return false, err
	}

	if ResolveTarget(l.target) == TargetNone {
		logutil.Debug("browser launch skipped", "target", TargetNone, "url", launchURL)
		return true, nil
	}

	name, args, err := launchCommand(launchURL)
	if err != nil {
		if errors.Is(err, errOpenerNotFound) {
			return l.openFallback(launchURL)
		}
		return false, err
	}

	logutil.Debug("launching browser", "command", name, "url", launchURL)

	if !l.wait {
		// Detached: context.Background so the opener outlives this call.
		// CommandContext would kill it the moment the timeout fired.
		cmd, err := cmdutil.StartCommand(context.Background(), name, args)
		if err != nil {
			return false, fmt.Errorf("failed to start browser opener: %w", err)
		}
		l.lastPID = cmd.Process.Pid
		// Reap the opener in the background so it never lingers as a zombie.
		go func() { _ = cmd.Wait() }()
		return true, nil
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	if err := cmdutil.RunWithContext(ctx, name, args); err != nil {
		if code := cmdutil.ExitCode(err); code > 0 {
			logutil.Warn("browser opener exited with non-zero status", "command", name, "code", code, "url", launchURL)
			return false, nil
		}
		return false, fmt.Errorf("failed to run browser opener: %w", err)
	}

	return true, nil
}

// openFallback delegates to github.com/pkg/browser when the platform
// opener is missing from PATH. On Windows this is also the shell-free
// native path.
func (l *Launcher) openFallback(launchURL string) (bool, error) {
	logutil.Debug("platform opener not found, using fallback", "url", launchURL)
	if err := pkgbrowser.OpenURL(launchURL); err != nil {
		return false, fmt.Errorf("failed to open browser: %w", err)
	}
	return true, nil
}

// LastPID returns the process ID of the most recently started opener, or 0
// if none has been started (or the launch waited and the process exited).
// Combine with procutil.IsProcessRunning to observe detached launches.
func (l *Launcher) LastPID() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastPID
}

// Close releases the launcher. Every subsequent operation, including a
// second Close, fails with ErrDisposed.
func (l *Launcher) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disposed {
		return ErrDisposed
	}
	l.disposed = true
	l.lastPID = 0
	return nil
}

// LaunchOptions contains options for launching a browser.
type LaunchOptions struct {
	// URL to open
	URL string
	// QueryParams are appended to the URL after sanitization. Keys and
	// values may be any type; see urlutil.BuildURL.
	QueryParams map[any]any
	// Target browser to use
	Target Target
	// Timeout for the launch command (default 5 seconds)
	Timeout time.Duration
}

// Launch opens the specified URL in the browser determined by the target.
// URL validation and query assembly happen synchronously so that malformed
// input is reported to the caller; the launch itself runs in a separate
// goroutine and is non-blocking. Launch failures are logged, not returned,
// because opening a browser is typically non-critical for the host.
func Launch(opts LaunchOptions) error {
	// Build eagerly: validation errors must reach the caller.
	if _, err := urlutil.BuildURL(opts.URL, opts.QueryParams); err != nil {
		return err
	}

	target := ResolveTarget(opts.Target)
	if target == TargetNone {
		return nil
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	go func() {
		l := New(WithTarget(target), WithTimeout(timeout))
		defer func() { _ = l.Close() }()

		ok, err := l.OpenURL(context.Background(), opts.URL, opts.QueryParams)
		if err != nil {
			logutil.Warn("could not open browser automatically", "error", err, "url", opts.URL)
		} else if !ok {
			logutil.Warn("browser may not have opened", "url", opts.URL)
		}
	}()

	return nil
}
