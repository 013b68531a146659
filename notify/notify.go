// Package notify provides desktop notification support via the
// cross-platform beeep library. The host CLI uses it to raise a toast when
// a browser launch fails and the user may not be watching the terminal.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gen2brain/beeep"
)

// Notification represents a notification to be displayed.
type Notification struct {
	// Title is the notification title (typically the application name)
	Title string

	// Message is the notification body
	Message string
}

// Config contains notification system configuration.
type Config struct {
	// AppName is the application name shown in notifications
	AppName string

	// Timeout for notification operations
	Timeout time.Duration
}

// DefaultConfig returns default notification configuration.
func DefaultConfig() Config {
	return Config{
		AppName: "openurl",
		Timeout: 5 * time.Second,
	}
}

// ErrNotificationFailed indicates the OS notification could not be sent.
var ErrNotificationFailed = errors.New("failed to send notification")

// Notifier sends notifications to the OS notification system.
type Notifier struct {
	config Config
}

// New creates a Notifier. beeep handles platform differences internally
// (toast on Windows, osascript on macOS, D-Bus on Linux/BSD).
func New(config Config) *Notifier {
	if config.AppName == "" {
		config.AppName = DefaultConfig().AppName
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	return &Notifier{config: config}
}

// Send sends a notification, honoring ctx and the configured timeout.
func (n *Notifier) Send(ctx context.Context, notification Notification) error {
	ctx, cancel := context.WithTimeout(ctx, n.config.Timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- beeep.Notify(notification.Title, notification.Message, "")
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrNotificationFailed, ctx.Err())
	}
}
