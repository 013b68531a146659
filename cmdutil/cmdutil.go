// Package cmdutil provides generic command execution utilities: running
// commands with context cancellation or timeouts, starting detached
// commands, and extracting exit codes from run errors.
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultTimeout is the default timeout for command execution.
const DefaultTimeout = 30 * time.Second

// RunWithContext runs a command and waits for it to complete.
// The command inherits environment variables from the parent process;
// its output is discarded. Cancellation of ctx kills the command.
func RunWithContext(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Run()
}

// RunWithTimeout runs a command with a timeout.
func RunWithTimeout(name string, args []string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return RunWithContext(ctx, name, args)
}

// RunCommandWithOutput runs a command and returns its combined output.
func RunCommandWithOutput(ctx context.Context, name string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("command failed: %w", err)
	}

	return output, nil
}

// StartCommand starts a command without waiting for it to complete.
// Returns the started Cmd for the caller to manage; the caller is
// responsible for calling Wait to release the process handle.
func StartCommand(ctx context.Context, name string, args []string) (*exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start command: %w", err)
	}

	return cmd, nil
}

// ExitCode extracts the process exit code from an error returned by Run or
// Wait. Returns -1 when the error is nil, or when the command failed
// before producing an exit code (binary not found, context canceled).
func ExitCode(err error) int {
	if err == nil {
		return -1
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}
