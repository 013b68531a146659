//go:build !windows && !darwin && !linux && !freebsd
// +build !windows,!darwin,!linux,!freebsd

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

// launchCommand fails on platforms with no known browser launch mechanism.
// There is deliberately no fallback here: guessing an opener on an unknown
// OS is worse than failing fast.
func launchCommand(url string) (string, []string, error) {
	return "", nil, ErrUnsupportedPlatform
}
