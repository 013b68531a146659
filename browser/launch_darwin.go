//go:build darwin
// +build darwin

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

import "os/exec"

// launchCommand builds the macOS launch command. The URL is passed to
// "open" as a single argv element, so no shell is involved.
func launchCommand(url string) (string, []string, error) {
	if _, err := exec.LookPath("open"); err != nil {
		return "", nil, errOpenerNotFound
	}
	return "open", []string{url}, nil
}
