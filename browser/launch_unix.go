//go:build linux || freebsd
// +build linux freebsd

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

import "os/exec"

// launchCommand builds the Linux/FreeBSD launch command. The URL is passed
// to xdg-open as a single argv element, so no shell is involved. Desktops
// without xdg-utils fall back to pkg/browser's search.
func launchCommand(url string) (string, []string, error) {
	if _, err := exec.LookPath("xdg-open"); err != nil {
		return "", nil, errOpenerNotFound
	}
	return "xdg-open", []string{url}, nil
}
