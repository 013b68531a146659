//go:build windows
// +build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

// launchCommand builds the Windows launch command. There is no standalone
// executable behind the "start" verb, so the URL goes through cmd.exe; the
// empty "" argument is the window title, without which start treats a
// quoted URL as the title. This is the shell variant the sanitizer's
// Windows forbidden set and ^& separator exist for.
func launchCommand(url string) (string, []string, error) {
	return "cmd", []string{"/c", "start", "", url}, nil
}
