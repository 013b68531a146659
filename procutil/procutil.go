// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"github.com/shirou/gopsutil/v4/process"
)

// IsProcessRunning checks if a process with the given PID is running.
// Works cross-platform (Windows and Unix) via gopsutil, which uses
// native APIs on Windows and procfs/sysctl elsewhere, so stale PIDs are
// reported correctly on Windows, unlike os.FindProcess + Signal(0).
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}

	exists, err := process.PidExists(int32(pid))
	if err != nil {
		return false
	}

	return exists
}

// ProcessName returns the executable name of the process with the given
// PID, or "" if the process does not exist or cannot be inspected. Useful
// for confirming a detached browser opener is the process you started.
func ProcessName(pid int) string {
	if pid <= 0 {
		return ""
	}

	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return ""
	}

	name, err := proc.Name()
	if err != nil {
		return ""
	}

	return name
}
