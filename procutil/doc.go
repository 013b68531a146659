// Package procutil provides cross-platform process liveness utilities.
//
// It wraps github.com/shirou/gopsutil/v4/process to provide a simple,
// reliable API for process detection. gopsutil uses platform-specific
// APIs:
//
//   - Windows: Native Windows API (OpenProcess, GetExitCodeProcess)
//   - Linux: /proc filesystem
//   - macOS/BSD: sysctl system calls
//
// This approach provides accurate process detection without the stale PID
// issues that affect os.FindProcess + Signal(0) on Windows.
//
// # Example Usage
//
//	// After a detached launch, confirm the opener is still around
//	pid := launcher.LastPID()
//	if procutil.IsProcessRunning(pid) {
//	    fmt.Printf("opener %s (%d) still running\n", procutil.ProcessName(pid), pid)
//	}
package procutil
