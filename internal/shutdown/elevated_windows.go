//go:build windows

package shutdown

import "golang.org/x/sys/windows"

// Elevated reports whether the process token is elevated.
func Elevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
