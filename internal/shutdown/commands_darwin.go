//go:build darwin

package shutdown

import "strconv"

// PlatformCommands uses shutdown(8), which counts in minutes; the delay is
// rounded up. macOS has no "shutdown -c", the pending shutdown process is
// killed instead.
func PlatformCommands() Commands {
	return Commands{
		Schedule: func(seconds int) []string {
			return []string{"shutdown", "-h", "+" + strconv.Itoa(minutesCeil(seconds))}
		},
		Cancel: []string{"killall", "shutdown"},
	}
}

func PrivilegeHint() string {
	return "run with sudo"
}
