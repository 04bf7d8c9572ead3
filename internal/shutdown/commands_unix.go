//go:build !windows && !darwin

package shutdown

import "strconv"

// PlatformCommands uses shutdown(8), which counts in minutes; the delay is
// rounded up.
func PlatformCommands() Commands {
	return Commands{
		Schedule: func(seconds int) []string {
			return []string{"shutdown", "-h", "+" + strconv.Itoa(minutesCeil(seconds))}
		},
		Cancel: []string{"shutdown", "-c"},
	}
}

func PrivilegeHint() string {
	return "run as root or with sudo"
}
