//go:build windows

package shutdown

import "strconv"

// PlatformCommands uses shutdown.exe, which counts in seconds.
func PlatformCommands() Commands {
	return Commands{
		Schedule: func(seconds int) []string {
			return []string{"shutdown", "/s", "/t", strconv.Itoa(seconds)}
		},
		Cancel: []string{"shutdown", "/a"},
	}
}

func PrivilegeHint() string {
	return "start the program as administrator"
}
