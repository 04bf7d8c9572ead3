package countdown

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrSchedulingFailed = errors.New("scheduling failed")
	ErrAlreadyRunning   = errors.New("a countdown is already running")
)

// StatusMessage maps an error from Start to the text shown to the user.
func StatusMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "Please enter a whole number of minutes (at least 1)."
	case errors.Is(err, ErrSchedulingFailed):
		return "Could not schedule the shutdown. Try running as administrator."
	case errors.Is(err, ErrAlreadyRunning):
		return "A countdown is already running."
	default:
		return err.Error()
	}
}
