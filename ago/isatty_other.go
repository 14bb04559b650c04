//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd
// +build !linux,!darwin,!freebsd,!netbsd,!openbsd

package ago

// isTerminal is always false where termios is unavailable, so diagnostics
// stay uncolored
func isTerminal(fd int) bool {
	return false
}
