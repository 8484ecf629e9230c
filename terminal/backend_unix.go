//go:build unix

package terminal

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Size returns the terminal size for a given fd
// ok is false when the size could not be queried
func Size(fd int) (width, height int, ok bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24, false // Fallback
	}
	return int(ws.Col), int(ws.Row), true
}
