//go:build !unix

package terminal

import (
	"golang.org/x/term"
)

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Size returns the terminal size for a given fd
func Size(fd int) (width, height int, ok bool) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 80, 24, false
	}
	return w, h, true
}
