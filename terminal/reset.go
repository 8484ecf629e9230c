package terminal

import (
	"io"
	"os"
)

// EmergencyReset restores a visible cursor and default attributes
// Safe to call from a panic handler with the console lock in any state
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
