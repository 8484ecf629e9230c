package terminal

// Surface is the raw output target beneath a Console
// Implementations are not safe for concurrent use; Console serializes access
type Surface interface {
	// MoveCursor positions the cursor (0-indexed)
	MoveCursor(x, y int)

	// WriteRune writes r at the cursor and advances it one column
	WriteRune(r rune)

	// WriteString writes text at the cursor; '\n' moves to the next line start
	WriteString(text string)

	// Clear blanks the whole screen
	Clear()

	// Flush pushes pending output to the device
	Flush() error
}
