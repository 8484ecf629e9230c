// @lixen: #focus{sys[term,io,output]}
package terminal

import (
	"bufio"
	"io"
)

// ansiBufferSize holds several renders worth of escape sequences
const ansiBufferSize = 4096

// ANSISurface emits VT100 escape sequences to a byte stream
// Output is buffered so one render reaches the writer as a single Write
type ANSISurface struct {
	writer *bufio.Writer
}

// NewANSISurface creates a surface writing to w
func NewANSISurface(w io.Writer) *ANSISurface {
	return &ANSISurface{
		writer: bufio.NewWriterSize(w, ansiBufferSize),
	}
}

// MoveCursor implements Surface
func (s *ANSISurface) MoveCursor(x, y int) {
	writeCursorPos(s.writer, x, y)
}

// WriteRune implements Surface
func (s *ANSISurface) WriteRune(r rune) {
	if r < 0x80 {
		s.writer.WriteByte(byte(r))
	} else {
		s.writer.WriteRune(r)
	}
}

// WriteString implements Surface
func (s *ANSISurface) WriteString(text string) {
	s.writer.WriteString(text)
}

// Clear implements Surface
func (s *ANSISurface) Clear() {
	s.writer.Write(csiClear)
}

// Flush implements Surface
func (s *ANSISurface) Flush() error {
	return s.writer.Flush()
}
