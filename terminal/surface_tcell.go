package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// TcellSurface draws into a tcell screen
// tcell keeps its own cell buffer, so cursor moves are tracked locally and
// only materialize as SetContent targets and the shown cursor position
type TcellSurface struct {
	screen tcell.Screen
	style  tcell.Style
	x, y   int
}

// NewTcellSurface wraps an initialized screen
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	return &TcellSurface{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// MoveCursor implements Surface
func (s *TcellSurface) MoveCursor(x, y int) {
	s.x, s.y = x, y
}

// WriteRune implements Surface
func (s *TcellSurface) WriteRune(r rune) {
	s.screen.SetContent(s.x, s.y, r, nil, s.style)
	s.x++
}

// WriteString implements Surface
func (s *TcellSurface) WriteString(text string) {
	for _, r := range text {
		if r == '\n' {
			s.x = 0
			s.y++
			continue
		}
		s.WriteRune(r)
	}
}

// Clear implements Surface
func (s *TcellSurface) Clear() {
	s.screen.Clear()
}

// Flush implements Surface
func (s *TcellSurface) Flush() error {
	s.screen.ShowCursor(s.x, s.y)
	s.screen.Show()
	return nil
}
