package terminal

import (
	"log"
	"sync"
)

// Stats counts console activity since creation
type Stats struct {
	Draws       uint64 // Glyphs written inside the canvas
	Erases      uint64 // Previous glyphs blanked
	Dropped     uint64 // Draw requests outside the canvas
	WriteErrors uint64 // Failed surface flushes
}

// Console is the process-wide render target shared by all ants
// Every surface access happens under mu; callers only see Render and friends
type Console struct {
	mu      sync.Mutex
	surface Surface
	canvas  Canvas
	stats   Stats
}

// NewConsole creates a console over surface, bounded by canvas
func NewConsole(surface Surface, canvas Canvas) *Console {
	return &Console{
		surface: surface,
		canvas:  canvas,
	}
}

// Canvas returns the console bounds
func (c *Console) Canvas() Canvas {
	return c.canvas
}

// Render erases the glyph at prev, draws glyph at next and parks the cursor
// The whole sequence runs under one lock so concurrent renders never interleave
// A next outside the canvas draws nothing; the erase still happens
func (c *Console) Render(next Mark, glyph rune, prev Mark) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.canvas.Contains(prev) {
		c.surface.MoveCursor(prev.X, prev.Y)
		c.surface.WriteRune(' ')
		c.stats.Erases++
	}

	if c.canvas.Contains(next) {
		c.surface.MoveCursor(next.X, next.Y)
		c.surface.WriteRune(glyph)
		c.stats.Draws++
	} else if next.Valid {
		c.stats.Dropped++
	}

	c.park()
	c.flush()
}

// Erase blanks the glyph at prev without drawing anything new
func (c *Console) Erase(prev Mark) {
	c.Render(NoMark, ' ', prev)
}

// Clear blanks the whole screen
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.surface.Clear()
	c.park()
	c.flush()
}

// Announce writes a one-line notice below the canvas
func (c *Console) Announce(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	notice := c.canvas.NoticeCell()
	c.surface.MoveCursor(notice.X, notice.Y)
	c.surface.WriteString(text)
	c.surface.WriteString("\n")
	c.flush()
}

// Stats returns a snapshot of the counters
func (c *Console) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// park moves the cursor off the canvas, caller holds mu
func (c *Console) park() {
	p := c.canvas.ParkCell()
	c.surface.MoveCursor(p.X, p.Y)
}

// flush pushes output, caller holds mu
func (c *Console) flush() {
	if err := c.surface.Flush(); err != nil {
		c.stats.WriteErrors++
		// Only the first failure is logged, a dead stdout would flood the log
		if c.stats.WriteErrors == 1 {
			log.Printf("console: flush failed: %v", err)
		}
	}
}
