// Package colony runs ants concurrently against a shared console.
//
// Each ant owns its motion state and pacing; the console is the only thing
// ants share. Motions are computed up front as a frame plan, then a runner
// walks the plan: render, sleep, repeat, and erase the last glyph at the end.
package colony

import (
	"log"
	"time"

	"github.com/lixenwraith/ant-colony/constant"
	"github.com/lixenwraith/ant-colony/terminal"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Frame is one emitted position
type Frame struct {
	Pos vmath.Vec2F

	// Hold is extra waiting after this frame on top of the motion delay
	Hold time.Duration
}

// Mark maps the frame position to the nearest canvas cell
func (f Frame) Mark() terminal.Mark {
	x, y := f.Pos.Cell()
	return terminal.At(x, y)
}

// Motion is a finite movement pattern
type Motion interface {
	// Glyph is the symbol drawn at every frame
	Glyph() rune

	// Delay is the pause between consecutive frames
	Delay() time.Duration

	// Plan returns every frame in emission order
	Plan() []Frame
}

// pacing converts speed to per-frame delay (1000/speed ms), clamping speed to MinSpeed
func pacing(speed int) time.Duration {
	if speed < constant.MinSpeed {
		log.Printf("colony: speed %d below minimum, clamped to %d", speed, constant.MinSpeed)
		speed = constant.MinSpeed
	}
	return constant.SpeedUnit / time.Duration(speed)
}
