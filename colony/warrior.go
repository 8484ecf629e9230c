package colony

import (
	"time"

	"github.com/lixenwraith/ant-colony/constant"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Warrior orbits a centre for OrbitRevolutions full turns
type Warrior struct {
	center vmath.Vec2F
	radius float64
	glyph  rune
	delay  time.Duration
}

// NewWarrior creates a warrior circling (cx, cy)
func NewWarrior(cx, cy, radius, speed int, glyph rune) *Warrior {
	return &Warrior{
		center: vmath.V2F(float64(cx), float64(cy)),
		radius: float64(radius),
		glyph:  glyph,
		delay:  pacing(speed),
	}
}

// Glyph implements Motion
func (w *Warrior) Glyph() rune { return w.glyph }

// Delay implements Motion
func (w *Warrior) Delay() time.Duration { return w.delay }

// Plan implements Motion
// Angles are i*OrbitAngleStep for every i with angle < OrbitSpan
func (w *Warrior) Plan() []Frame {
	var frames []Frame
	for i := 0; ; i++ {
		angle := float64(i) * constant.OrbitAngleStep
		if angle >= constant.OrbitSpan {
			break
		}
		frames = append(frames, Frame{Pos: vmath.OrbitPoint(w.center, w.radius, angle)})
	}
	return frames
}
