package colony

import (
	"math"
	"time"

	"github.com/lixenwraith/ant-colony/constant"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Worker walks a straight line to its target, rests, and walks back
//
// Phases: MovingToTarget -> PausedAtTarget -> MovingBack -> Done
// Both walks use the same step count; frames are interpolated from the step
// index rather than accumulated, so the last frame of each walk lands exactly
// on the target and on the start respectively
type Worker struct {
	start  vmath.Vec2F
	target vmath.Vec2F
	glyph  rune
	delay  time.Duration
	steps  int
}

// NewWorker creates a worker starting at (x, y) heading for the canvas corner
func NewWorker(x, y, speed int, glyph rune) *Worker {
	return NewWorkerTo(x, y, constant.WorkerTargetX, constant.WorkerTargetY, speed, glyph)
}

// NewWorkerTo creates a worker with an explicit target
func NewWorkerTo(x, y, tx, ty, speed int, glyph rune) *Worker {
	start := vmath.V2F(float64(x), float64(y))
	target := vmath.V2F(float64(tx), float64(ty))
	return &Worker{
		start:  start,
		target: target,
		glyph:  glyph,
		delay:  pacing(speed),
		steps:  stepCount(vmath.V2FDist(start, target)),
	}
}

// stepCount scales distance by StepDensity, never below MinSteps
func stepCount(distance float64) int {
	steps := int(math.Ceil(distance * constant.StepDensity))
	if steps < constant.MinSteps {
		steps = constant.MinSteps
	}
	return steps
}

// Glyph implements Motion
func (w *Worker) Glyph() rune { return w.glyph }

// Delay implements Motion
func (w *Worker) Delay() time.Duration { return w.delay }

// Steps returns the step count of each walk
func (w *Worker) Steps() int { return w.steps }

// Plan implements Motion
// Each walk emits Steps()+1 frames, endpoints included
func (w *Worker) Plan() []Frame {
	frames := make([]Frame, 0, 2*(w.steps+1))

	// MovingToTarget
	for i := 0; i <= w.steps; i++ {
		t := float64(i) / float64(w.steps)
		frames = append(frames, Frame{Pos: vmath.V2FLerp(w.start, w.target, t)})
	}

	// PausedAtTarget
	frames[len(frames)-1].Hold = constant.WorkerPause

	// MovingBack
	for i := 0; i <= w.steps; i++ {
		t := float64(i) / float64(w.steps)
		frames = append(frames, Frame{Pos: vmath.V2FLerp(w.target, w.start, t)})
	}

	return frames
}
