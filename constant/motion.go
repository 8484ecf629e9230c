package constant

import (
	"math"
	"time"
)

// Pacing
const (
	// MinSpeed is the lowest accepted speed; lower values are clamped
	MinSpeed = 1

	// SpeedUnit is divided by speed to get the per-step delay (1000/speed ms)
	SpeedUnit = time.Second
)

// Worker (linear back-and-forth) motion
const (
	// WorkerTargetX, WorkerTargetY is the corner workers walk to
	WorkerTargetX = 0
	WorkerTargetY = 0

	// StepDensity is steps per cell of distance; longer walks get more steps
	StepDensity = 1.5

	// MinSteps keeps zero-distance walks finite and division-free
	MinSteps = 1

	// WorkerPause is how long a worker rests at the target before turning back
	WorkerPause = 500 * time.Millisecond

	// WorkerGlyph is the default worker symbol
	WorkerGlyph = 'W'
)

// Warrior (circular orbit) motion
const (
	// OrbitAngleStep is the angle advanced per step, in radians
	OrbitAngleStep = 0.1

	// OrbitRevolutions is how many full circles a warrior completes
	OrbitRevolutions = 3

	// OrbitSpan is the total angle travelled before the warrior stops
	OrbitSpan = OrbitRevolutions * 2 * math.Pi

	// WarriorGlyph is the default warrior symbol
	WarriorGlyph = '@'
)
