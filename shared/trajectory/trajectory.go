// Package trajectory solves closed-form ballistic arcs. One definition
// serves boss missiles, launch pads and item-box contents.
package trajectory

import (
	"math"

	"github.com/automoto/sandscorpion/shared/gamemath"
)

// DefaultGravity is used when a Launch leaves Gravity unset.
const DefaultGravity = 28.0

// Launch describes an arc before it is solved. Heights are measured along
// the up axis from the same base as StartHeight.
type Launch struct {
	Start     gamemath.Vec3
	Direction gamemath.Vec3 // only the horizontal part is used
	Distance  float64       // horizontal distance to travel

	StartHeight float64
	PeakHeight  float64
	EndHeight   float64

	Gravity float64 // positive magnitude
}

// Trajectory is a solved Launch. It is a comparable value and never changes
// after Calculate.
type Trajectory struct {
	start     gamemath.Vec3
	direction gamemath.Vec3

	distance    float64
	startHeight float64
	peakHeight  float64
	endHeight   float64
	gravity     float64

	initialVelocity      gamemath.Vec3
	horizontalSpeed      float64
	initialVerticalSpeed float64
	finalVerticalSpeed   float64

	ascendTime  float64
	descendTime float64
	totalTime   float64
}

// Calculate solves the launch. A peak at or below the end height, or below
// the start height, is replaced by max(start, end) so the arc has a single
// apex and non-negative times.
func (l Launch) Calculate() Trajectory {
	g := l.Gravity
	if g <= 0 {
		g = DefaultGravity
	}

	peak := l.PeakHeight
	if peak <= l.EndHeight || peak < l.StartHeight {
		peak = math.Max(l.StartHeight, l.EndHeight)
	}

	t := Trajectory{
		start:       l.Start,
		direction:   l.Direction.Flatten().Normalized(),
		distance:    l.Distance,
		startHeight: l.StartHeight,
		peakHeight:  peak,
		endHeight:   l.EndHeight,
		gravity:     g,
	}

	t.ascendTime = math.Sqrt(2 * (peak - l.StartHeight) / g)
	t.descendTime = math.Sqrt(2 * (peak - l.EndHeight) / g)
	t.totalTime = t.ascendTime + t.descendTime

	if t.totalTime > 0 {
		t.horizontalSpeed = l.Distance / t.totalTime
	}
	t.initialVerticalSpeed = math.Sqrt(2 * g * (peak - l.StartHeight))
	t.finalVerticalSpeed = -g * t.descendTime

	t.initialVelocity = t.direction.Scale(t.horizontalSpeed).Add(gamemath.Up.Scale(t.initialVerticalSpeed))
	return t
}

// FromPoints builds and solves an arc from start to end that rises height
// above the start, or above the end when relativeToEnd is set.
func FromPoints(start, end gamemath.Vec3, height float64, relativeToEnd bool, gravity float64) Trajectory {
	delta := end.Sub(start)
	l := Launch{
		Start:       start,
		Direction:   delta.Normalized(),
		Distance:    delta.Flatten().Length(),
		StartHeight: 0,
		PeakHeight:  height,
		EndHeight:   delta.Y,
		Gravity:     gravity,
	}
	if relativeToEnd {
		l.PeakHeight += delta.Y
	}
	return l.Calculate()
}

// Position returns the point reached t seconds after launch.
func (t Trajectory) Position(seconds float64) gamemath.Vec3 {
	displacement := t.initialVelocity.Scale(seconds).Add(gamemath.Up.Scale(-t.gravity * seconds * seconds / 2))
	return t.start.Add(displacement)
}

// PositionRatio returns the point at ratio r of the total flight, r in [0, 1].
func (t Trajectory) PositionRatio(r float64) gamemath.Vec3 {
	return t.Position(r * t.totalTime)
}

// IsFinished reports whether the next step of length dt reaches the end.
func (t Trajectory) IsFinished(seconds, dt float64) bool {
	return seconds+dt >= t.totalTime
}

// End returns the landing point.
func (t Trajectory) End() gamemath.Vec3 {
	return t.Position(t.totalTime)
}

func (t Trajectory) Start() gamemath.Vec3 { return t.start }
func (t Trajectory) Direction() gamemath.Vec3 { return t.direction }
func (t Trajectory) Distance() float64 { return t.distance }
func (t Trajectory) PeakHeight() float64 { return t.peakHeight }
func (t Trajectory) InitialVelocity() gamemath.Vec3 { return t.initialVelocity }
func (t Trajectory) HorizontalSpeed() float64 { return t.horizontalSpeed }
func (t Trajectory) InitialVerticalSpeed() float64 { return t.initialVerticalSpeed }
func (t Trajectory) FinalVerticalSpeed() float64 { return t.finalVerticalSpeed }
func (t Trajectory) AscendTime() float64 { return t.ascendTime }
func (t Trajectory) DescendTime() float64 { return t.descendTime }
func (t Trajectory) TotalTime() float64 { return t.totalTime }
