// Package launch holds the stage objects that throw things along ballistic
// arcs: launch pads for the opponent and item boxes spilling their contents.
package launch

import (
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/trajectory"
)

// Direction is the axis a launcher throws along.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionUp
)

// Launcher is a launch pad. Heights are relative to the pad's position.
type Launcher struct {
	Position  gamemath.Vec3
	Forward   gamemath.Vec3
	Direction Direction

	StartHeight float64 // Height at the beginning of the arc
	PeakHeight  float64 // Height at the highest point of the arc
	EndHeight   float64 // Height at the end of the arc
	Distance    float64 // Horizontal distance to travel
	Gravity     float64

	RecenterSpeed float64 // 0 snaps the opponent onto the start point
}

// StartingPoint is where the arc begins.
func (l *Launcher) StartingPoint() gamemath.Vec3 {
	return l.Position.Add(gamemath.Up.Scale(l.StartHeight))
}

// LaunchDirection returns the direction the arc travels in.
func (l *Launcher) LaunchDirection() gamemath.Vec3 {
	if l.Direction == DirectionUp {
		return gamemath.Up
	}
	return l.Forward
}

// Launch solves the pad's arc. An upward launcher has no horizontal travel.
func (l *Launcher) Launch() trajectory.Trajectory {
	return trajectory.Launch{
		Start:       l.StartingPoint(),
		Direction:   l.LaunchDirection(),
		Distance:    l.Distance,
		StartHeight: l.StartHeight,
		PeakHeight:  l.PeakHeight,
		EndHeight:   l.EndHeight,
		Gravity:     l.Gravity,
	}.Calculate()
}

// PreviewTrajectory implements preview.TrajectoryPreviewer.
func (l *Launcher) PreviewTrajectory() trajectory.Trajectory {
	return l.Launch()
}

// Recenter moves pos towards the start point by one step of dt and reports
// whether it arrived.
func (l *Launcher) Recenter(pos gamemath.Vec3, dt float64) (gamemath.Vec3, bool) {
	start := l.StartingPoint()
	if l.RecenterSpeed <= 0 {
		return start, true
	}
	delta := start.Sub(pos)
	step := l.RecenterSpeed * dt
	if delta.Length() <= step {
		return start, true
	}
	next := pos.Add(delta.Normalized().Scale(step))
	return next, next.IsEqualApprox(start)
}
