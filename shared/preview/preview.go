// Package preview holds the read-only views editor and debug tooling use to
// draw arcs and hit volumes without knowing the concrete type behind them.
package preview

import (
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/trajectory"
)

// TrajectoryPreviewer exposes the arc an object will launch things along.
type TrajectoryPreviewer interface {
	PreviewTrajectory() trajectory.Trajectory
}

// Region is one hit volume as a world space box.
type Region struct {
	Name   string
	Center gamemath.Vec3
	Width  float64 // Across the track
	Length float64 // Along the track
	Armed  bool
}

// RegionPreviewer exposes hit volumes.
type RegionPreviewer interface {
	PreviewRegions() []Region
}

// Sample returns n+1 evenly spaced points of a trajectory, start and end
// included. n below 1 is treated as 1.
func Sample(t trajectory.Trajectory, n int) []gamemath.Vec3 {
	if n < 1 {
		n = 1
	}
	points := make([]gamemath.Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		points = append(points, t.PositionRatio(float64(i)/float64(n)))
	}
	return points
}
