// Package pathing defines the one-dimensional track the boss and the
// opponent move along, plus a polyline implementation of it.
package pathing

import (
	"math"

	"github.com/automoto/sandscorpion/shared/gamemath"
)

// Basis is the orientation of the track at a given progress.
type Basis struct {
	Forward gamemath.Vec3
	Right   gamemath.Vec3
	Up      gamemath.Vec3
}

// Path samples world positions and orientations by progress.
type Path interface {
	Position(progress float64) gamemath.Vec3
	Basis(progress float64) Basis
	Length() float64
	Closed() bool
}

// Wrap maps progress into [0, length) on closed paths and clamps it on open ones.
func Wrap(p Path, progress float64) float64 {
	length := p.Length()
	if length <= 0 {
		return 0
	}
	if !p.Closed() {
		return gamemath.Clamp(progress, 0, length)
	}
	progress = math.Mod(progress, length)
	if progress < 0 {
		progress += length
	}
	if progress >= length {
		progress = 0
	}
	return progress
}

// Delta is the signed distance along p from one progress to another,
// taking the short way round on closed paths.
func Delta(p Path, from, to float64) float64 {
	d := to - from
	if !p.Closed() {
		return d
	}
	length := p.Length()
	if length <= 0 {
		return 0
	}
	d = math.Mod(d, length)
	if d > length/2 {
		d -= length
	} else if d < -length/2 {
		d += length
	}
	return d
}

// Offset returns the point at progress shifted sideways by lateral.
func Offset(p Path, progress, lateral float64) gamemath.Vec3 {
	return p.Position(progress).Add(p.Basis(progress).Right.Scale(lateral))
}

// Lateral returns the signed sideways offset of point from the track centre at progress.
func Lateral(p Path, progress float64, point gamemath.Vec3) float64 {
	delta := point.Sub(p.Position(progress)).Flatten()
	return delta.Dot(p.Basis(progress).Right)
}
