package pathing

import (
	"errors"
	"sort"

	"github.com/automoto/sandscorpion/shared/gamemath"
)

// Polyline is a Path made of straight segments. Closed polylines join the
// last point back to the first.
type Polyline struct {
	points []gamemath.Vec3
	// cumulative[i] is the progress at points[i]; the final entry is the length.
	cumulative []float64
	closed     bool
}

var ErrDegeneratePath = errors.New("path needs at least two distinct points")

func NewPolyline(points []gamemath.Vec3, closed bool) (*Polyline, error) {
	if len(points) < 2 {
		return nil, ErrDegeneratePath
	}
	pts := append([]gamemath.Vec3(nil), points...)
	if closed {
		pts = append(pts, pts[0])
	}

	cumulative := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		cumulative[i] = cumulative[i-1] + pts[i].Sub(pts[i-1]).Length()
	}
	if cumulative[len(cumulative)-1] <= 0 {
		return nil, ErrDegeneratePath
	}
	return &Polyline{points: pts, cumulative: cumulative, closed: closed}, nil
}

// Line is a straight open path of the given length heading along Forward.
func Line(length float64) *Polyline {
	p, _ := NewPolyline([]gamemath.Vec3{{}, gamemath.Forward.Scale(length)}, false)
	return p
}

// Rectangle is a closed loop of width by depth starting at the origin and
// heading along Forward first.
func Rectangle(width, depth float64) *Polyline {
	p, _ := NewPolyline([]gamemath.Vec3{
		{},
		{Z: -depth},
		{X: width, Z: -depth},
		{X: width},
	}, true)
	return p
}

func (p *Polyline) Length() float64 { return p.cumulative[len(p.cumulative)-1] }
func (p *Polyline) Closed() bool     { return p.closed }

// segment returns the index of the segment holding progress and the ratio along it.
func (p *Polyline) segment(progress float64) (int, float64) {
	progress = Wrap(p, progress)
	i := sort.SearchFloat64s(p.cumulative, progress)
	if i > 0 && (i == len(p.cumulative) || p.cumulative[i] > progress) {
		i--
	}
	if i >= len(p.points)-1 {
		i = len(p.points) - 2
	}
	span := p.cumulative[i+1] - p.cumulative[i]
	if span <= 0 {
		return i, 0
	}
	return i, (progress - p.cumulative[i]) / span
}

func (p *Polyline) Position(progress float64) gamemath.Vec3 {
	i, t := p.segment(progress)
	return p.points[i].Lerp(p.points[i+1], t)
}

func (p *Polyline) Basis(progress float64) Basis {
	i, _ := p.segment(progress)
	forward := p.points[i+1].Sub(p.points[i]).Flatten().Normalized()
	if forward == (gamemath.Vec3{}) {
		forward = gamemath.Forward
	}
	return Basis{
		Forward: forward,
		Right:   forward.Cross(gamemath.Up),
		Up:      gamemath.Up,
	}
}
