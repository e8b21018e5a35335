package trajectory

import (
	"math"
	"testing"

	"github.com/automoto/sandscorpion/shared/gamemath"
)

const tolerance = 1e-9

func TestLaunchEndpoints(t *testing.T) {
	cases := []struct {
		name                   string
		start, peak, end, dist float64
	}{
		{"flat_ground", 0, 5, 0, 20},
		{"drop", 0, 3, -10, 12},
		{"climb", 0, 12, 8, 30},
		{"raised_start", 4, 9, 1, 16},
		{"peak_equals_start", 6, 6, 2, 10},
		{"zero_distance", 0, 4, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			origin := gamemath.Vec3{X: 3, Y: 1, Z: -7}
			traj := Launch{
				Start:       origin,
				Direction:   gamemath.Vec3{X: 1, Y: 0.5, Z: 1},
				Distance:    c.dist,
				StartHeight: c.start,
				PeakHeight:  c.peak,
				EndHeight:   c.end,
				Gravity:     DefaultGravity,
			}.Calculate()

			if got := traj.Position(0); got != origin {
				t.Fatalf("position at t=0 = %+v, want %+v", got, origin)
			}

			end := traj.Position(traj.TotalTime())
			if dy := end.Y - origin.Y; math.Abs(dy-(c.end-c.start)) > 1e-6 {
				t.Errorf("vertical displacement at T = %v, want %v", dy, c.end-c.start)
			}
			if flat := end.Sub(origin).Flatten().Length(); math.Abs(flat-c.dist) > 1e-6 {
				t.Errorf("horizontal displacement at T = %v, want %v", flat, c.dist)
			}
			if traj.TotalTime() < 0 || traj.AscendTime() < 0 || traj.DescendTime() < 0 {
				t.Errorf("negative flight times: %v %v %v", traj.AscendTime(), traj.DescendTime(), traj.TotalTime())
			}
		})
	}
}

func TestLaunchFormulas(t *testing.T) {
	g := 10.0
	traj := Launch{Direction: gamemath.Forward, Distance: 30, PeakHeight: 5, EndHeight: 0, Gravity: g}.Calculate()

	wantT1 := math.Sqrt(2 * 5 / g)
	if math.Abs(traj.AscendTime()-wantT1) > tolerance {
		t.Fatalf("ascend time = %v, want %v", traj.AscendTime(), wantT1)
	}
	if math.Abs(traj.DescendTime()-wantT1) > tolerance {
		t.Fatalf("descend time = %v, want %v", traj.DescendTime(), wantT1)
	}
	if math.Abs(traj.HorizontalSpeed()-30/traj.TotalTime()) > tolerance {
		t.Fatalf("horizontal speed = %v", traj.HorizontalSpeed())
	}
	if math.Abs(traj.InitialVerticalSpeed()-math.Sqrt(2*g*5)) > tolerance {
		t.Fatalf("initial vertical speed = %v", traj.InitialVerticalSpeed())
	}
	if math.Abs(traj.FinalVerticalSpeed()+g*wantT1) > tolerance {
		t.Fatalf("final vertical speed = %v, want %v", traj.FinalVerticalSpeed(), -g*wantT1)
	}

	apex := traj.Position(traj.AscendTime())
	if math.Abs(apex.Y-5) > 1e-9 {
		t.Fatalf("apex height = %v, want 5", apex.Y)
	}
}

func TestPeakClamp(t *testing.T) {
	cases := []struct {
		name             string
		start, peak, end float64
		want             float64
	}{
		{"peak_below_end", 0, 2, 6, 6},
		{"peak_equals_end", 0, 6, 6, 6},
		{"peak_below_start", 8, 3, 1, 8},
		{"valid_peak", 1, 9, 2, 9},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			traj := Launch{Distance: 10, StartHeight: c.start, PeakHeight: c.peak, EndHeight: c.end}.Calculate()
			if traj.PeakHeight() != c.want {
				t.Fatalf("peak = %v, want %v", traj.PeakHeight(), c.want)
			}
			if math.IsNaN(traj.TotalTime()) {
				t.Fatalf("total time is NaN")
			}
		})
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	l := Launch{
		Start:       gamemath.Vec3{X: 1, Y: 2, Z: 3},
		Direction:   gamemath.Vec3{X: -1, Z: 2},
		Distance:    17,
		StartHeight: 0,
		PeakHeight:  7,
		EndHeight:   -2,
		Gravity:     31,
	}
	a := l.Calculate()
	b := l.Calculate()
	if a != b {
		t.Fatalf("Calculate is not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestFromPoints(t *testing.T) {
	start := gamemath.Vec3{X: 0, Y: 4, Z: 0}
	end := gamemath.Vec3{X: 6, Y: 0, Z: -8}

	cases := []struct {
		name          string
		relativeToEnd bool
		wantPeak      float64
	}{
		{"relative_to_start", false, 5},
		{"relative_to_end", true, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			traj := FromPoints(start, end, 5, c.relativeToEnd, DefaultGravity)
			if !traj.End().IsEqualApprox(end) {
				t.Fatalf("end = %+v, want %+v", traj.End(), end)
			}
			if traj.PeakHeight() != c.wantPeak {
				t.Fatalf("peak = %v, want %v", traj.PeakHeight(), c.wantPeak)
			}
			if math.Abs(traj.Distance()-10) > tolerance {
				t.Fatalf("distance = %v, want 10", traj.Distance())
			}
		})
	}
}

func TestFromPointsDegenerate(t *testing.T) {
	p := gamemath.Vec3{X: 2, Z: 2}
	traj := FromPoints(p, p, 0, false, DefaultGravity)
	if traj.TotalTime() != 0 {
		t.Fatalf("total time = %v, want 0", traj.TotalTime())
	}
	if traj.PositionRatio(0.5) != p {
		t.Fatalf("degenerate arc moved: %+v", traj.PositionRatio(0.5))
	}
	if !traj.IsFinished(0, 1.0/60) {
		t.Fatalf("degenerate arc should be finished immediately")
	}
}
