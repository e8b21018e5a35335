package gamemath

import "math"

const epsilon = 1e-5

// minSmoothTime keeps the damping coefficient finite.
const minSmoothTime = 1e-4

// SmoothDamp moves current toward target with a critically damped spring.
// velocity is the caller-owned derivative state and is updated in place.
// smoothTime is roughly the time needed to reach the target. The result
// never passes the target.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime

	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	change := current - target

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	// Clamp overshoot.
	if (target-current > 0) == (output > target) {
		output = target
		*velocity = 0
	}
	return output
}

// SmoothDampAngle is SmoothDamp for angles in radians, taking the short way round.
func SmoothDampAngle(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, dt)
}

// DeltaAngle returns the shortest signed difference between two angles, in (-Pi, Pi].
func DeltaAngle(from, to float64) float64 {
	d := math.Mod(to-from, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// MoveToward steps from toward to by at most delta.
func MoveToward(from, to, delta float64) float64 {
	if math.Abs(to-from) <= delta {
		return to
	}
	if to > from {
		return from + delta
	}
	return from - delta
}

func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// SmoothStep is the cubic Hermite ease between from and to.
func SmoothStep(from, to, x float64) float64 {
	if IsEqualApprox(from, to) {
		return from
	}
	t := Clamp((x-from)/(to-from), 0, 1)
	return t * t * (3 - 2*t)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func IsZeroApprox(v float64) bool {
	return math.Abs(v) < epsilon
}

func IsEqualApprox(a, b float64) bool {
	if a == b {
		return true
	}
	tolerance := epsilon * math.Abs(a)
	if tolerance < epsilon {
		tolerance = epsilon
	}
	return math.Abs(a-b) < tolerance
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
