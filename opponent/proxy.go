// Package opponent describes the pursuing character the boss reacts to.
// The boss only reads it, apart from the two outbound commands on Proxy.
package opponent

import "github.com/automoto/sandscorpion/shared/gamemath"

// KnockbackRequest is sent when the boss hits the opponent.
type KnockbackRequest struct {
	Direction       gamemath.Vec3
	Speed           float64
	VerticalImpulse float64
	SuppressDamage  bool // Knock back without costing the opponent health
}

// Proxy is the boss's view of the opponent.
type Proxy interface {
	Progress() float64 // Position along the shared path
	Speed() float64    // Signed velocity along the path
	Heading() gamemath.Vec3
	Position() gamemath.Vec3

	IsCounterMoveActive() bool // Mid homing strike
	IsGrounded() bool

	ApplyKnockback(KnockbackRequest)
	ApplyBounce()
}

// Booster is implemented by opponents with a speed boost that turns body
// contact into a damage-free knockback.
type Booster interface {
	IsBoostActive() bool
	CancelBoost()
}

// Lockout is implemented by opponents that ignore contact for a moment
// after bouncing off a target.
type Lockout interface {
	IsBounceLockoutActive() bool
}

// BoostActive reports whether p is boosting.
func BoostActive(p Proxy) bool {
	b, ok := p.(Booster)
	return ok && b.IsBoostActive()
}

// LockedOut reports whether p is in its post-bounce lockout.
func LockedOut(p Proxy) bool {
	l, ok := p.(Lockout)
	return ok && l.IsBounceLockoutActive()
}
