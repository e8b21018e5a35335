package opponent

import (
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/pathing"
)

// Puppet is an opponent driven directly by its caller: tests and the
// headless runner set its speed and flags, and Step integrates it along
// the path. It records every command the boss sends.
type Puppet struct {
	path pathing.Path

	progress float64
	speed    float64
	lateral  float64

	// Facing is 1 when the puppet faces the path's forward direction and -1
	// when it faces back. It stays put when the puppet backs up.
	Facing float64

	// Velocity along the path left over from knockbacks, decays by KnockbackDecay per second.
	knockback      float64
	KnockbackDecay float64

	CounterMove bool
	Grounded    bool
	Boosting    bool
	Lockout     bool
	Height      float64 // Above the track

	// BounceLockout is how long Lockout stays set after a bounce.
	BounceLockout float64
	lockoutTimer  float64

	Knockbacks []KnockbackRequest
	Bounces    int
}

// NewPuppet places a grounded, stationary opponent at progress.
func NewPuppet(path pathing.Path, progress float64) *Puppet {
	return &Puppet{
		path:           path,
		progress:       pathing.Wrap(path, progress),
		Facing:         1,
		Grounded:       true,
		KnockbackDecay: 60,
		BounceLockout:  0.25,
	}
}

func (p *Puppet) Progress() float64 { return p.progress }
func (p *Puppet) Speed() float64    { return p.speed + p.knockback }
func (p *Puppet) Lateral() float64  { return p.lateral }

func (p *Puppet) Heading() gamemath.Vec3 {
	return p.path.Basis(p.progress).Forward.Scale(p.Facing)
}

func (p *Puppet) Position() gamemath.Vec3 {
	return pathing.Offset(p.path, p.progress, p.lateral).Add(p.path.Basis(p.progress).Up.Scale(p.Height))
}

func (p *Puppet) IsCounterMoveActive() bool   { return p.CounterMove }
func (p *Puppet) IsGrounded() bool            { return p.Grounded }
func (p *Puppet) IsBoostActive() bool         { return p.Boosting }
func (p *Puppet) CancelBoost()                { p.Boosting = false }
func (p *Puppet) IsBounceLockoutActive() bool { return p.Lockout }

// ApplyKnockback records the request and pushes the puppet along the path.
func (p *Puppet) ApplyKnockback(req KnockbackRequest) {
	p.Knockbacks = append(p.Knockbacks, req)
	forward := p.path.Basis(p.progress).Forward
	p.knockback = req.Direction.Flatten().Normalized().Dot(forward) * req.Speed
	p.CounterMove = false
}

// ApplyBounce records the bounce and ends any counter move.
func (p *Puppet) ApplyBounce() {
	p.Bounces++
	p.CounterMove = false
	p.Grounded = false
	if p.BounceLockout > 0 {
		p.Lockout = true
		p.lockoutTimer = p.BounceLockout
	}
}

func (p *Puppet) SetProgress(progress float64) { p.progress = pathing.Wrap(p.path, progress) }
func (p *Puppet) SetSpeed(speed float64)       { p.speed = speed }
func (p *Puppet) SetLateral(lateral float64)   { p.lateral = lateral }

// Step advances the puppet by dt seconds.
func (p *Puppet) Step(dt float64) {
	p.progress = pathing.Wrap(p.path, p.progress+p.Speed()*dt)
	p.knockback = gamemath.MoveToward(p.knockback, 0, p.KnockbackDecay*dt)

	if p.lockoutTimer > 0 {
		p.lockoutTimer -= dt
		if p.lockoutTimer <= 0 {
			p.Lockout = false
		}
	}
}
