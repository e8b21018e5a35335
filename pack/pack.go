// Package pack coordinates a group of path-following pursuers that share
// one attack timer: only one member attacks at a time, the one lined up
// closest to the opponent.
package pack

import (
	"math"

	"github.com/automoto/sandscorpion/opponent"
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/pathing"
)

// AttackState is a member's attack phase.
type AttackState int

const (
	AttackInactive AttackState = iota
	AttackWindup
	AttackCharge
	AttackToss
	AttackRecovery
)

func (s AttackState) String() string {
	switch s {
	case AttackWindup:
		return "windup"
	case AttackCharge:
		return "charge"
	case AttackToss:
		return "toss"
	case AttackRecovery:
		return "recovery"
	}
	return "inactive"
}

// Config contains the pack's movement and attack tuning.
type Config struct {
	Traction           float64 // Acceleration towards the target speed
	Friction           float64 // Deceleration while waiting after a hit
	PreferredOffset    float64 // Target distance from the opponent
	AttackOffset       float64 // Largest distance a member attacks from
	RubberbandStrength float64 // 0..1

	TopSpeed        float64 // The opponent's top ground speed
	SpeedDifference float64 // How much slower than the opponent the pack runs
	MinSpeed        float64 // Slower than this counts as standing still
	AttackSpeedMult float64 // Speed multiplier while attacking

	HitWait        float64 // Pause after hitting the opponent
	AttackInterval float64

	// Built-in attack timeline
	WindupTime   float64
	ChargeTime   float64
	TossTime     float64
	RecoveryTime float64

	TossSpeed float64
	TossLift  float64
}

var DefaultConfig = Config{
	Traction:           40,
	Friction:           60,
	PreferredOffset:    -6,
	AttackOffset:       12,
	RubberbandStrength: 0.5,

	TopSpeed:        30,
	SpeedDifference: 2,
	MinSpeed:        2,
	AttackSpeedMult: 1.5,

	HitWait:        3,
	AttackInterval: 3,

	WindupTime:   0.5,
	ChargeTime:   1,
	TossTime:     0.3,
	RecoveryTime: 0.6,

	TossSpeed: 40,
	TossLift:  3,
}

// Handle identifies a member. Handles stay valid until Leave.
type Handle int

// Member is one pursuer.
type Member struct {
	Progress float64
	Lateral  float64 // Fixed offset across the track

	Attack        AttackState
	attackElapsed float64

	moveSpeed   float64
	rubberband  float64
	interacting bool
	tossed      bool
	joined      bool
}

// Speed is the member's current speed along the path.
func (m *Member) Speed(cfg *Config) float64 {
	spd := m.moveSpeed + m.rubberband
	if m.Attack != AttackInactive {
		spd *= cfg.AttackSpeedMult
	}
	if spd < cfg.MinSpeed {
		return 0
	}
	return spd
}

// Coordinator owns the members and their shared timers.
type Coordinator struct {
	cfg  Config
	path pathing.Path
	opp  opponent.Proxy

	members []Member

	hitTimer    float64
	attackTimer float64
	oppProgress float64
	rear        float64
}

func NewCoordinator(cfg Config, path pathing.Path, opp opponent.Proxy) *Coordinator {
	c := &Coordinator{cfg: cfg, path: path, opp: opp}
	c.Respawn()
	return c
}

// Join adds a member running at a fixed lateral offset.
func (c *Coordinator) Join(lateral float64) Handle {
	c.members = append(c.members, Member{Lateral: lateral, joined: true})
	return Handle(len(c.members) - 1)
}

// Leave removes a member. Its handle must not be used again.
func (c *Coordinator) Leave(h Handle) {
	if m := c.member(h); m != nil {
		*m = Member{}
	}
}

// Member returns the member behind h, or nil.
func (c *Coordinator) Member(h Handle) *Member {
	return c.member(h)
}

func (c *Coordinator) member(h Handle) *Member {
	if h < 0 || int(h) >= len(c.members) || !c.members[h].joined {
		return nil
	}
	return &c.members[h]
}

// Rear is the progress of the rearmost member. Hosts use it to keep the
// opponent from ending up behind the pack.
func (c *Coordinator) Rear() float64 { return c.rear }

// Respawn puts every member back at the start.
func (c *Coordinator) Respawn() {
	c.hitTimer = 0
	c.attackTimer = c.cfg.AttackInterval
	for i := range c.members {
		m := &c.members[i]
		if !m.joined {
			continue
		}
		*m = Member{Lateral: m.Lateral, joined: true}
	}
}

// Tick advances the pack by dt seconds.
func (c *Coordinator) Tick(dt float64) {
	if c.path == nil || c.opp == nil {
		return
	}
	c.oppProgress = c.opp.Progress()
	c.updateRear()
	c.updateAttackTimer(dt)

	if !gamemath.IsZeroApprox(c.hitTimer) {
		c.hitTimer = gamemath.MoveToward(c.hitTimer, 0, dt)
	}

	for i := range c.members {
		m := &c.members[i]
		if !m.joined {
			continue
		}
		c.stepAttack(m, dt)
		c.updateSpeed(m, dt)
		m.Progress = pathing.Wrap(c.path, m.Progress+m.Speed(&c.cfg)*dt)
		if m.interacting {
			c.hitOpponent(m)
		}
	}
}

// updateRear finds the member furthest behind the opponent, measured the
// short way round on closed paths.
func (c *Coordinator) updateRear() {
	behind := math.Inf(1)
	for i := range c.members {
		if !c.members[i].joined {
			continue
		}
		if d := pathing.Delta(c.path, c.oppProgress, c.members[i].Progress); d < behind {
			behind = d
			c.rear = c.members[i].Progress
		}
	}
}

// updateAttackTimer picks the member lined up closest to the opponent
// once the shared timer runs out. Nobody attacks while one already is.
func (c *Coordinator) updateAttackTimer(dt float64) {
	for i := range c.members {
		if c.members[i].joined && c.members[i].Attack != AttackInactive {
			return
		}
	}

	c.attackTimer = gamemath.MoveToward(c.attackTimer, 0, dt)
	if !gamemath.IsZeroApprox(c.attackTimer) {
		return
	}

	lateral := pathing.Lateral(c.path, c.oppProgress, c.opp.Position())
	closest := -1
	closestDelta := math.Inf(1)
	for i := range c.members {
		if !c.members[i].joined {
			continue
		}
		if d := math.Abs(lateral - c.members[i].Lateral); d < closestDelta {
			closest = i
			closestDelta = d
		}
	}
	if closest < 0 {
		return
	}
	m := &c.members[closest]
	if math.Abs(pathing.Delta(c.path, m.Progress, c.oppProgress)) > c.cfg.AttackOffset {
		return // Too far away to attack
	}
	c.StartAttack(Handle(closest))
	c.attackTimer = c.cfg.AttackInterval
}

// StartAttack begins a member's attack.
func (c *Coordinator) StartAttack(h Handle) {
	m := c.member(h)
	if m == nil || m.Attack != AttackInactive {
		return
	}
	m.Attack = AttackWindup
	m.attackElapsed = 0
}

// CancelAttack aborts a member's attack.
func (c *Coordinator) CancelAttack(h Handle) {
	if m := c.member(h); m != nil {
		m.Attack = AttackInactive
		m.attackElapsed = 0
	}
}

func (c *Coordinator) stepAttack(m *Member, dt float64) {
	if m.Attack == AttackInactive {
		return
	}
	m.attackElapsed += dt
	for m.Attack != AttackInactive && m.attackElapsed >= c.duration(m.Attack) {
		m.attackElapsed -= c.duration(m.Attack)
		m.Attack = (m.Attack + 1) % (AttackRecovery + 1)
	}
}

func (c *Coordinator) duration(s AttackState) float64 {
	switch s {
	case AttackWindup:
		return c.cfg.WindupTime
	case AttackCharge:
		return c.cfg.ChargeTime
	case AttackToss:
		return c.cfg.TossTime
	case AttackRecovery:
		return c.cfg.RecoveryTime
	}
	return 0
}

func (c *Coordinator) updateSpeed(m *Member, dt float64) {
	delta := pathing.Delta(c.path, m.Progress, c.oppProgress)

	if !gamemath.IsZeroApprox(c.hitTimer) {
		m.moveSpeed = gamemath.MoveToward(m.moveSpeed, 0, c.cfg.Friction*dt)
		m.rubberband = 0
		if math.Abs(delta) > c.cfg.AttackOffset {
			c.hitTimer = 0 // Start the chase again
		}
		return
	}

	if m.Attack != AttackInactive {
		m.moveSpeed = gamemath.Lerp(m.moveSpeed, c.opp.Speed()+math.Abs(delta), 0.25)
		return
	}

	target := gamemath.Clamp(c.opp.Speed()-c.cfg.SpeedDifference, 0, c.cfg.TopSpeed)
	if math.Abs(delta) > c.cfg.AttackOffset {
		target = c.cfg.TopSpeed - c.cfg.SpeedDifference
	}
	m.moveSpeed = gamemath.MoveToward(m.moveSpeed, target, c.cfg.Traction*dt)
	m.rubberband = (delta - c.cfg.PreferredOffset) * c.cfg.RubberbandStrength
}

// Enter and Exit report the opponent touching a member.
func (c *Coordinator) Enter(h Handle) {
	if m := c.member(h); m != nil {
		m.interacting = true
		m.tossed = false
	}
}

func (c *Coordinator) Exit(h Handle) {
	if m := c.member(h); m != nil {
		m.interacting = false
	}
}

// hitOpponent knocks the opponent forward. The toss launches it once per
// contact; every other state pushes it at the member's speed.
func (c *Coordinator) hitOpponent(m *Member) {
	c.hitTimer = c.cfg.HitWait
	c.attackTimer = c.cfg.AttackInterval

	forward := c.path.Basis(m.Progress).Forward
	if m.Attack == AttackToss {
		if m.tossed {
			return
		}
		c.opp.ApplyKnockback(opponent.KnockbackRequest{
			Direction:       forward,
			Speed:           c.cfg.TossSpeed,
			VerticalImpulse: c.cfg.TossLift,
			SuppressDamage:  opponent.BoostActive(c.opp),
		})
		m.tossed = true
		return
	}

	c.opp.ApplyKnockback(opponent.KnockbackRequest{
		Direction: forward,
		Speed:     m.Speed(&c.cfg),
	})
	m.tossed = false
}
