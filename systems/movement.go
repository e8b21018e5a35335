package systems

import (
	"math"

	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/pathing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PathDistance is how far the boss is ahead of the opponent after both take
// one more step of dt. On a closed path a boss that is behind is treated as
// a full lap ahead, so the result is never negative there.
func PathDistance(path pathing.Path, bossProgress, bossSpeed, oppProgress, oppSpeed, dt float64) float64 {
	boss := bossProgress + bossSpeed*dt
	opp := oppProgress + oppSpeed*dt
	if path.Closed() {
		boss = pathing.Wrap(path, boss)
		opp = pathing.Wrap(path, opp)
		if boss < opp {
			boss += path.Length()
		}
	}
	return boss - opp
}

// SpeedFactor maps the distance to the opponent onto a fraction of top
// speed. Closer than the retreat distance the boss flees, reaching full
// speed at the chase distance and beyond it when closer still. Past the
// advance distance it backs up towards the opponent.
func SpeedFactor(distance float64, m *config.MovementConfig) float64 {
	if distance < m.RetreatDistance {
		span := m.RetreatDistance - m.ChaseDistance
		if span <= 0 {
			return 1
		}
		return 1 - (distance-m.ChaseDistance)/span
	}
	return -gamemath.Clamp((distance-m.AdvanceDistance)*m.BackpedalFactor, 0, 1)
}

// UpdateMovement smooths the boss's speed towards the target of the current
// distance band and moves it along the path.
func UpdateMovement(e *ecs.ECS) {
	dt := delta(e.World)
	if dt <= 0 {
		return
	}
	eachActing(e.World, func(entry *donburi.Entry, s *components.ScorpionData) {
		updateMovement(e.World, entry, s, dt)
	})
}

func updateMovement(w donburi.World, entry *donburi.Entry, s *components.ScorpionData, dt float64) {
	m := components.Movement.Get(entry)
	d := components.Damage.Get(entry)
	a := components.Attack.Get(entry)
	tuning := &s.Tuning.Movement
	opp := s.Opponent

	m.Distance = PathDistance(s.Path, m.Progress, m.Speed, opp.Progress(), opp.Speed(), dt)

	switch {
	case d.State != config.DamageNone && m.Phase == config.PhaseOne:
		m.Speed = gamemath.SmoothDamp(m.Speed, 0, &m.SpeedVelocity, tuning.HitstunFriction, dt)
		recoverFromDamage(w, entry, s)

	case m.Distance >= tuning.RetreatDistance && m.Distance <= tuning.AdvanceDistance:
		// Comfortable range, hold position
		m.Speed = gamemath.SmoothDamp(m.Speed, 0, &m.SpeedVelocity, tuning.Friction, dt)

	case a.Striking && m.Distance < tuning.AttackDistance && m.Phase == config.PhaseOne:
		// Match the strike distance for consistent attacks
		gap := m.Distance - tuning.StrikeDistance
		target := gamemath.Clamp(m.Speed-gap, 0, tuning.TopSpeed)
		m.Speed = gamemath.SmoothDamp(m.Speed, target, &m.SpeedVelocity, tuning.StrikeTraction*dt, dt)

	default:
		target := tuning.TopSpeed * SpeedFactor(m.Distance, tuning)
		m.Speed = gamemath.SmoothDamp(m.Speed, target, &m.SpeedVelocity, tuning.Traction, dt)
	}

	// Phase two never slides, so a damage state set by this tick's hit clears
	// before the boss moves
	if d.State != config.DamageNone && m.Phase == config.PhaseTwo {
		recoverFromDamage(w, entry, s)
	}

	m.Progress = pathing.Wrap(s.Path, m.Progress+m.Speed*dt)
	m.Position = s.Path.Position(m.Progress)

	m.SpeedRatio = 1
	if tuning.TopSpeed > 0 {
		m.SpeedRatio = 1 + m.Speed/tuning.TopSpeed*tuning.SpeedRatioScale
	}
	if d.State == config.DamageKnockback {
		m.SpeedRatio = 0
	}
	m.Moving = math.Abs(m.Speed) > tuning.IdleSpeed
}

// recoverFromDamage ends knockback once the slide has slowed, entering phase
// two when health is low, and ends hitstun once the opponent has landed.
func recoverFromDamage(w donburi.World, entry *donburi.Entry, s *components.ScorpionData) {
	d := components.Damage.Get(entry)
	m := components.Movement.Get(entry)

	switch d.State {
	case config.DamageKnockback:
		if m.Phase == config.PhaseOne && math.Abs(m.Speed) >= s.Tuning.Damage.KnockbackRecoverSpeed {
			return
		}
		if components.Health.Get(entry).Current <= s.Tuning.Damage.PhaseTwoHealth {
			EnterPhaseTwo(w, entry)
		}
	case config.DamageHitstun:
		if !s.Opponent.IsGrounded() {
			return
		}
		FinishHeavyAttack(w, entry, true)
	default:
		return
	}
	d.State = config.DamageNone
	publish(w, Event{Kind: EventRecovered})
}

// EnterPhaseTwo switches the boss to its second phase. It never switches back.
func EnterPhaseTwo(w donburi.World, entry *donburi.Entry) {
	m := components.Movement.Get(entry)
	if m.Phase == config.PhaseTwo {
		return
	}
	m.Phase = config.PhaseTwo
	publish(w, Event{Kind: EventPhaseTwo, Health: components.Health.Get(entry).Current})
}
