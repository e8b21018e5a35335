package systems

import (
	"math"

	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat runs the melee and eye attack state machine.
func UpdateCombat(e *ecs.ECS) {
	dt := delta(e.World)
	eachActing(e.World, func(entry *donburi.Entry, s *components.ScorpionData) {
		updateCombat(e.World, entry, s, dt)
	})
}

func updateCombat(w donburi.World, entry *donburi.Entry, s *components.ScorpionData, dt float64) {
	a := components.Attack.Get(entry)
	// Damage states suspend the machine, forced finishes still go through
	if components.Damage.Get(entry).State != config.DamageNone {
		return
	}

	if a.Attacking {
		switch a.Kind {
		case config.AttackLight:
			updateLean(entry, s)
			stepTimeline(w, entry, s, dt)
		case config.AttackHeavy:
			stepTimeline(w, entry, s, dt)
		case config.AttackEye:
			updateEyeAttack(w, entry, s, dt)
		}
		return
	}

	if a.Recovery > 0 {
		a.Recovery = math.Max(0, a.Recovery-dt)
		return
	}

	m := components.Movement.Get(entry)
	if m.Distance > s.Tuning.Movement.AttackDistance || components.Barrage.Get(entry).Index != 0 {
		return
	}

	a.Cooldown -= dt
	if a.Cooldown >= 0 {
		return
	}

	switch {
	case m.Phase == config.PhaseTwo:
		a.Cooldown = s.Tuning.Attack.PhaseTwoInterval
		startEyeAttack(w, entry, s)
	case a.Counter < s.Tuning.Attack.LightAttackCap:
		a.Cooldown = s.Tuning.Attack.PhaseOneInterval
		a.Counter++
		startAttack(w, entry, s, config.AttackLight)
	default:
		a.Cooldown = s.Tuning.Attack.PhaseOneInterval
		a.Counter = 0
		startAttack(w, entry, s, config.AttackHeavy)
	}
}

func startAttack(w donburi.World, entry *donburi.Entry, s *components.ScorpionData, kind config.AttackKind) {
	a := components.Attack.Get(entry)
	a.Attacking = true
	a.Kind = kind
	a.Striking = false
	a.Elapsed = 0
	a.Side = AttackSide(OpponentLateral(s.Path, s.Opponent))

	if kind == config.AttackHeavy {
		d := components.Damage.Get(entry)
		d.Regions[config.RegionTailNear].Armed = true
		d.Regions[config.RegionTailFar].Armed = true
	}
	publish(w, Event{Kind: EventAttackStarted, Attack: kind, Side: a.Side})
}

// updateLean bends the light attack towards the opponent until the strike
// opens. An opponent on the attacking side straightens the tail.
func updateLean(entry *donburi.Entry, s *components.ScorpionData) {
	a := components.Attack.Get(entry)
	if a.Striking {
		return
	}
	pos := OpponentLateral(s.Path, s.Opponent)
	if (a.Side == config.SideLeft && pos < 0) || (a.Side == config.SideRight && pos > 0) {
		pos = 0
	}
	width := s.Tuning.Attack.LeanWidth
	if width <= 0 {
		width = 1
	}
	pos = 2*-math.Abs(pos/width) + 1
	a.Lean = gamemath.Lerp(a.Lean, pos, s.Tuning.Attack.LeanRate)
}

// stepTimeline stands in for attack animations: the strike opens after the
// windup and closes after the strike time. Light attacks then finish after
// their recovery; heavy attacks ask to finish each tick until allowed.
func stepTimeline(w donburi.World, entry *donburi.Entry, s *components.ScorpionData, dt float64) {
	t := &s.Tuning.Attack
	if !t.Timeline {
		return
	}
	a := components.Attack.Get(entry)

	windup, strike, recovery := t.LightWindup, t.LightStrike, t.LightRecovery
	if a.Kind == config.AttackHeavy {
		windup, strike, recovery = t.HeavyWindup, t.HeavyStrike, 0
	}

	prev := a.Elapsed
	a.Elapsed += dt
	if prev < windup && a.Elapsed >= windup {
		StartStrike(w, entry)
	}
	if prev < windup+strike && a.Elapsed >= windup+strike {
		StopStrike(w, entry)
	}
	if a.Elapsed >= windup+strike+recovery {
		FinishAttack(w, entry)
	}
}

// StartStrike opens the damaging part of the current attack.
func StartStrike(w donburi.World, entry *donburi.Entry) {
	a := components.Attack.Get(entry)
	if !a.Attacking || a.Striking {
		return
	}
	a.Striking = true
	if a.Kind == config.AttackLight {
		a.Side = config.SideNone
	}
	publish(w, Event{Kind: EventStrikeStarted, Attack: a.Kind, Side: a.Side})
}

// StopStrike closes the damaging part of the current attack.
func StopStrike(w donburi.World, entry *donburi.Entry) {
	a := components.Attack.Get(entry)
	if !a.Striking {
		return
	}
	a.Striking = false
	publish(w, Event{Kind: EventStrikeStopped, Attack: a.Kind})
}

// FinishAttack is the completion signal of the current attack. Heavy attacks
// go through FinishHeavyAttack and may refuse.
func FinishAttack(w donburi.World, entry *donburi.Entry) {
	a := components.Attack.Get(entry)
	if !a.Attacking {
		return
	}
	if a.Kind == config.AttackHeavy {
		FinishHeavyAttack(w, entry, false)
		return
	}
	endAttack(w, entry)
}

// FinishHeavyAttack ends a heavy attack. Unless forced it is refused while
// the boss is stunned or the opponent is mid counter move. Without a heavy
// attack in progress it does nothing.
func FinishHeavyAttack(w donburi.World, entry *donburi.Entry, forced bool) {
	a := components.Attack.Get(entry)
	if !a.Attacking || a.Kind != config.AttackHeavy {
		return
	}
	if !forced {
		s := components.Scorpion.Get(entry)
		if components.Damage.Get(entry).State == config.DamageHitstun {
			return
		}
		if s.Opponent != nil && s.Opponent.IsCounterMoveActive() {
			return
		}
	}
	StopStrike(w, entry)

	d := components.Damage.Get(entry)
	d.Regions[config.RegionTailNear].Armed = false
	d.Regions[config.RegionTailFar].Armed = false

	endAttack(w, entry)
	a.Recovery = components.Scorpion.Get(entry).Tuning.Attack.HeavyRecovery
}

func endAttack(w donburi.World, entry *donburi.Entry) {
	a := components.Attack.Get(entry)
	kind := a.Kind
	if kind == config.AttackEye {
		resetEye(entry)
	}

	a.Attacking = false
	a.Kind = config.AttackNone
	a.Side = config.SideNone
	a.Striking = false
	a.Elapsed = 0
	publish(w, Event{Kind: EventAttackFinished, Attack: kind})
}
