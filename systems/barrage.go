package systems

import (
	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/trajectory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBarrage fires the missile barrage: one shot per Interval until the
// pool is spent, then a GroupInterval pause. A new group is held back while
// the opponent is inside attack distance.
func UpdateBarrage(e *ecs.ECS) {
	dt := delta(e.World)
	eachActing(e.World, func(entry *donburi.Entry, s *components.ScorpionData) {
		b := components.Barrage.Get(entry)
		if !b.Enabled || !s.Tuning.Barrage.Enabled || len(b.Pool) == 0 || len(s.Tuning.Barrage.Emitters) == 0 {
			return
		}
		m := components.Movement.Get(entry)
		if b.GroupReset && m.Distance < s.Tuning.Movement.AttackDistance {
			return
		}

		b.Timer = gamemath.MoveToward(b.Timer, 0, dt)
		if b.Timer > 0 {
			return
		}

		fireMissile(e.World, entry, s, b.Index)
		b.GroupReset = false
		b.Index++
		b.Timer = s.Tuning.Barrage.Interval
		if b.Index >= len(b.Pool) {
			b.Index = 0
			b.Timer = s.Tuning.Barrage.GroupInterval
			b.GroupReset = true
		}
	})
}

func fireMissile(w donburi.World, entry *donburi.Entry, s *components.ScorpionData, slot int) {
	b := components.Barrage.Get(entry)
	if !w.Valid(b.Pool[slot]) {
		return
	}
	tuning := &s.Tuning.Barrage
	m := components.Movement.Get(entry)

	emitter := tuning.Emitters[0]
	if s.Rand != nil && len(tuning.Emitters) > 1 {
		emitter = tuning.Emitters[s.Rand.IntN(len(tuning.Emitters))]
	}
	basis := s.Path.Basis(m.Progress)
	spawn := m.Position.
		Add(basis.Right.Scale(emitter.Lateral)).
		Add(basis.Up.Scale(emitter.Height)).
		Add(basis.Forward.Scale(emitter.Along))

	target := PredictTarget(s.Path, s.Opponent, s.Rand, Aim{
		Slot:    slot,
		Slots:   len(b.Pool),
		Spread:  tuning.Spread,
		LeadMin: tuning.PredictMin,
		LeadMax: tuning.PredictMax,
	})

	p := components.Projectile.Get(w.Entry(b.Pool[slot]))
	p.Active = true
	p.Elapsed = 0
	p.Trajectory = trajectory.FromPoints(spawn, target, tuning.ArcHeight, false, tuning.Gravity)
	p.Position = spawn

	b.Fired++
	publish(w, Event{Kind: EventMissileFired, Slot: slot, Point: target})
}
