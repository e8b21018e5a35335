package systems

import (
	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/opponent"
	"github.com/automoto/sandscorpion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles flies checked out missiles along their arcs and checks
// them back in on landing.
func UpdateProjectiles(e *ecs.ECS) {
	dt := delta(e.World)
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if !p.Active {
			return
		}
		if !p.Trajectory.IsFinished(p.Elapsed, dt) {
			p.Elapsed += dt
			p.Position = p.Trajectory.Position(p.Elapsed)
			return
		}

		p.Elapsed = p.Trajectory.TotalTime()
		p.Position = p.Trajectory.End()
		p.Active = false
		publish(e.World, Event{Kind: EventMissileLanded, Slot: p.Slot, Point: p.Position})

		if e.World.Valid(p.Owner) {
			blast(e.World, e.World.Entry(p.Owner), p)
		}
	})
}

// blast knocks the opponent away from a landing inside the blast radius.
func blast(w donburi.World, owner *donburi.Entry, p *components.ProjectileData) {
	if !owner.HasComponent(components.Scorpion) {
		return
	}
	s := components.Scorpion.Get(owner)
	if s.Opponent == nil || s.Defeated || s.Tuning.Barrage.BlastRadius <= 0 {
		return
	}
	opp := s.Opponent
	away := opp.Position().Sub(p.Position).Flatten()
	if away.Length() > s.Tuning.Barrage.BlastRadius {
		return
	}
	dir := away.Normalized()
	if dir.LengthSquared() == 0 {
		dir = opp.Heading().Flatten().Normalized().Scale(-1)
	}
	opp.ApplyKnockback(opponent.KnockbackRequest{
		Direction:       dir,
		Speed:           s.Tuning.Damage.OpponentKnockbackSpeed,
		VerticalImpulse: s.Tuning.Damage.OpponentKnockbackLift,
	})
	publish(w, Event{Kind: EventOpponentKnockedBack, Slot: p.Slot, Point: opp.Position()})
}
