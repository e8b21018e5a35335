package systems

import (
	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/opponent"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnterRegion records the opponent entering one trigger volume of a region.
func EnterRegion(d *components.DamageData, r config.HitRegion) {
	if r < 0 || r >= config.RegionCount {
		return
	}
	d.Regions[r].Counter++
}

// ExitRegion records the opponent leaving one trigger volume of a region.
// Leaving the last volume ends the engagement and re-enables a spent region.
func ExitRegion(d *components.DamageData, r config.HitRegion) {
	if r < 0 || r >= config.RegionCount {
		return
	}
	region := &d.Regions[r]
	if region.Counter > 0 {
		region.Counter--
	}
	if region.Counter == 0 {
		region.Spent = false
	}
}

// UpdateDamage looks only at the highest priority active region of each
// boss. It resolves that region unless the region is already spent.
func UpdateDamage(e *ecs.ECS) {
	eachActing(e.World, func(entry *donburi.Entry, s *components.ScorpionData) {
		d := components.Damage.Get(entry)
		d.Resolved = false
		for _, r := range config.RegionPriority {
			if !d.Regions[r].Active() {
				continue
			}
			if d.Regions[r].Spent {
				return
			}
			d.LastHit = r
			d.Resolved = true
			resolveRegion(e.World, entry, s, r)
			return
		}
	})
}

func resolveRegion(w donburi.World, entry *donburi.Entry, s *components.ScorpionData, r config.HitRegion) {
	switch r {
	case config.RegionBack:
		resolveBack(w, entry, s)
	case config.RegionFront:
		resolveFront(w, entry, s)
	case config.RegionTailNear, config.RegionTailFar:
		resolveTail(w, entry, s, r)
	case config.RegionBody:
		resolveBody(w, entry, s)
	}
}

// resolveBack handles a homing strike on the eye on the boss's back: the
// heavy attack is cut short and the boss slides away.
func resolveBack(w donburi.World, entry *donburi.Entry, s *components.ScorpionData) {
	opp := s.Opponent
	if !opp.IsCounterMoveActive() {
		return
	}
	d := components.Damage.Get(entry)
	d.Regions[config.RegionBack].Spent = true

	FinishHeavyAttack(w, entry, true)
	takeDamage(w, entry, config.RegionBack)
	bounceOpponent(w, opp)

	// takeDamage may move the entry, fetch again
	components.Movement.Get(entry).Speed = s.Tuning.Damage.KnockbackSpeed
	components.Damage.Get(entry).State = config.DamageKnockback
	publish(w, Event{Kind: EventKnockback, Region: config.RegionBack})
}

// resolveFront handles contact with the flying eye.
func resolveFront(w donburi.World, entry *donburi.Entry, s *components.ScorpionData) {
	opp := s.Opponent
	if opponent.LockedOut(opp) || opponent.BoostActive(opp) {
		return
	}
	d := components.Damage.Get(entry)
	d.Regions[config.RegionFront].Spent = true

	if !opp.IsCounterMoveActive() {
		knockbackOpponent(w, entry, s, false)
		return
	}
	if !takeDamage(w, entry, config.RegionFront) {
		bounceOpponent(w, opp)
	}
}

// resolveTail handles a homing strike on one of the tail's traversal eyes.
// No damage is dealt; the boss is stunned until the opponent lands.
func resolveTail(w donburi.World, entry *donburi.Entry, s *components.ScorpionData, r config.HitRegion) {
	opp := s.Opponent
	if !opp.IsCounterMoveActive() {
		return
	}
	d := components.Damage.Get(entry)
	d.Regions[r].Armed = false // Until the next heavy attack
	d.State = config.DamageHitstun

	bounceOpponent(w, opp)
	publish(w, Event{Kind: EventRegionHit, Region: r})
	publish(w, Event{Kind: EventHitstun, Region: r})
}

// resolveBody knocks the opponent back on plain contact.
func resolveBody(w donburi.World, entry *donburi.Entry, s *components.ScorpionData) {
	opp := s.Opponent
	// The opponent's homing strike always takes priority
	if opp.IsCounterMoveActive() || opponent.LockedOut(opp) {
		return
	}
	d := components.Damage.Get(entry)
	if d.State == config.DamageKnockback {
		return
	}
	d.Regions[config.RegionBody].Spent = true

	suppress := false
	if b, ok := opp.(opponent.Booster); ok && b.IsBoostActive() {
		b.CancelBoost()
		suppress = true
	}
	knockbackOpponent(w, entry, s, suppress)
}

// takeDamage removes one point of health and reports whether the boss is
// now defeated. The DamageEvent is consumed by UpdateHealth.
func takeDamage(w donburi.World, entry *donburi.Entry, r config.HitRegion) bool {
	health := components.Health.Get(entry)
	if health.Current > 0 {
		health.Current--
	}
	current := health.Current
	if entry.HasComponent(components.DamageEvent) {
		dmg := components.DamageEvent.Get(entry)
		dmg.Amount++
		dmg.Region = r
	} else {
		donburi.Add(entry, components.DamageEvent, &components.DamageEventData{Amount: 1, Region: r})
	}
	publish(w, Event{Kind: EventRegionHit, Region: r, Health: current})

	if current == 0 {
		components.Scorpion.Get(entry).Defeated = true
		return true
	}
	return false
}

func bounceOpponent(w donburi.World, opp opponent.Proxy) {
	opp.ApplyBounce()
	publish(w, Event{Kind: EventOpponentBounced})
}

func knockbackOpponent(w donburi.World, entry *donburi.Entry, s *components.ScorpionData, suppressDamage bool) {
	m := components.Movement.Get(entry)
	opp := s.Opponent

	dir := opp.Position().Sub(m.Position).Flatten().Normalized()
	if dir.LengthSquared() == 0 {
		dir = s.Path.Basis(m.Progress).Forward.Scale(-1)
	}
	opp.ApplyKnockback(opponent.KnockbackRequest{
		Direction:       dir,
		Speed:           s.Tuning.Damage.OpponentKnockbackSpeed,
		VerticalImpulse: s.Tuning.Damage.OpponentKnockbackLift,
		SuppressDamage:  suppressDamage,
	})
	publish(w, Event{Kind: EventOpponentKnockedBack, Point: opp.Position()})
}

// UpdateHealth consumes the tick's DamageEvents.
func UpdateHealth(e *ecs.ECS) {
	var damaged []*donburi.Entry
	for entry := range components.DamageEvent.Iter(e.World) {
		damaged = append(damaged, entry)
	}

	for _, entry := range damaged {
		dmg := components.DamageEvent.Get(entry)
		health := components.Health.Get(entry)

		publish(e.World, Event{Kind: EventDamaged, Region: dmg.Region, Health: health.Current})
		if health.Current == 0 {
			publish(e.World, Event{Kind: EventDefeated, Health: 0})
		}
		donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
	}
}
