package systems

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/shared/pathing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActivation starts idle bosses, at once or when the opponent first
// moves if the tuning asks to wait for it.
func UpdateActivation(e *ecs.ECS) {
	components.Scorpion.Each(e.World, func(entry *donburi.Entry) {
		s := components.Scorpion.Get(entry)
		if s.Active || s.Defeated || s.Opponent == nil || s.Path == nil {
			return
		}
		if s.Tuning.Activation.AwaitOpponent && math.Abs(s.Opponent.Speed()) < 1e-5 {
			return
		}
		s.Active = true
		publish(e.World, Event{Kind: EventActivated})
	})
}

// ResetScorpion returns a boss to its spawn state. Every mutable field is
// written, so calling it twice in a row is the same as calling it once.
func ResetScorpion(w donburi.World, entry *donburi.Entry) {
	s := components.Scorpion.Get(entry)
	tuning := s.Tuning

	s.Active = false
	s.Defeated = false
	s.Rand = rand.New(rand.NewPCG(tuning.Seed, tuning.Seed^0x5ca1ab1e))

	health := components.Health.Get(entry)
	health.Max = tuning.Damage.MaxHealth
	health.Current = tuning.Damage.MaxHealth
	if entry.HasComponent(components.DamageEvent) {
		donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
	}

	m := components.Movement.Get(entry)
	*m = components.MovementData{
		Phase:         config.PhaseOne,
		PhaseRotation: math.Pi,
		SpeedRatio:    1,
	}
	if s.Path != nil {
		m.Progress = pathing.Wrap(s.Path, tuning.Movement.StartingProgress)
		m.Position = s.Path.Position(m.Progress)
		m.Facing = s.Path.Basis(m.Progress).Forward.Yaw()
	}

	a := components.Attack.Get(entry)
	*a = components.AttackData{
		Cooldown: tuning.Attack.PhaseOneInterval,
		Lean:     1,
	}

	eye := components.Eye.Get(entry)
	*eye = components.EyeData{}
	eye.Position = m.Position
	eye.Target = m.Position

	d := components.Damage.Get(entry)
	*d = components.DamageData{}
	d.Regions[config.RegionBody].Armed = true
	d.Regions[config.RegionBack].Armed = true

	b := components.Barrage.Get(entry)
	b.Index = 0
	b.Fired = 0
	b.GroupReset = true
	b.Timer = tuning.Barrage.InitialDelay

	if entry.HasComponent(components.Sensor) {
		releaseSensor(components.Sensor.Get(entry), tuning.Sensor.Extent)
	}
	ReleaseProjectiles(w, entry)
}

// ReleaseProjectiles checks every pooled missile of a boss back in.
func ReleaseProjectiles(w donburi.World, entry *donburi.Entry) {
	for _, id := range components.Barrage.Get(entry).Pool {
		if !w.Valid(id) {
			continue
		}
		p := components.Projectile.Get(w.Entry(id))
		p.Active = false
		p.Elapsed = 0
	}
}

// DestroyScorpion removes a boss and its projectile pool from the world.
func DestroyScorpion(w donburi.World, entry *donburi.Entry) {
	b := components.Barrage.Get(entry)
	for _, id := range b.Pool {
		if w.Valid(id) {
			w.Remove(id)
		}
	}
	b.Pool = nil
	w.Remove(entry.Entity())
}
