package scenes

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/opponent"
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/pathing"
	"github.com/automoto/sandscorpion/shared/preview"
	"github.com/automoto/sandscorpion/systems"
	"github.com/automoto/sandscorpion/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

var (
	ErrNoPath     = errors.New("encounter needs a path")
	ErrNoOpponent = errors.New("encounter needs an opponent")
)

// ProjectileSnapshot is one pooled missile.
type ProjectileSnapshot struct {
	Slot     int
	Active   bool
	Position gamemath.Vec3
}

// Snapshot is the committed state of an encounter at the end of a tick.
// It is never modified after being published.
type Snapshot struct {
	Tick int
	Time float64

	Active   bool
	Defeated bool
	Health   int
	Max      int

	Phase         config.MovementPhase
	PhaseBlend    float64
	PhaseRotation float64
	Damage        config.DamageState

	Progress   float64
	Speed      float64
	Distance   float64
	SpeedRatio float64
	Moving     bool
	Position   gamemath.Vec3
	Facing     float64

	Attacking bool
	Attack    config.AttackKind
	Side      int
	Striking  bool
	Lean      float64

	EyeBlend    float64
	EyePosition gamemath.Vec3
	EyeFacing   float64

	Armed [config.RegionCount]bool

	Projectiles []ProjectileSnapshot
}

// Encounter owns one boss fight: its world, its systems and the boss with
// its missile pool. Tick, Respawn and the region calls must come from one
// goroutine; Snapshot may be read from any.
type Encounter struct {
	ecs      *ecs.ECS
	scorpion *donburi.Entry
	tuning   *config.ScorpionConfig

	snapshot    atomic.Pointer[Snapshot]
	subscribers []func(systems.Event)
	unloaded    bool
}

// NewEncounter validates the tuning and builds the encounter. A nil tuning
// uses the defaults.
func NewEncounter(tuning *config.ScorpionConfig, path pathing.Path, opp opponent.Proxy) (*Encounter, error) {
	if path == nil {
		return nil, ErrNoPath
	}
	if opp == nil {
		return nil, ErrNoOpponent
	}
	if tuning == nil {
		tuning = config.Scorpion.Clone()
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("encounter tuning: %w", err)
	}

	enc := &Encounter{tuning: tuning}
	enc.configure(path, opp)
	return enc, nil
}

func (enc *Encounter) configure(path pathing.Path, opp opponent.Proxy) {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Order matters: a hit resolved this tick is seen by movement and
	// combat in the same tick
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateActivation))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHitSensors))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDamage))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHealth))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMovement))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhase))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBarrage))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))

	enc.ecs = ecs
	systems.GetOrCreateClock(ecs)
	systems.GetOrCreatePause(ecs)
	systems.Events.Subscribe(ecs.World, enc.dispatch)

	enc.scorpion = factory.CreateScorpion(ecs, enc.tuning, path, opp)
	enc.publishSnapshot()
}

func (enc *Encounter) dispatch(w donburi.World, e systems.Event) {
	for _, fn := range enc.subscribers {
		fn(e)
	}
}

// Subscribe registers fn for every event. Events are delivered at the end
// of the tick that raised them, in the order they were raised.
func (enc *Encounter) Subscribe(fn func(systems.Event)) {
	enc.subscribers = append(enc.subscribers, fn)
}

// Tick advances the encounter by dt seconds.
func (enc *Encounter) Tick(dt float64) {
	if enc.unloaded || dt <= 0 {
		return
	}
	systems.AdvanceClock(enc.ecs, dt)
	enc.ecs.Update()
	events.ProcessAllEvents(enc.ecs.World)
	enc.publishSnapshot()
}

// Respawn puts the boss back in its spawn state and checks every missile
// back in.
func (enc *Encounter) Respawn() {
	if enc.unloaded {
		return
	}
	systems.ResetScorpion(enc.ecs.World, enc.scorpion)
	systems.Events.Publish(enc.ecs.World, systems.Event{Kind: systems.EventRespawned, Tick: enc.Clock().Tick})
	events.ProcessAllEvents(enc.ecs.World)
	enc.publishSnapshot()
}

// Unload removes the boss and its missiles. The encounter is unusable
// afterwards and Snapshot returns nil.
func (enc *Encounter) Unload() {
	if enc.unloaded {
		return
	}
	systems.DestroyScorpion(enc.ecs.World, enc.scorpion)
	enc.scorpion = nil
	enc.subscribers = nil
	enc.unloaded = true
	enc.snapshot.Store(nil)
}

// Snapshot returns the state committed by the last tick.
func (enc *Encounter) Snapshot() *Snapshot {
	return enc.snapshot.Load()
}

// Clock returns the encounter clock.
func (enc *Encounter) Clock() components.ClockData {
	return *systems.GetOrCreateClock(enc.ecs)
}

// SetPaused stops or resumes every gameplay system.
func (enc *Encounter) SetPaused(paused bool) {
	systems.GetOrCreatePause(enc.ecs).IsPaused = paused
}

// EnterRegion reports the opponent entering a trigger volume of r.
func (enc *Encounter) EnterRegion(r config.HitRegion) {
	if enc.unloaded {
		return
	}
	systems.EnterRegion(components.Damage.Get(enc.scorpion), r)
}

// ExitRegion reports the opponent leaving a trigger volume of r.
func (enc *Encounter) ExitRegion(r config.HitRegion) {
	if enc.unloaded {
		return
	}
	systems.ExitRegion(components.Damage.Get(enc.scorpion), r)
}

// FinishHeavyAttack is the heavy attack completion signal.
func (enc *Encounter) FinishHeavyAttack(forced bool) {
	if enc.unloaded {
		return
	}
	systems.FinishHeavyAttack(enc.ecs.World, enc.scorpion, forced)
}

// StartStrike, StopStrike and FinishAttack let an animation driver replace
// the built-in attack timelines.
func (enc *Encounter) StartStrike() {
	if !enc.unloaded {
		systems.StartStrike(enc.ecs.World, enc.scorpion)
	}
}

func (enc *Encounter) StopStrike() {
	if !enc.unloaded {
		systems.StopStrike(enc.ecs.World, enc.scorpion)
	}
}

func (enc *Encounter) FinishAttack() {
	if !enc.unloaded {
		systems.FinishAttack(enc.ecs.World, enc.scorpion)
	}
}

// ApplyTuning swaps the tuning between ticks. Health and the missile pool
// keep their size until the next encounter is built.
func (enc *Encounter) ApplyTuning(tuning *config.ScorpionConfig) error {
	if enc.unloaded {
		return nil
	}
	if err := tuning.Validate(); err != nil {
		return fmt.Errorf("apply tuning: %w", err)
	}
	if tuning.Barrage.MaxProjectiles != enc.tuning.Barrage.MaxProjectiles {
		log.Printf("Warning: missile pool size change to %d ignored until reload", tuning.Barrage.MaxProjectiles)
	}

	enc.tuning = tuning
	components.Scorpion.Get(enc.scorpion).Tuning = tuning
	if enc.scorpion.HasComponent(components.Sensor) {
		components.Sensor.SetValue(enc.scorpion, systems.NewSensor(&tuning.Sensor))
		// Overlaps are rediscovered against the new volumes
		d := components.Damage.Get(enc.scorpion)
		for r := range d.Regions {
			d.Regions[r].Counter = 0
			d.Regions[r].Spent = false
		}
	}
	return nil
}

// PreviewRegions returns the hit volumes around the boss in world space.
func (enc *Encounter) PreviewRegions() []preview.Region {
	if enc.unloaded {
		return nil
	}
	s := components.Scorpion.Get(enc.scorpion)
	m := components.Movement.Get(enc.scorpion)
	d := components.Damage.Get(enc.scorpion)
	basis := s.Path.Basis(m.Progress)

	regions := make([]preview.Region, 0, config.RegionCount)
	for r := config.HitRegion(0); r < config.RegionCount; r++ {
		rect := s.Tuning.Sensor.RegionRect(r)
		origin := m.Position
		if r == config.RegionFront {
			origin = components.Eye.Get(enc.scorpion).Position
		}
		center := origin.Add(basis.Right.Scale(rect.Lateral)).Add(basis.Forward.Scale(rect.Along))
		regions = append(regions, preview.Region{
			Name:   r.String(),
			Center: center,
			Width:  rect.Width,
			Length: rect.Length,
			Armed:  d.Regions[r].Armed,
		})
	}
	return regions
}

func (enc *Encounter) publishSnapshot() {
	entry := enc.scorpion
	s := components.Scorpion.Get(entry)
	health := components.Health.Get(entry)
	m := components.Movement.Get(entry)
	a := components.Attack.Get(entry)
	eye := components.Eye.Get(entry)
	d := components.Damage.Get(entry)
	clock := enc.Clock()

	snap := &Snapshot{
		Tick:          clock.Tick,
		Time:          clock.Time,
		Active:        s.Active,
		Defeated:      s.Defeated,
		Health:        health.Current,
		Max:           health.Max,
		Phase:         m.Phase,
		PhaseBlend:    m.PhaseBlend,
		PhaseRotation: m.PhaseRotation,
		Damage:        d.State,
		Progress:      m.Progress,
		Speed:         m.Speed,
		Distance:      m.Distance,
		SpeedRatio:    m.SpeedRatio,
		Moving:        m.Moving,
		Position:      m.Position,
		Facing:        m.Facing,
		Attacking:     a.Attacking,
		Attack:        a.Kind,
		Side:          a.Side,
		Striking:      a.Striking,
		Lean:          a.Lean,
		EyeBlend:      eye.Blend,
		EyePosition:   eye.Position,
		EyeFacing:     eye.Facing,
	}
	for r := range d.Regions {
		snap.Armed[r] = d.Regions[r].Armed
	}

	w := enc.ecs.World
	for _, id := range components.Barrage.Get(entry).Pool {
		if !w.Valid(id) {
			continue
		}
		p := components.Projectile.Get(w.Entry(id))
		snap.Projectiles = append(snap.Projectiles, ProjectileSnapshot{
			Slot:     p.Slot,
			Active:   p.Active,
			Position: p.Position,
		})
	}
	enc.snapshot.Store(snap)
}
