package systems

import (
	"testing"

	"github.com/automoto/sandscorpion/archetypes"
	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/opponent"
	"github.com/automoto/sandscorpion/shared/pathing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

const testDelta = 1.0 / 60

type harness struct {
	ecs    *ecs.ECS
	entry  *donburi.Entry
	opp    *opponent.Puppet
	path   pathing.Path
	tuning *config.ScorpionConfig
	events []Event
}

// newHarness builds one boss on a long straight track with the opponent
// standing at progress 0. Sensor and barrage are off unless tune turns
// them on.
func newHarness(t *testing.T, tune func(c *config.ScorpionConfig)) *harness {
	t.Helper()
	tuning := config.Scorpion.Clone()
	tuning.Sensor.Enabled = false
	tuning.Barrage.Enabled = false
	if tune != nil {
		tune(tuning)
	}

	path := pathing.Line(1000)
	h := &harness{
		ecs:    ecs.NewECS(donburi.NewWorld()),
		opp:    opponent.NewPuppet(path, 0),
		path:   path,
		tuning: tuning,
	}
	GetOrCreateClock(h.ecs)
	GetOrCreatePause(h.ecs)
	Events.Subscribe(h.ecs.World, func(w donburi.World, e Event) {
		h.events = append(h.events, e)
	})

	var extra []donburi.IComponentType
	if tuning.Sensor.Enabled {
		extra = append(extra, components.Sensor)
	}
	h.entry = archetypes.Scorpion.Spawn(h.ecs, extra...)
	components.Scorpion.SetValue(h.entry, components.ScorpionData{
		Tuning:   tuning,
		Path:     path,
		Opponent: h.opp,
	})
	if tuning.Sensor.Enabled {
		components.Sensor.SetValue(h.entry, NewSensor(&tuning.Sensor))
	}

	barrage := components.BarrageData{Enabled: tuning.Barrage.Enabled}
	if tuning.Barrage.Enabled {
		for i := 0; i < tuning.Barrage.MaxProjectiles; i++ {
			missile := archetypes.Projectile.Spawn(h.ecs)
			components.Projectile.SetValue(missile, components.ProjectileData{
				Owner: h.entry.Entity(),
				Slot:  i,
			})
			barrage.Pool = append(barrage.Pool, missile.Entity())
		}
	}
	components.Barrage.SetValue(h.entry, barrage)

	ResetScorpion(h.ecs.World, h.entry)
	return h
}

// tick runs every gameplay system once, in encounter order.
func (h *harness) tick(dt float64) {
	AdvanceClock(h.ecs, dt)
	UpdateActivation(h.ecs)
	UpdateHitSensors(h.ecs)
	UpdateDamage(h.ecs)
	UpdateHealth(h.ecs)
	UpdateMovement(h.ecs)
	UpdatePhase(h.ecs)
	UpdateCombat(h.ecs)
	UpdateBarrage(h.ecs)
	UpdateProjectiles(h.ecs)
	events.ProcessAllEvents(h.ecs.World)
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.tick(testDelta)
	}
}

func (h *harness) flush() {
	events.ProcessAllEvents(h.ecs.World)
}

func (h *harness) activate() *components.ScorpionData {
	s := components.Scorpion.Get(h.entry)
	s.Active = true
	return s
}

func (h *harness) scorpion() *components.ScorpionData {
	return components.Scorpion.Get(h.entry)
}

func (h *harness) count(kind EventKind) int {
	n := 0
	for _, e := range h.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (h *harness) movement() *components.MovementData {
	return components.Movement.Get(h.entry)
}

func (h *harness) attack() *components.AttackData {
	return components.Attack.Get(h.entry)
}

func (h *harness) damage() *components.DamageData {
	return components.Damage.Get(h.entry)
}

func (h *harness) barrage() *components.BarrageData {
	return components.Barrage.Get(h.entry)
}

func (h *harness) health() *components.HealthData {
	return components.Health.Get(h.entry)
}
