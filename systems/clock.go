package systems

import (
	"github.com/automoto/sandscorpion/archetypes"
	"github.com/automoto/sandscorpion/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = archetypes.Clock.Spawn(e)
	}
	return components.Clock.Get(entry)
}

// AdvanceClock starts a tick of dt seconds.
func AdvanceClock(e *ecs.ECS, dt float64) {
	c := GetOrCreateClock(e)
	c.Delta = dt
	c.Tick++
	c.Time += dt
}

func clockEntry(w donburi.World) (*components.ClockData, bool) {
	entry, ok := components.Clock.First(w)
	if !ok {
		return nil, false
	}
	return components.Clock.Get(entry), true
}

func delta(w donburi.World) float64 {
	if c, ok := clockEntry(w); ok {
		return c.Delta
	}
	return 0
}

// eachActing calls fn for every boss that has been activated and is not
// defeated. Entries are collected first since fn may add components.
func eachActing(w donburi.World, fn func(entry *donburi.Entry, s *components.ScorpionData)) {
	var acting []*donburi.Entry
	for entry := range components.Scorpion.Iter(w) {
		s := components.Scorpion.Get(entry)
		if !s.Active || s.Defeated || s.Path == nil || s.Opponent == nil {
			continue
		}
		acting = append(acting, entry)
	}
	for _, entry := range acting {
		if !entry.Valid() {
			continue
		}
		s := components.Scorpion.Get(entry)
		if s.Defeated {
			continue
		}
		fn(entry, s)
	}
}
