package systems

import (
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventKind identifies an encounter event.
type EventKind int

const (
	EventActivated EventKind = iota
	EventAttackStarted
	EventStrikeStarted
	EventStrikeStopped
	EventAttackFinished
	EventMissileFired
	EventMissileLanded
	EventOpponentKnockedBack
	EventOpponentBounced
	EventRegionHit
	EventDamaged
	EventHitstun
	EventKnockback
	EventRecovered
	EventPhaseTwo
	EventDefeated
	EventRespawned
)

var eventNames = [...]string{
	EventActivated:           "activated",
	EventAttackStarted:       "attack-started",
	EventStrikeStarted:       "strike-started",
	EventStrikeStopped:       "strike-stopped",
	EventAttackFinished:      "attack-finished",
	EventMissileFired:        "missile-fired",
	EventMissileLanded:       "missile-landed",
	EventOpponentKnockedBack: "opponent-knocked-back",
	EventOpponentBounced:     "opponent-bounced",
	EventRegionHit:           "region-hit",
	EventDamaged:             "damaged",
	EventHitstun:             "hitstun",
	EventKnockback:           "knockback",
	EventRecovered:           "recovered",
	EventPhaseTwo:            "phase-two",
	EventDefeated:            "defeated",
	EventRespawned:           "respawned",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is published to the encounter's outbound queue and delivered to
// subscribers once per tick.
type Event struct {
	Kind   EventKind
	Tick   int
	Attack config.AttackKind
	Side   int
	Region config.HitRegion
	Slot   int
	Health int
	Point  gamemath.Vec3
}

var Events = events.NewEventType[Event]()

func publish(w donburi.World, e Event) {
	if c, ok := clockEntry(w); ok {
		e.Tick = c.Tick
	}
	Events.Publish(w, e)
}
