package components

import (
	"github.com/automoto/sandscorpion/config"
	"github.com/yohamta/donburi"
)

// DamageEventData is attached to the boss for the tick a weak point is hit.
type DamageEventData struct {
	Amount int
	Region config.HitRegion
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
