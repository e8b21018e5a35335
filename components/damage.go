package components

import (
	"github.com/automoto/sandscorpion/config"
	"github.com/yohamta/donburi"
)

// RegionState tracks the opponent's overlap with one hit region.
type RegionState struct {
	Counter int  // Overlapping trigger volumes
	Armed   bool // Region can be hit at all
	Spent   bool // Already resolved in this engagement, cleared when Counter returns to 0
}

// Active reports whether the opponent is touching the armed region. A spent
// region stays active and still blocks the regions below it.
func (r RegionState) Active() bool {
	return r.Counter > 0 && r.Armed
}

type DamageData struct {
	State    config.DamageState
	Regions  [config.RegionCount]RegionState
	LastHit  config.HitRegion
	Resolved bool // A region was resolved this tick
}

var Damage = donburi.NewComponentType[DamageData]()
