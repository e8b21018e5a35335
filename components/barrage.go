package components

import "github.com/yohamta/donburi"

type BarrageData struct {
	Enabled    bool
	Index      int     // Next pool slot to fire
	Timer      float64 // Until the next shot
	GroupReset bool    // Between groups, where a new group waits for range
	Fired      int     // Shots fired since respawn

	Pool []donburi.Entity
}

var Barrage = donburi.NewComponentType[BarrageData]()
