package components

import "github.com/yohamta/donburi"

// PauseData stops gameplay systems while set.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
