package components

import "github.com/yohamta/donburi"

// HealthData counts the hits the boss can still take.
type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()
