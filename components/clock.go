package components

import "github.com/yohamta/donburi"

type ClockData struct {
	Delta float64 // Seconds in the current tick
	Tick  int
	Time  float64
}

var Clock = donburi.NewComponentType[ClockData]()
