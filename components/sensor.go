package components

import (
	"github.com/automoto/sandscorpion/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SensorData is the boss's private overlap space. It is laid out in boss
// space with the boss at the centre.
type SensorData struct {
	Space    *resolv.Space
	Regions  [config.RegionCount]*resolv.Object
	Opponent *resolv.Object
	Inside   [config.RegionCount]bool
}

var Sensor = donburi.NewComponentType[SensorData]()
