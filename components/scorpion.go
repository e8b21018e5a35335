package components

import (
	"math/rand/v2"

	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/opponent"
	"github.com/automoto/sandscorpion/shared/pathing"
	"github.com/yohamta/donburi"
)

type ScorpionData struct {
	Tuning   *config.ScorpionConfig // Cached reference to the encounter tuning
	Path     pathing.Path
	Opponent opponent.Proxy
	Rand     *rand.Rand

	Active   bool // Set once the opponent first moves, or at once without the activation gate
	Defeated bool
}

var Scorpion = donburi.NewComponentType[ScorpionData]()
