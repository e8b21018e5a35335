package components

import (
	"github.com/automoto/sandscorpion/config"
	"github.com/yohamta/donburi"
)

type AttackData struct {
	Attacking bool
	Kind      config.AttackKind
	Side      int // config.SideLeft, config.SideRight, or config.SideNone once striking
	Striking  bool

	Cooldown float64 // Counts down while idle in range
	Counter  int     // Light attacks since the last heavy one
	Elapsed  float64 // Time since the attack started, drives the built-in timeline
	Recovery float64 // Remaining heavy attack recovery after finishing

	// Lean is the light attack blend position: 1 straight, lower values bend
	// the tail towards the opponent.
	Lean float64
}

var Attack = donburi.NewComponentType[AttackData]()
