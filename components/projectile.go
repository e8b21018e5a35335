package components

import (
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/trajectory"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner      donburi.Entity
	Slot       int
	Active     bool // Checked out and flying
	Elapsed    float64
	Trajectory trajectory.Trajectory
	Position   gamemath.Vec3
}

var Projectile = donburi.NewComponentType[ProjectileData]()
