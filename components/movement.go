package components

import (
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/yohamta/donburi"
)

type MovementData struct {
	Progress      float64
	Speed         float64
	SpeedVelocity float64 // SmoothDamp state for Speed
	Distance      float64 // Track distance to the opponent, boss ahead is positive

	Phase                 config.MovementPhase
	PhaseRotation         float64 // Pi in phase one, eased to 0 in phase two
	PhaseRotationVelocity float64
	PhaseBlend            float64
	PhaseBlendVelocity    float64

	Position   gamemath.Vec3
	Facing     float64 // Yaw in radians
	SpeedRatio float64 // Locomotion playback rate for presentation
	Moving     bool
}

var Movement = donburi.NewComponentType[MovementData]()
