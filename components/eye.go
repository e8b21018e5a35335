package components

import (
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EyeData is the phase two flying eye.
type EyeData struct {
	Blend   float64 // 0 in the socket, 1 fully extended
	Extend  *gween.Tween
	Retract *gween.Tween

	// Opponent lateral offset and height captured when the attack starts.
	AttackLateral float64
	AttackHeight  float64

	Target   gamemath.Vec3
	Position gamemath.Vec3
	Facing   float64
}

var Eye = donburi.NewComponentType[EyeData]()
