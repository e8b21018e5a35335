package systems

import (
	"math"

	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhase eases the body between the two phase poses. In phase one the
// boss is turned around to face the pursuing opponent.
func UpdatePhase(e *ecs.ECS) {
	dt := delta(e.World)
	if dt <= 0 {
		return
	}
	eachActing(e.World, func(entry *donburi.Entry, s *components.ScorpionData) {
		m := components.Movement.Get(entry)
		tuning := &s.Tuning.Movement

		rotation, blend := math.Pi, 0.0
		if m.Phase == config.PhaseTwo {
			rotation, blend = 0, 1
		}
		m.PhaseRotation = gamemath.SmoothDampAngle(m.PhaseRotation, rotation, &m.PhaseRotationVelocity, tuning.PhaseRotationSmoothing*dt, dt)
		m.PhaseBlend = gamemath.SmoothDamp(m.PhaseBlend, blend, &m.PhaseBlendVelocity, tuning.PhaseBlendSmoothing*dt, dt)

		forward := s.Path.Basis(m.Progress).Forward
		m.Facing = forward.Scale(-1).Yaw() - m.PhaseRotation

		if a := components.Attack.Get(entry); a.Kind != config.AttackEye {
			eye := components.Eye.Get(entry)
			eye.Position = m.Position.Add(gamemath.Up.Scale(s.Tuning.Eye.Height))
			eye.Target = eye.Position
			eye.Facing = m.Facing
		}
	})
}
