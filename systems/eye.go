package systems

import (
	"math"

	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/pathing"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// startEyeAttack sends the flying eye at the opponent. The opponent's
// lateral offset and height are captured now, never lower than the eye
// radius; the eye only corrects
// towards later movement by up to MaxTracking.
func startEyeAttack(w donburi.World, entry *donburi.Entry, s *components.ScorpionData) {
	a := components.Attack.Get(entry)
	eye := components.Eye.Get(entry)
	opp := s.Opponent

	a.Attacking = true
	a.Kind = config.AttackEye
	a.Side = config.SideNone
	a.Elapsed = 0

	eye.Extend, eye.Retract = nil, nil
	eye.AttackLateral = OpponentLateral(s.Path, opp)
	eye.AttackHeight = math.Max(s.Tuning.Eye.Radius, opp.Position().Y-s.Path.Position(opp.Progress()).Y)

	publish(w, Event{Kind: EventAttackStarted, Attack: config.AttackEye})
	StartStrike(w, entry)
}

// updateEyeAttack extends the eye while striking. Once fully out the front
// weak point is armed and the eye retracts; back in the socket the attack
// finishes.
func updateEyeAttack(w donburi.World, entry *donburi.Entry, s *components.ScorpionData, dt float64) {
	a := components.Attack.Get(entry)
	eye := components.Eye.Get(entry)
	tuning := &s.Tuning.Eye
	a.Elapsed += dt

	if a.Striking {
		var done bool
		eye.Blend, done = stepBlend(&eye.Extend, eye.Blend, 1, tuning.ExtendRate, dt)
		if done {
			StopStrike(w, entry)
			components.Damage.Get(entry).Regions[config.RegionFront].Armed = true
		}
	} else {
		var done bool
		eye.Blend, done = stepBlend(&eye.Retract, eye.Blend, 0, tuning.RetractRate, dt)
		if done {
			components.Damage.Get(entry).Regions[config.RegionFront].Armed = false
			endAttack(w, entry)
			return
		}
	}
	placeEye(entry, s)
}

// stepBlend advances a linear tween from current to `to` at rate per
// second, creating it on first use. It reports true once `to` is reached.
func stepBlend(tw **gween.Tween, current, to, rate, dt float64) (float64, bool) {
	if *tw == nil {
		if current == to || rate <= 0 {
			return to, true
		}
		duration := math.Abs(to-current) / rate
		*tw = gween.New(float32(current), float32(to), float32(duration), ease.Linear)
	}
	v, finished := (*tw).Update(float32(dt))
	if finished {
		*tw = nil
		return to, true
	}
	return float64(v), false
}

// placeEye moves the eye between its socket and the target.
func placeEye(entry *donburi.Entry, s *components.ScorpionData) {
	m := components.Movement.Get(entry)
	eye := components.Eye.Get(entry)

	socket := m.Position.Add(gamemath.Up.Scale(s.Tuning.Eye.Height))
	eye.Target = EyeTarget(s, eye)
	eye.Position = socket.Lerp(eye.Target, gamemath.SmoothStep(0, 1, eye.Blend))
	if dir := eye.Target.Sub(socket).Flatten(); dir.LengthSquared() > 0 {
		eye.Facing = dir.Yaw()
	}
}

// EyeTarget is the point the flying eye aims for: just ahead of the
// opponent at the captured height, following its lateral movement within
// MaxTracking of the captured offset.
func EyeTarget(s *components.ScorpionData, eye *components.EyeData) gamemath.Vec3 {
	opp := s.Opponent
	progress := opp.Progress()
	basis := s.Path.Basis(progress)
	tuning := &s.Tuning.Eye

	correction := gamemath.Clamp(eye.AttackLateral-OpponentLateral(s.Path, opp), -tuning.MaxTracking, tuning.MaxTracking)
	lateral := eye.AttackLateral - correction

	return pathing.Offset(s.Path, progress, lateral).
		Add(basis.Up.Scale(eye.AttackHeight)).
		Add(basis.Forward.Scale(tuning.Radius))
}

func resetEye(entry *donburi.Entry) {
	eye := components.Eye.Get(entry)
	eye.Blend = 0
	eye.Extend, eye.Retract = nil, nil
	components.Damage.Get(entry).Regions[config.RegionFront].Armed = false
}
