package systems

import (
	"math/rand/v2"

	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/opponent"
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/pathing"
)

// Aim holds the inputs of one missile prediction.
type Aim struct {
	Slot    int // Pool slot being fired; the first and last slots are never jittered
	Slots   int
	Spread  float64
	LeadMin float64
	LeadMax float64
	FloorY  float64
}

// PredictTarget guesses where the opponent will be when a missile lands.
// The opponent's speed is scaled by a random lead in [LeadMin, LeadMax) and
// by how closely its heading follows the path. A stationary opponent is
// targeted where it stands.
func PredictTarget(path pathing.Path, opp opponent.Proxy, rng *rand.Rand, aim Aim) gamemath.Vec3 {
	progress := opp.Progress()
	dot := opp.Heading().Dot(path.Basis(progress).Forward)
	lead := opp.Speed() * randRange(rng, aim.LeadMin, aim.LeadMax) * dot

	lateral := OpponentLateral(path, opp)
	if aim.Slot != 0 && aim.Slot < aim.Slots-1 {
		lateral += randRange(rng, -aim.Spread, aim.Spread)
	}

	target := pathing.Offset(path, progress+lead, lateral)
	target.Y = aim.FloorY
	return target
}

// OpponentLateral is the opponent's sideways offset from the track centre.
func OpponentLateral(path pathing.Path, opp opponent.Proxy) float64 {
	return pathing.Lateral(path, opp.Progress(), opp.Position())
}

// AttackSide picks the tail for a melee attack from the opponent's lateral
// offset: an opponent to the right is met by the left tail.
func AttackSide(lateral float64) int {
	if lateral > 0 {
		return config.SideLeft
	}
	return config.SideRight
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	if rng == nil || hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
