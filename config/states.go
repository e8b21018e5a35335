package config

// MovementPhase is the boss's fight phase. Phase two is one-way until respawn.
type MovementPhase int

const (
	PhaseOne MovementPhase = iota
	PhaseTwo
)

func (p MovementPhase) String() string {
	if p == PhaseTwo {
		return "two"
	}
	return "one"
}

// DamageState suppresses the boss's own actions after being hit.
type DamageState int

const (
	DamageNone DamageState = iota
	DamageHitstun
	DamageKnockback
)

func (s DamageState) String() string {
	switch s {
	case DamageHitstun:
		return "hitstun"
	case DamageKnockback:
		return "knockback"
	}
	return "none"
}

// AttackKind identifies the attack in progress.
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackLight
	AttackHeavy
	AttackEye
)

func (k AttackKind) String() string {
	switch k {
	case AttackLight:
		return "light"
	case AttackHeavy:
		return "heavy"
	case AttackEye:
		return "eye"
	}
	return "none"
}

// Attack sides
const (
	SideNone  = 0
	SideLeft  = -1
	SideRight = 1
)

// HitRegion is one of the boss's overlap volumes.
type HitRegion int

const (
	RegionBody HitRegion = iota
	RegionFront
	RegionBack
	RegionTailNear
	RegionTailFar

	RegionCount
)

// RegionPriority is the resolution order when several regions overlap the
// opponent in the same tick.
var RegionPriority = [RegionCount]HitRegion{
	RegionBack,
	RegionFront,
	RegionTailNear,
	RegionTailFar,
	RegionBody,
}

func (r HitRegion) String() string {
	switch r {
	case RegionBody:
		return "body"
	case RegionFront:
		return "front"
	case RegionBack:
		return "back"
	case RegionTailNear:
		return "tail-near"
	case RegionTailFar:
		return "tail-far"
	}
	return "unknown"
}

// IsWeakPoint reports whether a hit on the region can damage the boss.
func (r HitRegion) IsWeakPoint() bool {
	return r == RegionFront || r == RegionBack
}

// IsTail reports whether the region is one of the tail traversal eyes.
func (r HitRegion) IsTail() bool {
	return r == RegionTailNear || r == RegionTailFar
}
