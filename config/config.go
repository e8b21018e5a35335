package config

// MovementConfig contains the distance bands and smoothing of the boss's
// movement along the track. Distances are in track units.
type MovementConfig struct {
	StartingProgress float64 `yaml:"startingProgress"`

	// Distance bands
	StrikeDistance  float64 `yaml:"strikeDistance"`  // Ideal distance while a strike is open
	ChaseDistance   float64 `yaml:"chaseDistance"`   // Full speed below this distance
	AttackDistance  float64 `yaml:"attackDistance"`  // Melee attacks start inside this distance
	RetreatDistance float64 `yaml:"retreatDistance"` // Start of the holding band
	AdvanceDistance float64 `yaml:"advanceDistance"` // End of the holding band

	// Speed
	TopSpeed        float64 `yaml:"topSpeed"`        // Usually the opponent's top ground speed
	BackpedalFactor float64 `yaml:"backpedalFactor"` // Speed factor slope past the advance distance
	IdleSpeed       float64 `yaml:"idleSpeed"`       // Below this |speed| the boss reads as idle
	SpeedRatioScale float64 `yaml:"speedRatioScale"`

	// Smoothing times, in seconds
	Traction        float64 `yaml:"traction"`
	Friction        float64 `yaml:"friction"`
	HitstunFriction float64 `yaml:"hitstunFriction"`

	// Smoothing times scaled by the tick length
	StrikeTraction         float64 `yaml:"strikeTraction"`
	PhaseRotationSmoothing float64 `yaml:"phaseRotationSmoothing"`
	PhaseBlendSmoothing    float64 `yaml:"phaseBlendSmoothing"`
}

// AttackConfig contains the melee attack cadence and the built-in attack
// timelines used when no animation drives StartStrike/StopStrike.
type AttackConfig struct {
	PhaseOneInterval float64 `yaml:"phaseOneInterval"`
	PhaseTwoInterval float64 `yaml:"phaseTwoInterval"`

	LightAttackCap int     `yaml:"lightAttackCap"` // Light attacks before a heavy one
	LeanRate       float64 `yaml:"leanRate"`       // Per-tick lerp factor of the light attack lean
	LeanWidth      float64 `yaml:"leanWidth"`      // Lateral offset that fully straightens the lean

	Timeline      bool    `yaml:"timeline"`
	LightWindup   float64 `yaml:"lightWindup"`
	LightStrike   float64 `yaml:"lightStrike"`
	LightRecovery float64 `yaml:"lightRecovery"`
	HeavyWindup   float64 `yaml:"heavyWindup"`
	HeavyStrike   float64 `yaml:"heavyStrike"`
	HeavyRecovery float64 `yaml:"heavyRecovery"`
}

// EyeConfig contains the phase two flying eye attack.
type EyeConfig struct {
	ExtendRate  float64 `yaml:"extendRate"`  // Blend per second while extending
	RetractRate float64 `yaml:"retractRate"` // Blend per second while retracting
	MaxTracking float64 `yaml:"maxTracking"` // Lateral correction towards the opponent
	Radius      float64 `yaml:"radius"`      // Keeps the eye off the ground and ahead of the opponent
	Height      float64 `yaml:"height"`      // Eye socket height above the track
}

// Emitter is a missile launch point relative to the boss.
type Emitter struct {
	Lateral float64 `yaml:"lateral"`
	Height  float64 `yaml:"height"`
	Along   float64 `yaml:"along"`
}

// BarrageConfig contains the ranged missile barrage.
type BarrageConfig struct {
	Enabled        bool    `yaml:"enabled"`
	MaxProjectiles int     `yaml:"maxProjectiles"`
	Interval       float64 `yaml:"interval"`      // Between shots of one group
	GroupInterval  float64 `yaml:"groupInterval"` // Between groups
	InitialDelay   float64 `yaml:"initialDelay"`
	Spread         float64 `yaml:"spread"` // Lateral jitter of the inner shots
	ArcHeight      float64 `yaml:"arcHeight"`
	Gravity        float64 `yaml:"gravity"`
	PredictMin     float64 `yaml:"predictMin"` // Lead multiplier range on the opponent's speed
	PredictMax     float64 `yaml:"predictMax"`
	BlastRadius    float64 `yaml:"blastRadius"`

	Emitters []Emitter `yaml:"emitters"`
}

// DamageConfig contains health and knockback values.
type DamageConfig struct {
	MaxHealth             int     `yaml:"maxHealth"`
	PhaseTwoHealth        int     `yaml:"phaseTwoHealth"`
	KnockbackSpeed        float64 `yaml:"knockbackSpeed"`
	KnockbackRecoverSpeed float64 `yaml:"knockbackRecoverSpeed"`

	// Applied to the opponent
	OpponentKnockbackSpeed float64 `yaml:"opponentKnockbackSpeed"`
	OpponentKnockbackLift  float64 `yaml:"opponentKnockbackLift"`
}

// Rect is an axis aligned region in boss space: Lateral across the track,
// Along the track in the path's forward direction. The opponent normally
// trails the boss, so the tail sits at negative Along.
type Rect struct {
	Lateral float64 `yaml:"lateral"`
	Along   float64 `yaml:"along"`
	Width   float64 `yaml:"width"`
	Length  float64 `yaml:"length"`
}

// SensorConfig contains the overlap volumes used to detect the opponent.
type SensorConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Extent       int     `yaml:"extent"` // Half size of the sensor space
	CellSize     int     `yaml:"cellSize"`
	OpponentSize float64 `yaml:"opponentSize"`

	Body     Rect `yaml:"body"`
	Back     Rect `yaml:"back"`
	Front    Rect `yaml:"front"` // Centred on the flying eye
	TailNear Rect `yaml:"tailNear"`
	TailFar  Rect `yaml:"tailFar"`
}

// ActivationConfig controls when the boss starts acting.
type ActivationConfig struct {
	AwaitOpponent bool `yaml:"awaitOpponent"` // Stay idle until the opponent first moves
}

// ScorpionConfig is the complete tuning of one Sand Scorpion encounter.
type ScorpionConfig struct {
	Seed       uint64           `yaml:"seed"`
	Difficulty Difficulty       `yaml:"difficulty"`
	Movement   MovementConfig   `yaml:"movement"`
	Attack     AttackConfig     `yaml:"attack"`
	Eye        EyeConfig        `yaml:"eye"`
	Barrage    BarrageConfig    `yaml:"barrage"`
	Damage     DamageConfig     `yaml:"damage"`
	Sensor     SensorConfig     `yaml:"sensor"`
	Activation ActivationConfig `yaml:"activation"`
}

// Clone returns a deep copy.
func (c ScorpionConfig) Clone() *ScorpionConfig {
	c.Barrage.Emitters = append([]Emitter(nil), c.Barrage.Emitters...)
	return &c
}

// RegionRect returns the configured volume of a hit region.
func (c *SensorConfig) RegionRect(r HitRegion) Rect {
	switch r {
	case RegionBack:
		return c.Back
	case RegionFront:
		return c.Front
	case RegionTailNear:
		return c.TailNear
	case RegionTailFar:
		return c.TailFar
	}
	return c.Body
}

// Scorpion holds the default tuning.
var Scorpion ScorpionConfig

// Tick contains the fixed step of the headless runner.
var Tick TickConfig

type TickConfig struct {
	Rate  int     // Ticks per second
	Delta float64 // Seconds per tick
}

func init() {
	Tick = TickConfig{
		Rate:  60,
		Delta: 1.0 / 60,
	}

	Scorpion = ScorpionConfig{
		Seed:       1,
		Difficulty: DifficultyNormal,

		Movement: MovementConfig{
			StartingProgress: 60,

			// Distance bands
			StrikeDistance:  8,
			ChaseDistance:   20,
			AttackDistance:  25,
			RetreatDistance: 55,
			AdvanceDistance: 65,

			// Speed
			TopSpeed:        30,
			BackpedalFactor: 0.1,
			IdleSpeed:       2,
			SpeedRatioScale: 1.2,

			// Smoothing
			Traction:               0.2,
			Friction:               0.8,
			HitstunFriction:        0.4,
			StrikeTraction:         20,
			PhaseRotationSmoothing: 30,
			PhaseBlendSmoothing:    30,
		},

		Attack: AttackConfig{
			PhaseOneInterval: 0.8,
			PhaseTwoInterval: 1.4,

			LightAttackCap: 2,
			LeanRate:       0.2,
			LeanWidth:      4,

			Timeline:      true,
			LightWindup:   0.4,
			LightStrike:   0.25,
			LightRecovery: 0.35,
			HeavyWindup:   0.6,
			HeavyStrike:   1.5,
			HeavyRecovery: 0.8,
		},

		Eye: EyeConfig{
			ExtendRate:  0.6,
			RetractRate: 0.4,
			MaxTracking: 2,
			Radius:      2,
			Height:      6,
		},

		Barrage: BarrageConfig{
			Enabled:        true,
			MaxProjectiles: 5, // Only five missiles are ever in the air
			Interval:       0.1,
			GroupInterval:  2.5,
			InitialDelay:   1.5,
			Spread:         1.5,
			ArcHeight:      5,
			Gravity:        28,
			PredictMin:     1,
			PredictMax:     2,
			BlastRadius:    2.5,
			Emitters: []Emitter{
				{Lateral: -3, Height: 7, Along: -1},
				{Lateral: 0, Height: 9, Along: -2},
				{Lateral: 3, Height: 7, Along: -1},
			},
		},

		Damage: DamageConfig{
			MaxHealth:              5,
			PhaseTwoHealth:         3,
			KnockbackSpeed:         80,
			KnockbackRecoverSpeed:  5,
			OpponentKnockbackSpeed: 24,
			OpponentKnockbackLift:  6,
		},

		Sensor: SensorConfig{
			Enabled:      true,
			Extent:       32,
			CellSize:     4,
			OpponentSize: 1.5,

			Body:     Rect{Lateral: 0, Along: 0, Width: 8, Length: 10},
			Back:     Rect{Lateral: 0, Along: 1, Width: 2, Length: 2},
			Front:    Rect{Width: 2.5, Length: 2.5},
			TailNear: Rect{Lateral: 0, Along: -7, Width: 3, Length: 2},
			TailFar:  Rect{Lateral: 0, Along: -10, Width: 3, Length: 2},
		},

		Activation: ActivationConfig{
			AwaitOpponent: false,
		},
	}
}
