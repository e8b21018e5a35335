package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Difficulty scales the encounter's cadence and aim.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// DifficultyConfig holds the multipliers applied for one difficulty.
type DifficultyConfig struct {
	AttackInterval float64 // Scales both melee attack intervals
	GroupInterval  float64 // Scales the pause between missile groups
	Lead           float64 // Scales how far ahead missiles are aimed
	TopSpeed       float64
}

// Difficulties holds the multipliers per difficulty.
var Difficulties map[Difficulty]DifficultyConfig

func init() {
	Difficulties = map[Difficulty]DifficultyConfig{
		DifficultyEasy: {
			AttackInterval: 1.4,
			GroupInterval:  1.5,
			Lead:           0.5, // Missiles mostly land behind a moving opponent
			TopSpeed:       0.9,
		},
		DifficultyNormal: {
			AttackInterval: 1,
			GroupInterval:  1,
			Lead:           1,
			TopSpeed:       1,
		},
		DifficultyHard: {
			AttackInterval: 0.75,
			GroupInterval:  0.7,
			Lead:           1.15,
			TopSpeed:       1.1,
		},
	}
}

// Scaled returns a copy of c with the difficulty multipliers applied.
func (c *ScorpionConfig) Scaled() *ScorpionConfig {
	out := c.Clone()
	d, ok := Difficulties[c.Difficulty]
	if !ok {
		return out
	}
	out.Attack.PhaseOneInterval *= d.AttackInterval
	out.Attack.PhaseTwoInterval *= d.AttackInterval
	out.Barrage.GroupInterval *= d.GroupInterval
	out.Barrage.PredictMin *= d.Lead
	out.Barrage.PredictMax *= d.Lead
	out.Movement.TopSpeed *= d.TopSpeed
	return out
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	}
	return "normal"
}

// ParseDifficulty accepts "easy", "normal" or "hard".
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "normal", "":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyNormal, fmt.Errorf("unknown difficulty %q", s)
}

func (d *Difficulty) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseDifficulty(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Difficulty) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}
