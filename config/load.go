package config

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// LoadTuning reads a YAML tuning file from fsys and merges it over the
// defaults in Scorpion. Fields missing from the file keep their defaults.
func LoadTuning(fsys fs.FS, path string) (*ScorpionConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	c, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("tuning %s: %w", path, err)
	}
	return c, nil
}

// ParseTuning merges YAML data over the defaults and validates the result.
func ParseTuning(data []byte) (*ScorpionConfig, error) {
	c := Scorpion.Clone()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports every inconsistent value at once.
func (c *ScorpionConfig) Validate() error {
	if c == nil {
		return errors.New("no tuning")
	}
	var errs []error
	m := c.Movement
	if !(m.StrikeDistance <= m.AttackDistance && m.ChaseDistance < m.RetreatDistance && m.RetreatDistance <= m.AdvanceDistance) {
		errs = append(errs, fmt.Errorf("movement: distance bands out of order (strike %v, chase %v, attack %v, retreat %v, advance %v)",
			m.StrikeDistance, m.ChaseDistance, m.AttackDistance, m.RetreatDistance, m.AdvanceDistance))
	}
	if m.TopSpeed < 0 {
		errs = append(errs, fmt.Errorf("movement: negative top speed %v", m.TopSpeed))
	}
	if m.Traction <= 0 || m.Friction <= 0 || m.HitstunFriction <= 0 {
		errs = append(errs, errors.New("movement: smoothing times must be positive"))
	}

	if c.Attack.LightAttackCap < 0 {
		errs = append(errs, fmt.Errorf("attack: negative light attack cap %d", c.Attack.LightAttackCap))
	}
	if c.Attack.LeanRate < 0 || c.Attack.LeanRate > 1 {
		errs = append(errs, fmt.Errorf("attack: lean rate %v outside [0, 1]", c.Attack.LeanRate))
	}
	if c.Eye.ExtendRate <= 0 || c.Eye.RetractRate <= 0 {
		errs = append(errs, errors.New("eye: rates must be positive"))
	}

	b := c.Barrage
	if b.MaxProjectiles < 0 {
		errs = append(errs, fmt.Errorf("barrage: negative projectile count %d", b.MaxProjectiles))
	}
	if b.PredictMin > b.PredictMax {
		errs = append(errs, fmt.Errorf("barrage: predictMin %v above predictMax %v", b.PredictMin, b.PredictMax))
	}

	d := c.Damage
	if d.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("damage: max health %d must be positive", d.MaxHealth))
	}
	if d.PhaseTwoHealth >= d.MaxHealth {
		errs = append(errs, fmt.Errorf("damage: phase two health %d must be below max health %d", d.PhaseTwoHealth, d.MaxHealth))
	}

	if c.Sensor.Enabled && (c.Sensor.Extent <= 0 || c.Sensor.CellSize <= 0) {
		errs = append(errs, errors.New("sensor: extent and cell size must be positive"))
	}
	if _, ok := Difficulties[c.Difficulty]; !ok {
		errs = append(errs, fmt.Errorf("unknown difficulty %d", c.Difficulty))
	}
	return errors.Join(errs...)
}
