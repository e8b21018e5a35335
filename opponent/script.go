package opponent

import (
	"fmt"

	"github.com/automoto/sandscorpion/shared/pathing"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script is a Puppet whose inputs come from a tengo script, run once per
// Step. The script reads
//
//	elapsed, dt, progress, speed, lateral, boss_progress, bounces, knockbacks
//
// and may assign
//
//	speed, lateral, counter, grounded, boost
//
// Unassigned outputs keep their previous values.
type Script struct {
	*Puppet

	compiled *tengo.Compiled
	elapsed  float64

	// BossProgress is fed to the script as boss_progress.
	BossProgress func() float64
}

var scriptInputs = []string{"elapsed", "dt", "progress", "boss_progress", "bounces", "knockbacks"}

// NewScript compiles src for an opponent starting at progress.
func NewScript(path pathing.Path, progress float64, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	for _, name := range scriptInputs {
		if err := script.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("declare %s: %w", name, err)
		}
	}
	outputs := map[string]any{"speed": 0.0, "lateral": 0.0, "counter": false, "grounded": true, "boost": false}
	for name, v := range outputs {
		if err := script.Add(name, v); err != nil {
			return nil, fmt.Errorf("declare %s: %w", name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile opponent script: %w", err)
	}
	// A name that collides with a tengo builtin is shadowed by it
	for name := range scriptVariables(outputs) {
		if !compiled.IsDefined(name) {
			return nil, fmt.Errorf("opponent script variable %q is not a global", name)
		}
	}
	return &Script{Puppet: NewPuppet(path, progress), compiled: compiled}, nil
}

// Step runs the script, applies its outputs and advances the puppet.
func (s *Script) Step(dt float64) error {
	s.elapsed += dt

	boss := 0.0
	if s.BossProgress != nil {
		boss = s.BossProgress()
	}
	inputs := map[string]any{
		"elapsed":       s.elapsed,
		"dt":            dt,
		"progress":      s.progress,
		"boss_progress": boss,
		"bounces":       s.Bounces,
		"knockbacks":    len(s.Knockbacks),
		"speed":         s.speed,
		"lateral":       s.lateral,
		"counter":       s.CounterMove,
		"grounded":      s.Grounded,
		"boost":         s.Boosting,
	}
	for name, v := range inputs {
		if err := s.compiled.Set(name, v); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("run opponent script: %w", err)
	}

	s.speed = s.compiled.Get("speed").Float()
	s.lateral = s.compiled.Get("lateral").Float()
	s.CounterMove = s.compiled.Get("counter").Bool()
	s.Grounded = s.compiled.Get("grounded").Bool()
	s.Boosting = s.compiled.Get("boost").Bool()

	s.Puppet.Step(dt)
	return nil
}

func scriptVariables(outputs map[string]any) map[string]struct{} {
	names := make(map[string]struct{}, len(scriptInputs)+len(outputs))
	for _, name := range scriptInputs {
		names[name] = struct{}{}
	}
	for name := range outputs {
		names[name] = struct{}{}
	}
	return names
}
