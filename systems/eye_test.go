package systems

import (
	"testing"

	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/pathing"
	"github.com/tanema/gween"
)

func TestEyeAttackExtendsAndRetracts(t *testing.T) {
	h := newHarness(t, nil)
	h.opp.SetProgress(50)
	EnterPhaseTwo(h.ecs.World, h.entry)
	h.attack().Cooldown = 0

	h.fight(1, 0.05)
	if a := h.attack(); !a.Attacking || a.Kind != config.AttackEye || !a.Striking {
		t.Fatalf("eye attack not started: %+v", *a)
	}

	h.fight(10, 0.05)
	eye := components.Eye.Get(h.entry)
	if eye.Blend <= 0 || eye.Blend >= 1 {
		t.Fatalf("blend = %v while extending", eye.Blend)
	}
	if h.damage().Regions[config.RegionFront].Armed {
		t.Fatal("front armed before the eye is out")
	}

	for i := 0; i < 100 && h.attack().Striking; i++ {
		h.fight(1, 0.05)
	}
	eye = components.Eye.Get(h.entry)
	if h.attack().Striking || eye.Blend != 1 {
		t.Fatalf("eye never fully extended: blend %v", eye.Blend)
	}
	if !h.damage().Regions[config.RegionFront].Armed {
		t.Fatal("extended eye left the front unarmed")
	}
	want := pathing.Offset(h.path, 50, 0).
		Add(gamemath.Up.Scale(h.tuning.Eye.Radius)).
		Add(gamemath.Forward.Scale(h.tuning.Eye.Radius))
	if !eye.Target.IsEqualApprox(want) || !eye.Position.IsEqualApprox(want) {
		t.Fatalf("eye at %+v aiming at %+v, want %+v", eye.Position, eye.Target, want)
	}

	for i := 0; i < 200 && h.attack().Attacking; i++ {
		h.fight(1, 0.05)
	}
	eye = components.Eye.Get(h.entry)
	if h.attack().Attacking || eye.Blend != 0 {
		t.Fatalf("eye never retracted: blend %v", eye.Blend)
	}
	if h.damage().Regions[config.RegionFront].Armed {
		t.Fatal("front still armed after the retract")
	}
	if h.count(EventAttackFinished) != 1 {
		t.Fatal("eye attack finish not published")
	}
}

func TestEyeAttackHeight(t *testing.T) {
	cases := []struct {
		name   string
		height float64
		want   float64
	}{
		{"grounded", 0, 2},
		{"hopping", 1, 2},
		{"airborne", 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, nil)
			h.opp.SetProgress(50)
			h.opp.Height = tc.height
			EnterPhaseTwo(h.ecs.World, h.entry)
			h.attack().Cooldown = 0

			h.fight(1, 0.05)
			if h.attack().Kind != config.AttackEye {
				t.Fatalf("attack = %v, want the eye", h.attack().Kind)
			}
			if got := components.Eye.Get(h.entry).AttackHeight; !gamemath.IsEqualApprox(got, tc.want) {
				t.Fatalf("attack height = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEyeTargetTracksWithinLimit(t *testing.T) {
	cases := []struct {
		name    string
		lateral float64 // Opponent lateral when the eye arrives
		want    float64
	}{
		{"stayed put", 1, 1},
		{"small step", 2.5, 2.5},
		{"dodged right", 6, 3},
		{"dodged left", -4, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, nil)
			h.opp.SetProgress(40)
			eye := &components.EyeData{AttackLateral: 1}

			h.opp.SetLateral(tc.lateral)
			got := EyeTarget(h.scorpion(), eye)
			want := pathing.Offset(h.path, 40, tc.want).Add(gamemath.Forward.Scale(h.tuning.Eye.Radius))
			if !got.IsEqualApprox(want) {
				t.Fatalf("target = %+v, want %+v", got, want)
			}
		})
	}
}

func TestStepBlend(t *testing.T) {
	var tw *gween.Tween
	if v, done := stepBlend(&tw, 1, 1, 0.5, 0.1); !done || v != 1 {
		t.Fatalf("already there: %v, %v", v, done)
	}
	if v, done := stepBlend(&tw, 0, 1, 0, 0.1); !done || v != 1 {
		t.Fatalf("zero rate: %v, %v", v, done)
	}

	v, done := stepBlend(&tw, 0, 1, 0.5, 1)
	if done || tw == nil || !gamemath.IsEqualApprox(v, 0.5) {
		t.Fatalf("halfway: %v, %v", v, done)
	}
	v, done = stepBlend(&tw, v, 1, 0.5, 1)
	if !done || tw != nil || v != 1 {
		t.Fatalf("finished: %v, %v", v, done)
	}
}
