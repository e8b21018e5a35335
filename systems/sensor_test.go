package systems

import (
	"testing"

	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/tags"
)

func withSensor(c *config.ScorpionConfig) {
	c.Sensor.Enabled = true
}

func TestHitSensors(t *testing.T) {
	cases := []struct {
		name     string
		progress float64
		lateral  float64
		want     []config.HitRegion
	}{
		{"on the back", 60, 0, []config.HitRegion{config.RegionBody, config.RegionBack, config.RegionFront}},
		{"beside the body", 60, 3, []config.HitRegion{config.RegionBody}},
		{"under the near tail", 53, 0, []config.HitRegion{config.RegionTailNear}},
		{"under the far tail", 50, 0, []config.HitRegion{config.RegionTailFar}},
		{"far behind", 0, 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, withSensor)
			h.activate()
			h.opp.SetProgress(tc.progress)
			h.opp.SetLateral(tc.lateral)
			UpdateHitSensors(h.ecs)

			var want [config.RegionCount]int
			for _, r := range tc.want {
				want[r] = 1
			}
			d := h.damage()
			for r := config.HitRegion(0); r < config.RegionCount; r++ {
				if d.Regions[r].Counter != want[r] {
					t.Fatalf("%v counter = %d, want %d", r, d.Regions[r].Counter, want[r])
				}
			}

			// Staying put does not enter again
			UpdateHitSensors(h.ecs)
			for r := config.HitRegion(0); r < config.RegionCount; r++ {
				if h.damage().Regions[r].Counter != want[r] {
					t.Fatalf("%v entered twice", r)
				}
			}

			h.opp.SetProgress(0)
			h.opp.SetLateral(0)
			UpdateHitSensors(h.ecs)
			for r := config.HitRegion(0); r < config.RegionCount; r++ {
				if h.damage().Regions[r].Counter != 0 {
					t.Fatalf("%v not exited", r)
				}
			}
		})
	}
}

func TestSensorCellsCoverSmallVolumes(t *testing.T) {
	c := config.Scorpion.Clone().Sensor
	sensor := NewSensor(&c)
	back := sensor.Regions[config.RegionBack]

	for _, lateral := range []float64{-1.6, -1, -0.3, 0, 0.4, 1.2, 1.6} {
		for _, along := range []float64{-0.6, 0, 0.5, 1, 2.3} {
			placeRect(sensor.Opponent, c.Extent, lateral, along)
			if !overlaps(sensor.Opponent, back) {
				t.Fatalf("opponent at %v,%v does not overlap the back", lateral, along)
			}
			found := false
			if check := sensor.Opponent.Check(0, 0, tags.ResolvRegion); check != nil {
				for _, obj := range check.Objects {
					if obj == back {
						found = true
					}
				}
			}
			if !found {
				t.Fatalf("opponent at %v,%v overlaps the back but shares no cell with it", lateral, along)
			}
		}
	}
}

func TestRespawnReleasesSensor(t *testing.T) {
	h := newHarness(t, withSensor)
	h.activate()
	h.opp.SetProgress(60)
	UpdateHitSensors(h.ecs)

	ResetScorpion(h.ecs.World, h.entry)
	h.activate()
	UpdateHitSensors(h.ecs)
	if got := h.damage().Regions[config.RegionBody].Counter; got != 1 {
		t.Fatalf("body counter = %d after respawn, want 1", got)
	}
}
