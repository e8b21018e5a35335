package systems

import (
	"testing"

	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/config"
	"github.com/yohamta/donburi"
)

func withBarrage(c *config.ScorpionConfig) {
	c.Barrage.Enabled = true
	c.Barrage.MaxProjectiles = 3
	c.Barrage.Interval = 0.1
	c.Barrage.GroupInterval = 2.5
	c.Barrage.InitialDelay = 1.5
}

func (h *harness) projectiles() []*components.ProjectileData {
	var out []*components.ProjectileData
	for _, id := range h.barrage().Pool {
		out = append(out, components.Projectile.Get(h.ecs.World.Entry(id)))
	}
	return out
}

func TestBarrageGroups(t *testing.T) {
	h := newHarness(t, withBarrage)

	h.ticks(60) // 1s, inside the initial delay
	if h.barrage().Fired != 0 {
		t.Fatal("fired during the initial delay")
	}

	h.ticks(60) // 2s: the first group of three has gone
	b := h.barrage()
	if b.Fired != 3 || b.Index != 0 || !b.GroupReset {
		t.Fatalf("after one group: fired %d, index %d, reset %v", b.Fired, b.Index, b.GroupReset)
	}

	h.ticks(90) // 3.5s: every missile of the group has landed
	if n := h.count(EventMissileLanded); n != 3 {
		t.Fatalf("%d missiles landed, want 3", n)
	}
	for i, p := range h.projectiles() {
		if p.Active {
			t.Fatalf("missile %d still checked out", i)
		}
	}

	h.ticks(60) // 4.5s: the second group has gone
	if b := h.barrage(); b.Fired != 6 {
		t.Fatalf("fired %d, want 6 after two groups", b.Fired)
	}
}

func TestMissilesHitStandingOpponent(t *testing.T) {
	h := newHarness(t, withBarrage)
	h.ticks(210)

	// The outer slots are never jittered, so they land on a standing opponent
	if n := len(h.opp.Knockbacks); n < 2 {
		t.Fatalf("blast knocked the opponent back %d times, want at least 2", n)
	}
	if h.count(EventOpponentKnockedBack) != len(h.opp.Knockbacks) {
		t.Fatal("knockback events do not match the knockbacks")
	}
}

func TestBarrageHoldsNewGroupInRange(t *testing.T) {
	h := newHarness(t, withBarrage)
	h.activate()
	b := h.barrage()
	b.Timer = 0
	h.movement().Distance = 10

	AdvanceClock(h.ecs, testDelta)
	UpdateBarrage(h.ecs)
	if h.barrage().Fired != 0 {
		t.Fatal("new group started with the opponent in attack range")
	}

	// A group already underway keeps firing
	h.barrage().GroupReset = false
	UpdateBarrage(h.ecs)
	if h.barrage().Fired != 1 {
		t.Fatal("group in progress stopped firing")
	}
}

func TestRespawnMidBarrage(t *testing.T) {
	h := newHarness(t, withBarrage)
	h.ticks(96) // Just past the first shot
	if b := h.barrage(); b.Fired == 0 || b.Fired == 3 {
		t.Fatalf("fired %d, want a group in progress", b.Fired)
	}

	ResetScorpion(h.ecs.World, h.entry)
	b := h.barrage()
	if b.Fired != 0 || b.Index != 0 || !b.GroupReset || b.Timer != h.tuning.Barrage.InitialDelay {
		t.Fatalf("barrage not reset: %+v", *b)
	}
	for i, p := range h.projectiles() {
		if p.Active {
			t.Fatalf("missile %d still in flight after respawn", i)
		}
	}
	if h.scorpion().Active {
		t.Fatal("respawned boss is already active")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	h := newHarness(t, withBarrage)
	h.opp.SetProgress(50)
	h.ticks(120)

	ResetScorpion(h.ecs.World, h.entry)
	m, a, d, b := *h.movement(), *h.attack(), *h.damage(), h.barrage().Timer
	health := *h.health()

	ResetScorpion(h.ecs.World, h.entry)
	if *h.movement() != m || *h.attack() != a || *h.damage() != d || h.barrage().Timer != b || *h.health() != health {
		t.Fatal("second reset changed the boss")
	}
	if health.Current != health.Max || m.Progress != h.tuning.Movement.StartingProgress {
		t.Fatalf("reset to health %d, progress %v", health.Current, m.Progress)
	}
}

func TestDestroyScorpion(t *testing.T) {
	h := newHarness(t, withBarrage)
	pool := append([]donburi.Entity(nil), h.barrage().Pool...)
	DestroyScorpion(h.ecs.World, h.entry)

	if h.ecs.World.Valid(h.entry.Entity()) {
		t.Fatal("boss still in the world")
	}
	for _, id := range pool {
		if h.ecs.World.Valid(id) {
			t.Fatal("missile outlived its boss")
		}
	}
}
