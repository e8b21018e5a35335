package scenes

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/opponent"
	"github.com/automoto/sandscorpion/shared/pathing"
	"github.com/automoto/sandscorpion/systems"
)

const dt = 1.0 / 60

func newTestEncounter(t *testing.T, tune func(c *config.ScorpionConfig)) (*Encounter, *opponent.Puppet) {
	t.Helper()
	tuning := config.Scorpion.Clone()
	if tune != nil {
		tune(tuning)
	}
	path := pathing.Line(1000)
	opp := opponent.NewPuppet(path, 0)
	enc, err := NewEncounter(tuning, path, opp)
	if err != nil {
		t.Fatalf("NewEncounter: %v", err)
	}
	return enc, opp
}

func TestNewEncounterErrors(t *testing.T) {
	path := pathing.Line(100)
	opp := opponent.NewPuppet(path, 0)
	bad := config.Scorpion.Clone()
	bad.Damage.MaxHealth = 0

	cases := []struct {
		name   string
		tuning *config.ScorpionConfig
		path   pathing.Path
		opp    opponent.Proxy
		want   error
		text   string
	}{
		{name: "no path", opp: opp, want: ErrNoPath},
		{name: "no opponent", path: path, want: ErrNoOpponent},
		{name: "bad tuning", tuning: bad, path: path, opp: opp, text: "max health"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := NewEncounter(tc.tuning, tc.path, tc.opp)
			if err == nil || enc != nil {
				t.Fatal("expected an error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			if tc.text != "" && !strings.Contains(err.Error(), tc.text) {
				t.Fatalf("error %q does not mention %q", err, tc.text)
			}
		})
	}
}

func TestNewEncounterDefaults(t *testing.T) {
	path := pathing.Rectangle(100, 100)
	enc, err := NewEncounter(nil, path, opponent.NewPuppet(path, 0))
	if err != nil {
		t.Fatalf("NewEncounter: %v", err)
	}
	s := enc.Snapshot()
	if s == nil || s.Health != config.Scorpion.Damage.MaxHealth || s.Active {
		t.Fatalf("initial snapshot = %+v", s)
	}
	if len(s.Projectiles) != config.Scorpion.Barrage.MaxProjectiles {
		t.Fatalf("%d pooled missiles, want %d", len(s.Projectiles), config.Scorpion.Barrage.MaxProjectiles)
	}
}

func TestTickPublishesSnapshots(t *testing.T) {
	enc, _ := newTestEncounter(t, nil)
	first := enc.Snapshot()

	enc.Tick(dt)
	enc.Tick(dt)
	s := enc.Snapshot()
	if s == first {
		t.Fatal("tick did not publish a new snapshot")
	}
	if first.Tick != 0 || first.Active {
		t.Fatalf("published snapshot was modified: %+v", first)
	}
	if s.Tick != 2 || !s.Active {
		t.Fatalf("snapshot after two ticks: tick %d, active %v", s.Tick, s.Active)
	}
	if s.Progress != config.Scorpion.Movement.StartingProgress {
		t.Fatalf("progress = %v", s.Progress)
	}

	enc.Tick(0)
	if enc.Snapshot().Tick != 2 {
		t.Fatal("zero length tick advanced the clock")
	}
}

func TestSubscribersSeeEventsInOrder(t *testing.T) {
	enc, opp := newTestEncounter(t, nil)
	var first, second []systems.Event
	enc.Subscribe(func(e systems.Event) { first = append(first, e) })
	enc.Subscribe(func(e systems.Event) { second = append(second, e) })

	enc.Tick(dt)
	if len(first) != 1 || first[0].Kind != systems.EventActivated || first[0].Tick != 1 {
		t.Fatalf("first tick events = %+v", first)
	}

	opp.CounterMove = true
	enc.EnterRegion(config.RegionBack)
	enc.Tick(dt)

	want := []systems.EventKind{
		systems.EventActivated,
		systems.EventRegionHit,
		systems.EventOpponentBounced,
		systems.EventKnockback,
		systems.EventDamaged,
	}
	if len(first) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(first), len(want), first)
	}
	for i, kind := range want {
		if first[i].Kind != kind {
			t.Fatalf("event %d is %v, want %v", i, first[i].Kind, kind)
		}
	}
	if first[len(first)-1].Tick != 2 || first[len(first)-1].Health != 4 {
		t.Fatalf("damaged event = %+v", first[len(first)-1])
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("subscribers saw different events")
	}
	if s := enc.Snapshot(); s.Damage != config.DamageKnockback || s.Health != 4 {
		t.Fatalf("snapshot damage %v, health %d", s.Damage, s.Health)
	}
}

func TestRespawnIsIdempotent(t *testing.T) {
	enc, opp := newTestEncounter(t, nil)
	opp.SetProgress(50)
	for i := 0; i < 120; i++ {
		enc.Tick(dt)
	}
	opp.CounterMove = true
	enc.EnterRegion(config.RegionBack)
	enc.Tick(dt)

	var respawns int
	enc.Subscribe(func(e systems.Event) {
		if e.Kind == systems.EventRespawned {
			respawns++
		}
	})
	enc.Respawn()
	once := enc.Snapshot()
	enc.Respawn()
	twice := enc.Snapshot()

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second respawn changed the snapshot:\n%+v\n%+v", once, twice)
	}
	if once.Health != once.Max || once.Active || once.Damage != config.DamageNone || once.Phase != config.PhaseOne {
		t.Fatalf("respawned snapshot = %+v", once)
	}
	for _, p := range once.Projectiles {
		if p.Active {
			t.Fatal("missile in flight after respawn")
		}
	}
	if respawns != 2 {
		t.Fatalf("respawned events = %d, want 2", respawns)
	}
}

func TestPause(t *testing.T) {
	enc, _ := newTestEncounter(t, nil)
	enc.SetPaused(true)
	for i := 0; i < 10; i++ {
		enc.Tick(dt)
	}
	if s := enc.Snapshot(); s.Active || s.Tick != 10 {
		t.Fatalf("paused encounter: active %v, tick %d", s.Active, s.Tick)
	}

	enc.SetPaused(false)
	enc.Tick(dt)
	if !enc.Snapshot().Active {
		t.Fatal("encounter did not resume")
	}
}

func TestUnload(t *testing.T) {
	enc, _ := newTestEncounter(t, nil)
	called := false
	enc.Subscribe(func(systems.Event) { called = true })
	enc.Unload()

	if enc.Snapshot() != nil {
		t.Fatal("snapshot survived unload")
	}
	enc.Tick(dt)
	enc.Respawn()
	enc.EnterRegion(config.RegionBody)
	enc.FinishHeavyAttack(true)
	enc.Unload()
	if enc.Snapshot() != nil || called {
		t.Fatal("unloaded encounter kept running")
	}
	if enc.PreviewRegions() != nil {
		t.Fatal("unloaded encounter still has regions")
	}
}

func TestApplyTuning(t *testing.T) {
	enc, opp := newTestEncounter(t, nil)
	opp.SetProgress(50)

	bad := config.Scorpion.Clone()
	bad.Movement.ChaseDistance = 100
	if err := enc.ApplyTuning(bad); err == nil {
		t.Fatal("invalid tuning applied")
	}

	frozen := config.Scorpion.Clone()
	frozen.Movement.TopSpeed = 0
	frozen.Barrage.MaxProjectiles = 9
	if err := enc.ApplyTuning(frozen); err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}
	for i := 0; i < 30; i++ {
		enc.Tick(dt)
	}
	s := enc.Snapshot()
	if s.Speed != 0 {
		t.Fatalf("speed = %v with a zero top speed", s.Speed)
	}
	if len(s.Projectiles) != config.Scorpion.Barrage.MaxProjectiles {
		t.Fatal("pool size changed before reload")
	}
}

func TestPreviewRegions(t *testing.T) {
	enc, _ := newTestEncounter(t, nil)
	regions := enc.PreviewRegions()
	if len(regions) != int(config.RegionCount) {
		t.Fatalf("%d regions", len(regions))
	}
	body := regions[config.RegionBody]
	if body.Name != "body" || !body.Armed || !body.Center.IsEqualApprox(enc.Snapshot().Position) {
		t.Fatalf("body region = %+v", body)
	}
	if regions[config.RegionFront].Armed || regions[config.RegionTailNear].Armed {
		t.Fatal("idle boss has the eye or tail armed")
	}
}

func TestGameLoopStep(t *testing.T) {
	enc, opp := newTestEncounter(t, nil)
	loop := NewGameLoop(enc, 0)

	var steps int
	loop.BeforeTick = func(dt float64) {
		opp.Step(dt)
	}
	loop.AfterTick = func(s *Snapshot) bool {
		steps++
		return s.Tick >= 3
	}

	for !loop.Step() {
	}
	if steps != 3 || enc.Snapshot().Tick != 3 {
		t.Fatalf("stepped %d times to tick %d", steps, enc.Snapshot().Tick)
	}

	loop.Run() // AfterTick already wants to end
	loop.Stop()
	loop.Stop()
}

func TestGameLoopStop(t *testing.T) {
	enc, _ := newTestEncounter(t, nil)
	loop := NewGameLoop(enc, 60)
	loop.Stop()
	loop.Run()
	if enc.Snapshot().Tick > 1 {
		t.Fatal("stopped loop kept ticking")
	}
}

func TestGameLoopRunUnpaced(t *testing.T) {
	enc, _ := newTestEncounter(t, nil)
	loop := NewGameLoop(enc, 60)
	loop.AfterTick = func(s *Snapshot) bool { return s.Tick >= 600 }
	loop.RunUnpaced()
	if got := enc.Snapshot().Tick; got != 600 {
		t.Fatalf("ran to tick %d, want 600", got)
	}

	loop = NewGameLoop(enc, 60)
	loop.Stop()
	loop.RunUnpaced()
	if got := enc.Snapshot().Tick; got != 600 {
		t.Fatal("stopped loop kept ticking")
	}
}
