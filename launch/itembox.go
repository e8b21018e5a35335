package launch

import (
	"errors"
	"math"

	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/pathing"
	"github.com/automoto/sandscorpion/shared/trajectory"
)

var ErrEmptyItemBox = errors.New("item box has nothing to spawn")

// launchLift raises the launch point off the box's floor.
const launchLift = 0.5

// ItemBoxConfig describes an item box and what it spills when opened.
type ItemBoxConfig struct {
	Position gamemath.Vec3
	Basis    pathing.Basis

	Amount     int
	TravelTime float64 // Seconds for the contents to reach their spots
	ArcHeight  float64
	Offset     gamemath.Vec3 // Landing spot in the box's frame: X right, Y up, Z forward
	Radius     float64       // Ring the contents spread over when Amount > 1
	Gravity    float64
}

// Item is one pooled piece of content.
type Item struct {
	Position    gamemath.Vec3
	Scale       float64
	Collectable bool // Only once it has landed
	Collected   bool

	launch trajectory.Trajectory
}

// ItemBox pools its contents at construction and moves them along
// precomputed arcs once opened.
type ItemBox struct {
	cfg   ItemBoxConfig
	items []Item

	opened  bool
	moving  bool
	elapsed float64
}

func NewItemBox(cfg ItemBoxConfig) (*ItemBox, error) {
	if cfg.Amount < 1 {
		return nil, ErrEmptyItemBox
	}
	if cfg.TravelTime <= 0 {
		cfg.TravelTime = 1
	}
	b := &ItemBox{cfg: cfg, items: make([]Item, cfg.Amount)}

	start := b.LaunchPosition()
	end := b.EndPosition()
	interval := 2 * math.Pi / float64(cfg.Amount)
	for i := range b.items {
		b.items[i].launch = trajectory.FromPoints(start, end.Add(b.spawnOffset(i, interval)), cfg.ArcHeight, false, cfg.Gravity)
	}
	b.Respawn()
	return b, nil
}

// LaunchPosition is where the contents leave the box.
func (b *ItemBox) LaunchPosition() gamemath.Vec3 {
	return b.cfg.Position.Add(b.cfg.Basis.Up.Scale(launchLift))
}

// EndPosition is the centre of the landing ring.
func (b *ItemBox) EndPosition() gamemath.Vec3 {
	o := b.cfg.Offset
	basis := b.cfg.Basis
	return b.LaunchPosition().
		Add(basis.Right.Scale(o.X)).
		Add(basis.Up.Scale(o.Y)).
		Add(basis.Forward.Scale(o.Z))
}

// spawnOffset spreads the contents around the ring, starting straight ahead.
func (b *ItemBox) spawnOffset(i int, interval float64) gamemath.Vec3 {
	if b.cfg.Amount == 1 {
		return gamemath.Vec3{}
	}
	angle := float64(i) * interval
	f, r := b.cfg.Basis.Forward, b.cfg.Basis.Right
	// Counter-clockwise seen from above
	dir := f.Scale(math.Cos(angle)).Sub(r.Scale(math.Sin(angle)))
	return dir.Scale(b.cfg.Radius)
}

// Open releases the contents. Opening an open box does nothing.
func (b *ItemBox) Open() {
	if b.opened {
		return
	}
	b.opened = true
	b.moving = true
	b.elapsed = 0
	for i := range b.items {
		b.items[i].Position = b.LaunchPosition()
		b.items[i].Collectable = false
	}
}

// Step moves the contents along their arcs, growing them as they fly.
func (b *ItemBox) Step(dt float64) {
	if !b.opened || !b.moving {
		return
	}
	b.elapsed += dt
	t := gamemath.Clamp(b.elapsed, 0, b.cfg.TravelTime) / b.cfg.TravelTime
	b.moving = t < 1

	for i := range b.items {
		item := &b.items[i]
		if item.Collected {
			continue
		}
		item.Position = item.launch.PositionRatio(t)
		item.Scale = t
		item.Collectable = t >= 1
	}
}

// Collect takes item i if it has landed.
func (b *ItemBox) Collect(i int) bool {
	if i < 0 || i >= len(b.items) {
		return false
	}
	item := &b.items[i]
	if !item.Collectable || item.Collected {
		return false
	}
	item.Collected = true
	item.Collectable = false
	return true
}

// Respawn closes the box and puts every item back inside.
func (b *ItemBox) Respawn() {
	b.opened = false
	b.moving = false
	b.elapsed = 0
	for i := range b.items {
		b.items[i].Position = b.LaunchPosition()
		b.items[i].Scale = 0
		b.items[i].Collectable = false
		b.items[i].Collected = false
	}
}

// Unload releases the pool.
func (b *ItemBox) Unload() {
	b.items = nil
	b.opened = false
	b.moving = false
}

func (b *ItemBox) Opened() bool { return b.opened }
func (b *ItemBox) Moving() bool { return b.moving }
func (b *ItemBox) Items() []Item {
	return b.items
}

// PreviewTrajectory implements preview.TrajectoryPreviewer with the first
// item's arc.
func (b *ItemBox) PreviewTrajectory() trajectory.Trajectory {
	if len(b.items) == 0 {
		return trajectory.Trajectory{}
	}
	return b.items[0].launch
}

// Trajectories returns every item's arc.
func (b *ItemBox) Trajectories() []trajectory.Trajectory {
	out := make([]trajectory.Trajectory, len(b.items))
	for i := range b.items {
		out[i] = b.items[i].launch
	}
	return out
}
