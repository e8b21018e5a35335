package systems

import (
	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/shared/gamemath"
	"github.com/automoto/sandscorpion/shared/pathing"
	"github.com/automoto/sandscorpion/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sensorUnit is the number of resolv units per world unit. resolv sizes
// cell spans in whole units, so sub-unit volumes need the finer grid to
// land in every cell they touch.
const sensorUnit = 16

// NewSensor builds the overlap space for one boss. Region volumes come from
// the tuning; the front volume follows the flying eye at runtime.
func NewSensor(c *config.SensorConfig) components.SensorData {
	size := 2 * c.Extent * sensorUnit
	cell := c.CellSize * sensorUnit
	space := resolv.NewSpace(size, size, cell, cell)

	var sensor components.SensorData
	sensor.Space = space
	for r := config.HitRegion(0); r < config.RegionCount; r++ {
		rect := c.RegionRect(r)
		w, h := rect.Width*sensorUnit, rect.Length*sensorUnit
		obj := resolv.NewObject(0, 0, w, h, tags.ResolvRegion, r.String())
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		obj.Data = r
		placeRect(obj, c.Extent, rect.Lateral, rect.Along)
		space.Add(obj)
		sensor.Regions[r] = obj
	}

	side := c.OpponentSize * sensorUnit
	sensor.Opponent = resolv.NewObject(0, 0, side, side, tags.ResolvOpponent)
	sensor.Opponent.SetShape(resolv.NewRectangle(0, 0, side, side))
	placeRect(sensor.Opponent, c.Extent, float64(-4*c.Extent), 0) // Parked outside the space
	space.Add(sensor.Opponent)
	return sensor
}

// placeRect centres obj on a boss-space point given in world units.
func placeRect(obj *resolv.Object, extent int, lateral, along float64) {
	obj.X = (float64(extent)+lateral)*sensorUnit - obj.W/2
	obj.Y = (float64(extent)+along)*sensorUnit - obj.H/2
	obj.Update()
}

// UpdateHitSensors moves the opponent and the flying eye through the sensor
// space and turns overlap changes into region enter and exit calls.
func UpdateHitSensors(e *ecs.ECS) {
	eachActing(e.World, func(entry *donburi.Entry, s *components.ScorpionData) {
		if !s.Tuning.Sensor.Enabled || !entry.HasComponent(components.Sensor) {
			return
		}
		sensor := components.Sensor.Get(entry)
		m := components.Movement.Get(entry)
		extent := s.Tuning.Sensor.Extent

		opp := s.Opponent
		along := pathing.Delta(s.Path, m.Progress, opp.Progress())
		placeRect(sensor.Opponent, extent, OpponentLateral(s.Path, opp), along)

		eye := components.Eye.Get(entry)
		eyeLateral, eyeAlong := bossSpace(s.Path, m, eye.Position)
		front := s.Tuning.Sensor.Front
		placeRect(sensor.Regions[config.RegionFront], extent, eyeLateral+front.Lateral, eyeAlong+front.Along)

		var inside [config.RegionCount]bool
		if check := sensor.Opponent.Check(0, 0, tags.ResolvRegion); check != nil {
			for _, obj := range check.Objects {
				r, ok := obj.Data.(config.HitRegion)
				if !ok || !overlaps(sensor.Opponent, obj) {
					continue
				}
				inside[r] = true
			}
		}

		d := components.Damage.Get(entry)
		for r := config.HitRegion(0); r < config.RegionCount; r++ {
			switch {
			case inside[r] && !sensor.Inside[r]:
				EnterRegion(d, r)
			case !inside[r] && sensor.Inside[r]:
				ExitRegion(d, r)
			}
		}
		sensor.Inside = inside
	})
}

// bossSpace projects a world point into the boss's lateral/along frame.
func bossSpace(path pathing.Path, m *components.MovementData, p gamemath.Vec3) (float64, float64) {
	basis := path.Basis(m.Progress)
	delta := p.Sub(m.Position).Flatten()
	return delta.Dot(basis.Right), delta.Dot(basis.Forward)
}

// overlaps is the exact rectangle test behind the space's cell query.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// releaseSensor clears overlap bookkeeping so a respawned boss starts with
// no regions entered.
func releaseSensor(sensor *components.SensorData, extent int) {
	sensor.Inside = [config.RegionCount]bool{}
	if sensor.Opponent != nil {
		placeRect(sensor.Opponent, extent, float64(-4*extent), 0)
	}
}
