package factory

import (
	"log"

	"github.com/automoto/sandscorpion/archetypes"
	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/config"
	"github.com/automoto/sandscorpion/opponent"
	"github.com/automoto/sandscorpion/shared/pathing"
	"github.com/automoto/sandscorpion/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScorpion spawns a boss on path facing opp, together with its
// missile pool. Tuning problems that would break a feature are logged once
// and turn that feature off.
func CreateScorpion(ecs *ecs.ECS, tuning *config.ScorpionConfig, path pathing.Path, opp opponent.Proxy) *donburi.Entry {
	if tuning == nil {
		tuning = config.Scorpion.Clone()
	}

	var extra []donburi.IComponentType
	if tuning.Sensor.Enabled {
		extra = append(extra, components.Sensor)
	}
	scorpion := archetypes.Scorpion.Spawn(ecs, extra...)

	components.Scorpion.SetValue(scorpion, components.ScorpionData{
		Tuning:   tuning, // Cache the config reference
		Path:     path,
		Opponent: opp,
	})
	if tuning.Sensor.Enabled {
		components.Sensor.SetValue(scorpion, systems.NewSensor(&tuning.Sensor))
	}

	barrage := components.BarrageData{Enabled: tuning.Barrage.Enabled}
	switch {
	case !tuning.Barrage.Enabled:
	case len(tuning.Barrage.Emitters) == 0:
		log.Println("Warning: Sand scorpion has no missile emitters, barrage disabled")
		barrage.Enabled = false
	case tuning.Barrage.MaxProjectiles <= 0:
		log.Println("Warning: Sand scorpion missile pool is empty, barrage disabled")
		barrage.Enabled = false
	default:
		barrage.Pool = CreateProjectilePool(ecs, scorpion.Entity(), tuning.Barrage.MaxProjectiles)
	}
	components.Barrage.SetValue(scorpion, barrage)

	systems.ResetScorpion(ecs.World, scorpion)
	return scorpion
}

// CreateProjectilePool creates every missile a boss will ever fire.
func CreateProjectilePool(ecs *ecs.ECS, owner donburi.Entity, size int) []donburi.Entity {
	pool := make([]donburi.Entity, 0, size)
	for i := 0; i < size; i++ {
		missile := archetypes.Projectile.Spawn(ecs)
		components.Projectile.SetValue(missile, components.ProjectileData{
			Owner: owner,
			Slot:  i,
		})
		pool = append(pool, missile.Entity())
	}
	return pool
}
