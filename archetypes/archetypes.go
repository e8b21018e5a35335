package archetypes

import (
	"github.com/automoto/sandscorpion/components"
	"github.com/automoto/sandscorpion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Scorpion = newArchetype(
		tags.Scorpion,
		components.Scorpion,
		components.Health,
		components.Movement,
		components.Attack,
		components.Eye,
		components.Damage,
		components.Barrage,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Pause = newArchetype(
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
