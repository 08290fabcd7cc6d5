package archetypes

import (
	"github.com/automoto/tmx-explorer/components"
	cfg "github.com/automoto/tmx-explorer/config"
	"github.com/automoto/tmx-explorer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Character,
		components.Object,
		components.Sprite,
	)
	NPC = newArchetype(
		tags.NPC,
		components.Character,
		components.NPC,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	World = newArchetype(
		components.World,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Viewer = newArchetype(
		components.Viewer,
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
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
