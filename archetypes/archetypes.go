package archetypes

import (
	"github.com/automoto/escape/components"
	"github.com/automoto/escape/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.State,
	)
	Stage = newArchetype(
		tags.Stage,
		components.Stage,
	)
	Session = newArchetype(
		tags.Session,
		components.Session,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Profile = newArchetype(
		tags.Profile,
		components.Profile,
	)
	Space = newArchetype(
		components.Space,
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

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
