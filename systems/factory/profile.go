package factory

import (
	"github.com/automoto/escape/archetypes"
	"github.com/automoto/escape/components"
	"github.com/yohamta/donburi"
)

func CreateProfile(w donburi.World, p components.ProfileData) *donburi.Entry {
	profile := archetypes.Profile.Spawn(w)
	components.Profile.SetValue(profile, p)
	return profile
}
