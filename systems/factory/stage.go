package factory

import (
	"github.com/automoto/escape/archetypes"
	"github.com/automoto/escape/components"
	"github.com/yohamta/donburi"
)

// CreateStage spawns the holder for the loaded stage. It stays empty until
// the first successful load.
func CreateStage(w donburi.World) *donburi.Entry {
	stage := archetypes.Stage.Spawn(w)
	components.Stage.SetValue(stage, components.StageData{Index: -1})
	return stage
}
