package components

import (
	"github.com/automoto/escape/shared/leveldata"
	"github.com/yohamta/donburi"
)

type StageData struct {
	Stage *leveldata.Stage
	Index int
	Last  bool // No level follows Index in the source
}

var Stage = donburi.NewComponentType[StageData]()
