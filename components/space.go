package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space holds the screen-space tap zones.
var Space = donburi.NewComponentType[resolv.Space]()
