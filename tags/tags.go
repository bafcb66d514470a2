package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Stage   = donburi.NewTag().SetName("Stage")
	Session = donburi.NewTag().SetName("Session")
	Camera  = donburi.NewTag().SetName("Camera")
	Profile = donburi.NewTag().SetName("Profile")
)

// Resolv tags for tap zones
const (
	ResolvZone      = "zone"
	ResolvHUD       = "hud"
	ResolvPauseMenu = "pausemenu"
)
