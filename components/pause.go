package components

// PauseZone identifies a tap zone of the HUD or pause menu. Zones are
// stored as resolv objects whose Data holds the PauseZone.
type PauseZone int

const (
	ZoneNone PauseZone = iota
	// Pauses while playing, toggles mute while paused
	ZoneButton
	ZoneContinue
	ZoneExit
)
