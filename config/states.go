package config

// StateID identifies a player animation state
type StateID int

const (
	StateNone StateID = iota
	Idle
	Wakeup
	Running
	Jumping
	StartEndJump
	Gravity
	Dying
)

var stateNames = map[StateID]string{
	StateNone:    "none",
	Idle:         "idle",
	Wakeup:       "wakeup",
	Running:      "running",
	Jumping:      "jumping",
	StartEndJump: "start_end_jump",
	Gravity:      "gravity",
	Dying:        "dying",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
