package config

// Clip is a run of frames in the player sprite sheet
type Clip struct {
	Base  int
	Count int
}

// AnimationConfig holds the player sprite sheet layout and timings
type AnimationConfig struct {
	FrameTime float64 // Seconds per frame

	Clips map[StateID]Clip

	// Sub-clips selected by vertical direction relative to gravity
	JumpUp      Clip
	JumpDown    Clip
	GravityUp   Clip // Gravity inverted
	GravityDown Clip

	// Durations in frames
	WakeupFrames       int
	StartEndJumpFrames int
	GravityFrames      int
	DyingVisibleFrames int
}

var Animation AnimationConfig

func init() {
	Animation = AnimationConfig{
		FrameTime: 0.083,

		Clips: map[StateID]Clip{
			Idle:         {Base: 8, Count: 11},
			Wakeup:       {Base: 20, Count: 8},
			Running:      {Base: 42, Count: 6},
			StartEndJump: {Base: 36, Count: 3},
			Dying:        {Base: 0, Count: 8},
		},
		JumpUp:      Clip{Base: 39, Count: 3},
		JumpDown:    Clip{Base: 34, Count: 2},
		GravityUp:   Clip{Base: 31, Count: 3},
		GravityDown: Clip{Base: 28, Count: 3},

		WakeupFrames:       8,
		StartEndJumpFrames: 2,
		GravityFrames:      3,
		DyingVisibleFrames: 7,
	}
}
