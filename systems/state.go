package systems

import (
	"math"

	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
)

// SetState switches the animation state and restarts its clock.
func SetState(st *components.StateData, id cfg.StateID) {
	st.PreviousState = st.CurrentState
	st.CurrentState = id
	st.StateTimer = 0
}

// UpdateState advances the animation clock by dt seconds, resolves the
// timed transitions and derives the sprite frame and flip flags.
func UpdateState(st *components.StateData, p *components.PlayerData, dt float64) {
	a := cfg.Animation
	st.StateTimer += dt

	switch st.CurrentState {
	case cfg.Wakeup:
		if st.StateTimer > a.FrameTime*float64(a.WakeupFrames) {
			SetState(st, footingState(p))
		}
	case cfg.StartEndJump:
		if st.StateTimer > a.FrameTime*float64(a.StartEndJumpFrames) {
			next := cfg.Jumping
			if st.PreviousState == cfg.Jumping {
				next = cfg.Running
			}
			// A landing or take-off may have happened inside the transition.
			if (next == cfg.Running) == p.InAir() {
				next = footingState(p)
			}
			SetState(st, next)
		}
	case cfg.Gravity:
		if st.StateTimer > a.FrameTime*float64(a.GravityFrames) {
			SetState(st, footingState(p))
		}
	case cfg.Dying:
		st.Invisible = st.StateTimer > a.FrameTime*float64(a.DyingVisibleFrames)
	}

	if !st.Invisible {
		st.Frame = frameIndex(st, p)
	}
	st.FlipX = p.VX < 0
	st.FlipY = p.Gravity < 0 && flipsWithGravity(st.CurrentState)
}

// OnGrounded plays the landing transition after a jump.
func OnGrounded(st *components.StateData) {
	if st.CurrentState == cfg.Jumping {
		SetState(st, cfg.StartEndJump)
	}
}

// OnAirborne plays the take-off transition when running off a ledge.
func OnAirborne(st *components.StateData) {
	if st.CurrentState == cfg.Running {
		SetState(st, cfg.StartEndJump)
	}
}

func footingState(p *components.PlayerData) cfg.StateID {
	if p.InAir() {
		return cfg.Jumping
	}
	return cfg.Running
}

func frameIndex(st *components.StateData, p *components.PlayerData) int {
	a := cfg.Animation

	var clip cfg.Clip
	switch st.CurrentState {
	case cfg.Jumping:
		clip = a.JumpDown
		if p.VY*p.Gravity < 0 {
			clip = a.JumpUp
		}
	case cfg.Gravity:
		clip = a.GravityDown
		if p.Gravity < 0 {
			clip = a.GravityUp
		}
	default:
		c, ok := a.Clips[st.CurrentState]
		if !ok {
			return st.Frame
		}
		clip = c
	}

	n := int(math.Floor(st.StateTimer / a.FrameTime))
	return clip.Base + n%clip.Count
}

func flipsWithGravity(id cfg.StateID) bool {
	switch id {
	case cfg.Running, cfg.Jumping, cfg.StartEndJump, cfg.Dying:
		return true
	}
	return false
}
