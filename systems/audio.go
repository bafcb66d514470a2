package systems

import cfg "github.com/automoto/escape/config"

// Audio is the sound backend driven by the session. Implementations must
// tolerate calls in any order, including before any sound was loaded.
type Audio interface {
	PlayEffect(id cfg.SoundID)

	// PlayLoop starts a looping effect, replacing any running loop.
	PlayLoop(id cfg.SoundID)
	StopLoop()
	// FadeLoop scales the loop volume down; progress runs from 0 to 1.
	FadeLoop(progress float64)

	PlayMusic(id cfg.SoundID)
	PauseMusic()
	ResumeMusic()

	SetMuted(muted bool)
}

// NopAudio discards all sound requests.
type NopAudio struct{}

func (NopAudio) PlayEffect(cfg.SoundID) {}
func (NopAudio) PlayLoop(cfg.SoundID)   {}
func (NopAudio) StopLoop()              {}
func (NopAudio) FadeLoop(float64)       {}
func (NopAudio) PlayMusic(cfg.SoundID)  {}
func (NopAudio) PauseMusic()            {}
func (NopAudio) ResumeMusic()           {}
func (NopAudio) SetMuted(bool)          {}
