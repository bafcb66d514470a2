package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/shared/leveldata"
	"github.com/automoto/escape/systems/factory"
	"github.com/yohamta/donburi"
)

// SessionOptions configures a new session.
type SessionOptions struct {
	// Logical screen size; defaults to config.C.
	ScreenWidth  float64
	ScreenHeight float64

	Profile components.ProfileData
}

// Session drives one player through the levels of a source. It is not safe
// for concurrent use; callers serialize Update, input and Snapshot.
type Session struct {
	world    donburi.World
	levels   leveldata.Source
	audio    Audio
	progress ProgressSink

	player  *donburi.Entry
	stage   *donburi.Entry
	session *donburi.Entry
	camera  *donburi.Entry
	profile *donburi.Entry
	zones   *donburi.Entry

	screenW, screenH float64
	looping          bool // Step loop is playing
}

func NewSession(levels leveldata.Source, audio Audio, progress ProgressSink, opts SessionOptions) *Session {
	if audio == nil {
		audio = NopAudio{}
	}
	if progress == nil {
		progress = nopProgress{}
	}
	if opts.ScreenWidth <= 0 || opts.ScreenHeight <= 0 {
		opts.ScreenWidth = float64(cfg.C.Width)
		opts.ScreenHeight = float64(cfg.C.Height)
	}

	w := donburi.NewWorld()
	s := &Session{
		world:    w,
		levels:   levels,
		audio:    audio,
		progress: progress,
		screenW:  opts.ScreenWidth,
		screenH:  opts.ScreenHeight,
	}
	s.player = factory.CreatePlayer(w)
	s.stage = factory.CreateStage(w)
	s.session = factory.CreateSession(w)
	s.camera = factory.CreateCamera(w)
	s.profile = factory.CreateProfile(w, opts.Profile)
	s.zones = factory.CreateZones(w, s.screenW, s.screenH)

	audio.SetMuted(opts.Profile.Muted)
	return s
}

// Load replaces the stage with level index and resets the attempt. On
// failure the previous state is kept and LoadFailed reports true.
func (s *Session) Load(index int) error {
	sd := components.Session.Get(s.session)

	stage, err := s.levels.Load(index)
	if err != nil {
		sd.LoadFailed = true
		sd.LoadErr = err
		log.Printf("Warning: Could not load level %d: %v", index, err)
		return fmt.Errorf("load level %d: %w", index, err)
	}

	prof := components.Profile.Get(s.profile)
	if prof.CurrentLevel != index {
		prof.CurrentLevel = index
		prof.DeathsCurrentLevel = 0
	}

	components.Stage.SetValue(s.stage, components.StageData{
		Stage: stage,
		Index: index,
		Last:  !leveldata.Has(s.levels, index+1),
	})
	*sd = components.SessionData{
		Iris:       factory.NewIris(),
		IrisRadius: cfg.Session.IrisStart,
	}

	components.Player.SetValue(s.player, factory.SpawnPlayer(stage))
	st := components.State.Get(s.player)
	SetState(st, cfg.Idle)
	st.Invisible = false
	UpdateState(st, components.Player.Get(s.player), 0)

	s.stopLoop()
	s.audio.PlayMusic(cfg.MusicLevel)

	components.Camera.Get(s.camera).Position.Y = 0
	s.updateCamera()
	return nil
}

// Reload loads the current level again, e.g. after its file changed.
func (s *Session) Reload() error {
	sd := components.Stage.Get(s.stage)
	if sd.Stage == nil {
		return nil
	}
	return s.Load(sd.Index)
}

// Retry restarts the current level from the spawn point. Counters are left
// alone; the death was counted when it happened.
func (s *Session) Retry() {
	stage := components.Stage.Get(s.stage).Stage
	if stage == nil {
		return
	}
	sd := components.Session.Get(s.session)
	sd.Started = true
	sd.Paused = false
	sd.Fade = components.FadeData{}

	components.Player.SetValue(s.player, factory.SpawnPlayer(stage))
	st := components.State.Get(s.player)
	SetState(st, cfg.Wakeup)
	st.Invisible = false

	s.audio.ResumeMusic()
	s.updateCamera()
}

// Update advances the session by dt seconds.
func (s *Session) Update(dt float64) {
	if components.Stage.Get(s.stage).Stage == nil {
		return
	}
	dt = clampDelta(dt)

	sd := components.Session.Get(s.session)
	p := components.Player.Get(s.player)
	st := components.State.Get(s.player)

	s.updateFade(sd, dt)
	if !sd.Paused {
		UpdateState(st, p, dt)
	}

	if !sd.Started || sd.Paused || p.Over() {
		return
	}
	if !sd.IrisOpen {
		updateIris(sd, dt)
		return
	}

	s.step(dt)
	if p.Status != components.StatusInputLocked {
		s.updateCamera()
	}
}

func (s *Session) TogglePause() {
	if components.Session.Get(s.session).Paused {
		s.resume()
		return
	}
	s.pause()
}

// ToggleMute flips the profile's mute flag and persists it.
func (s *Session) ToggleMute() {
	prof := components.Profile.Get(s.profile)
	prof.Muted = !prof.Muted
	s.audio.SetMuted(prof.Muted)
	s.progress.SaveProfile(*prof)
}

// Exited reports whether the player left the session.
func (s *Session) Exited() bool {
	return components.Session.Get(s.session).Exited
}

// Completed reports whether the last level of the source was finished.
func (s *Session) Completed() bool {
	return components.Session.Get(s.session).Completed
}

// LoadFailed reports whether the most recent Load failed.
func (s *Session) LoadFailed() bool {
	return components.Session.Get(s.session).LoadFailed
}

// LoadErr returns the error of the most recent failed Load.
func (s *Session) LoadErr() error {
	return components.Session.Get(s.session).LoadErr
}

// Profile returns a copy of the session's profile.
func (s *Session) Profile() components.ProfileData {
	return *components.Profile.Get(s.profile)
}

func (s *Session) start() {
	sd := components.Session.Get(s.session)
	sd.Started = true
	SetState(components.State.Get(s.player), cfg.Wakeup)
	s.audio.PlayEffect(cfg.SoundButton)
}

func (s *Session) kill() {
	p := components.Player.Get(s.player)
	p.Status = components.StatusDead
	st := components.State.Get(s.player)
	SetState(st, cfg.Dying)
	st.Invisible = false

	s.stopLoop()
	s.audio.PauseMusic()
	s.audio.PlayEffect(cfg.SoundDeath)
	s.audio.PlayEffect(cfg.MusicDeath)

	prof := components.Profile.Get(s.profile)
	prof.DeathsCurrentLevel++
	prof.DeathsTotal++
	s.progress.SaveProfile(*prof)

	c := cfg.Session
	components.Session.Get(s.session).Fade = factory.NewFade(components.FadeDeath, c.DeathFadeDelay, c.DeathFadeDuration, 255)
}

func (s *Session) finish() {
	p := components.Player.Get(s.player)
	p.Status = components.StatusFinished
	st := components.State.Get(s.player)
	SetState(st, cfg.Dying)
	st.Invisible = false

	s.stopLoop()

	stage := components.Stage.Get(s.stage)
	index := stage.Index
	prof := components.Profile.Get(s.profile)
	s.progress.RecordHighscore(components.Highscore{
		Name:   prof.Name,
		Level:  index,
		Deaths: prof.DeathsCurrentLevel,
	})
	prof.CurrentLevel = index + 1
	prof.DeathsCurrentLevel = 0
	s.progress.SaveProfile(*prof)

	sd := components.Session.Get(s.session)
	sd.Fade = factory.NewFade(components.FadeFinish, 0, cfg.Session.FinishFadeDuration, 255)
	sd.Completed = stage.Last
}

// lockInput takes control away from the player ahead of the finish line.
func (s *Session) lockInput() {
	p := components.Player.Get(s.player)
	if p.Status != components.StatusInputLocked {
		s.audio.PauseMusic()
		s.audio.PlayEffect(cfg.MusicFinish)
		components.Session.Get(s.session).Fade = factory.NewFade(components.FadeInputLock, 0, cfg.Session.InputLockFadeDuration, 255)
	}
	p.Status = components.StatusInputLocked
	p.Gravity = 1
	p.VY = 0
}

// advance moves on after a finished level.
func (s *Session) advance() {
	sd := components.Session.Get(s.session)
	if sd.Completed {
		sd.Exited = true
		return
	}
	next := components.Stage.Get(s.stage).Index + 1
	if err := s.Load(next); errors.Is(err, leveldata.ErrNoSuchLevel) {
		sd.Completed = true
	}
}

func (s *Session) startLoop() {
	if s.looping {
		return
	}
	s.looping = true
	s.audio.PlayLoop(cfg.SoundSteps)
}

func (s *Session) stopLoop() {
	s.looping = false
	s.audio.StopLoop()
}

func clampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > cfg.Physics.MaxFrameDelta {
		return cfg.Physics.MaxFrameDelta
	}
	return dt
}
