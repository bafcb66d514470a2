package sound

import (
	"log"
	"sync"

	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var _ systems.Audio = (*Manager)(nil)

var (
	audioContext     *audio.Context
	audioContextOnce sync.Once
)

// sharedContext returns the process-wide audio context; ebiten allows
// only one.
func sharedContext() *audio.Context {
	audioContextOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return audioContext
}

// Manager is the ebiten audio backend of a session. The zero value is not
// usable; a Manager that failed to initialize or was closed ignores all
// calls.
type Manager struct {
	mu          sync.Mutex
	loader      *Loader
	initialized bool

	musicVolume float64
	sfxVolume   float64
	muted       bool

	music    *audio.Player
	loop     *audio.Player
	loopID   cfg.SoundID
	loopFade float64

	active []*audio.Player // One-shot players still playing
}

func NewManager() *Manager {
	return &Manager{
		musicVolume: cfg.Audio.DefaultMusicVol,
		sfxVolume:   cfg.Audio.DefaultSFXVol,
	}
}

// Init creates the audio context and renders every sound up front.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return nil
	}
	m.loader = NewLoader(sharedContext())
	if err := m.loader.PreloadAll(); err != nil {
		return err
	}
	m.initialized = true
	return nil
}

// Close stops and releases all players. Closing twice is harmless.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	m.closeMusic()
	m.closeLoop()
	for _, p := range m.active {
		_ = p.Close()
	}
	m.active = nil
	m.initialized = false
}

func (m *Manager) PlayEffect(id cfg.SoundID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized || m.muted || m.sfxVolume <= 0 {
		return
	}
	m.prune()

	player, err := m.loader.LoadSFX(id)
	if err != nil {
		log.Printf("Warning: Could not play sound %d: %v", id, err)
		return
	}
	player.SetVolume(m.volumeFor(id, m.sfxVolume))
	player.Play()
	m.active = append(m.active, player)
}

func (m *Manager) PlayLoop(id cfg.SoundID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	m.closeLoop()

	player, err := m.loader.LoadLoop(id)
	if err != nil {
		log.Printf("Warning: Could not play loop %d: %v", id, err)
		return
	}
	m.loop = player
	m.loopID = id
	m.loopFade = 0
	m.applyLoopVolume()
	player.Play()
}

func (m *Manager) StopLoop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLoop()
}

func (m *Manager) FadeLoop(progress float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loop == nil {
		return
	}
	m.loopFade = progress
	m.applyLoopVolume()
}

func (m *Manager) PlayMusic(id cfg.SoundID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	m.closeMusic()

	player, err := m.loader.LoadLoop(id)
	if err != nil {
		log.Printf("Warning: Could not play music %d: %v", id, err)
		return
	}
	m.music = player
	player.SetVolume(m.musicLevel())
	player.Play()
}

func (m *Manager) PauseMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.music != nil {
		m.music.Pause()
	}
}

func (m *Manager) ResumeMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.music != nil {
		m.music.Play()
	}
}

func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	if m.music != nil {
		m.music.SetVolume(m.musicLevel())
	}
	if m.loop != nil {
		m.applyLoopVolume()
	}
	if muted {
		for _, p := range m.active {
			_ = p.Close()
		}
		m.active = nil
	}
}

// SetVolumes sets the music and effect levels in [0, 1].
func (m *Manager) SetVolumes(music, sfx float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.musicVolume = clamp01(music)
	m.sfxVolume = clamp01(sfx)
	if m.music != nil {
		m.music.SetVolume(m.musicLevel())
	}
}

func (m *Manager) musicLevel() float64 {
	if m.muted {
		return 0
	}
	return m.musicVolume
}

func (m *Manager) applyLoopVolume() {
	vol := 0.0
	if !m.muted {
		vol = m.volumeFor(m.loopID, m.sfxVolume) * (1 - clamp01(m.loopFade))
	}
	m.loop.SetVolume(vol)
}

func (m *Manager) volumeFor(id cfg.SoundID, base float64) float64 {
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		return base * mult
	}
	return base
}

func (m *Manager) closeMusic() {
	if m.music != nil {
		_ = m.music.Close()
		m.music = nil
	}
}

func (m *Manager) closeLoop() {
	if m.loop != nil {
		_ = m.loop.Close()
		m.loop = nil
	}
}

// prune releases finished one-shot players.
func (m *Manager) prune() {
	live := m.active[:0]
	for _, p := range m.active {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	m.active = live
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
