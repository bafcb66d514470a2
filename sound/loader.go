// Package sound plays the synthesized effects and music through ebiten.
package sound

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/sound/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Loader renders and caches the PCM of each sound and hands out players.
type Loader struct {
	pcmCache map[cfg.SoundID][]byte
	context  *audio.Context
}

func NewLoader(ctx *audio.Context) *Loader {
	return &Loader{
		pcmCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// Preload renders a sound and caches it without creating a player.
func (l *Loader) Preload(id cfg.SoundID) error {
	if _, ok := l.pcmCache[id]; ok {
		return nil
	}
	tones, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tones for sound %d", id)
	}
	pcm := synth.Render(tones, l.context.SampleRate(), 1)
	if len(pcm) == 0 {
		return fmt.Errorf("sound %d rendered empty", id)
	}
	l.pcmCache[id] = pcm
	return nil
}

// PreloadAll renders every configured sound.
func (l *Loader) PreloadAll() error {
	for id := range cfg.Sound.Tones {
		if err := l.Preload(id); err != nil {
			return err
		}
	}
	return nil
}

// LoadSFX returns a new one-shot player for a sound.
func (l *Loader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.Preload(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.pcmCache[id]), nil
}

// LoadLoop returns a player repeating a sound forever.
func (l *Loader) LoadLoop(id cfg.SoundID) (*audio.Player, error) {
	if err := l.Preload(id); err != nil {
		return nil, err
	}
	pcm := l.pcmCache[id]
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := l.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create loop player for sound %d: %w", id, err)
	}
	return player, nil
}
