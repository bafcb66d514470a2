package config

import "time"

// SoundID represents a logical sound effect or music track
type SoundID int

const (
	SoundNone SoundID = iota
	// UI sounds
	SoundButton
	// Movement sounds
	SoundSteps
	SoundJump
	SoundGravityUp
	SoundGravityDown
	// Outcome sounds
	SoundDeath
	// Music
	MusicLevel
	MusicDeath
	MusicFinish
)

// Wave is an oscillator shape used by the sound synthesizer
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone is one synthesized note: a wave at a frequency shaped by an
// attack/release envelope
type Tone struct {
	Wave     Wave
	Freq     float64
	Offset   time.Duration // Start time within the sound
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Volume   float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to the tones they are synthesized from
type SoundConfig struct {
	Tones             map[SoundID][]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   1.0,
	}

	ms := time.Millisecond
	Sound = SoundConfig{
		Tones: map[SoundID][]Tone{
			SoundButton: {
				{Wave: WaveSquare, Freq: 660, Duration: 60 * ms, Attack: 5 * ms, Release: 40 * ms, Volume: 0.4},
			},
			SoundSteps: {
				{Wave: WaveNoise, Duration: 40 * ms, Attack: 2 * ms, Release: 30 * ms, Volume: 0.25},
				{Wave: WaveNoise, Offset: 166 * ms, Duration: 40 * ms, Attack: 2 * ms, Release: 30 * ms, Volume: 0.2},
				{Wave: WaveSine, Offset: 332 * ms, Duration: 10 * ms, Volume: 0},
			},
			SoundJump: {
				{Wave: WaveSquare, Freq: 392, Duration: 80 * ms, Attack: 5 * ms, Release: 60 * ms, Volume: 0.35},
				{Wave: WaveSquare, Freq: 587, Offset: 40 * ms, Duration: 80 * ms, Attack: 5 * ms, Release: 60 * ms, Volume: 0.3},
			},
			SoundGravityUp: {
				{Wave: WaveSine, Freq: 440, Duration: 90 * ms, Attack: 10 * ms, Release: 50 * ms, Volume: 0.4},
				{Wave: WaveSine, Freq: 880, Offset: 60 * ms, Duration: 90 * ms, Attack: 10 * ms, Release: 60 * ms, Volume: 0.35},
			},
			SoundGravityDown: {
				{Wave: WaveSine, Freq: 880, Duration: 90 * ms, Attack: 10 * ms, Release: 50 * ms, Volume: 0.4},
				{Wave: WaveSine, Freq: 440, Offset: 60 * ms, Duration: 90 * ms, Attack: 10 * ms, Release: 60 * ms, Volume: 0.35},
			},
			SoundDeath: {
				{Wave: WaveSaw, Freq: 110, Duration: 250 * ms, Attack: 5 * ms, Release: 200 * ms, Volume: 0.5},
				{Wave: WaveNoise, Duration: 150 * ms, Attack: 2 * ms, Release: 120 * ms, Volume: 0.3},
			},
			MusicLevel: {
				{Wave: WaveSine, Freq: 220, Duration: 400 * ms, Attack: 20 * ms, Release: 200 * ms, Volume: 0.3},
				{Wave: WaveSine, Freq: 277, Offset: 400 * ms, Duration: 400 * ms, Attack: 20 * ms, Release: 200 * ms, Volume: 0.3},
				{Wave: WaveSine, Freq: 330, Offset: 800 * ms, Duration: 400 * ms, Attack: 20 * ms, Release: 200 * ms, Volume: 0.3},
				{Wave: WaveSine, Freq: 277, Offset: 1200 * ms, Duration: 400 * ms, Attack: 20 * ms, Release: 200 * ms, Volume: 0.3},
			},
			MusicDeath: {
				{Wave: WaveSquare, Freq: 330, Duration: 200 * ms, Attack: 10 * ms, Release: 100 * ms, Volume: 0.3},
				{Wave: WaveSquare, Freq: 262, Offset: 200 * ms, Duration: 200 * ms, Attack: 10 * ms, Release: 100 * ms, Volume: 0.3},
				{Wave: WaveSquare, Freq: 196, Offset: 400 * ms, Duration: 500 * ms, Attack: 10 * ms, Release: 400 * ms, Volume: 0.3},
			},
			MusicFinish: {
				{Wave: WaveSquare, Freq: 523, Duration: 150 * ms, Attack: 10 * ms, Release: 80 * ms, Volume: 0.3},
				{Wave: WaveSquare, Freq: 659, Offset: 150 * ms, Duration: 150 * ms, Attack: 10 * ms, Release: 80 * ms, Volume: 0.3},
				{Wave: WaveSquare, Freq: 784, Offset: 300 * ms, Duration: 600 * ms, Attack: 10 * ms, Release: 450 * ms, Volume: 0.3},
			},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundSteps: 0.6,
		},
	}
}
