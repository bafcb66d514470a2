// Package synth renders the game's sound effects from tone lists.
package synth

import (
	"encoding/binary"
	"time"

	cfg "github.com/automoto/escape/config"
	"github.com/gopxl/beep"
)

// BytesPerSample is the size of one stereo 16-bit frame.
const BytesPerSample = 4

// Build mixes the tones of one sound into a single streamer. Each tone
// starts after its offset.
func Build(tones []cfg.Tone, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		osc := NewOscillator(t.Freq, t.Duration, t.Wave, rate)
		shaped := NewEnvelope(osc, t.Duration, t.Attack, t.Release, rate)
		note := newVolume(shaped, t.Volume)
		if t.Offset > 0 {
			note = beep.Seq(beep.Silence(rate.N(t.Offset)), note)
		}
		parts = append(parts, note)
	}
	return beep.Mix(parts...)
}

// Length returns the sound's length in samples.
func Length(tones []cfg.Tone, rate beep.SampleRate) int {
	var end time.Duration
	for _, t := range tones {
		if e := t.Offset + t.Duration; e > end {
			end = e
		}
	}
	return rate.N(end)
}

// Render synthesizes tones as interleaved little-endian 16-bit stereo PCM,
// scaled by volume.
func Render(tones []cfg.Tone, sampleRate int, volume float64) []byte {
	rate := beep.SampleRate(sampleRate)
	total := Length(tones, rate)
	if total == 0 {
		return nil
	}

	s := beep.Take(total, newVolume(Build(tones, rate), volume))
	out := make([]byte, total*BytesPerSample)
	buf := make([][2]float64, 512)

	for pos := 0; pos < total; {
		chunk := buf
		if rest := total - pos; rest < len(chunk) {
			chunk = chunk[:rest]
		}
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			putFrame(out[(pos+i)*BytesPerSample:], chunk[i])
		}
		pos += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func putFrame(b []byte, f [2]float64) {
	binary.LittleEndian.PutUint16(b[0:], uint16(toInt16(f[0])))
	binary.LittleEndian.PutUint16(b[2:], uint16(toInt16(f[1])))
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}
