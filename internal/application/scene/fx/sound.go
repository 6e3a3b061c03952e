package fx

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/arcade/internal/infrastructure/logger"
)

// SampleRate of every generated sound
const SampleRate = 44100

// Tone is one synthesized note: a square wave with a linear release.
type Tone struct {
	Freq     float64
	Duration float64 // seconds
	Volume   float64
	Slide    float64 // Hz added over the whole note
}

// Stock tones
var (
	ToneAttack   = Tone{Freq: 660, Duration: 0.06, Volume: 0.15, Slide: -220}
	ToneKill     = Tone{Freq: 220, Duration: 0.15, Volume: 0.2, Slide: -140}
	ToneRupee    = Tone{Freq: 988, Duration: 0.08, Volume: 0.15, Slide: 330}
	ToneKey      = Tone{Freq: 523, Duration: 0.3, Volume: 0.2, Slide: 523}
	ToneHurt     = Tone{Freq: 150, Duration: 0.12, Volume: 0.25}
	ToneGameOver = Tone{Freq: 330, Duration: 0.8, Volume: 0.2, Slide: -250}
	ToneKick     = Tone{Freq: 120, Duration: 0.07, Volume: 0.25, Slide: -60}
	ToneDash     = Tone{Freq: 440, Duration: 0.05, Volume: 0.1, Slide: 440}
)

// Synthesize renders t as 16-bit little-endian stereo PCM.
func Synthesize(t Tone) []byte {
	n := int(t.Duration * SampleRate)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Freq + t.Slide*progress

		v := 1.0
		if phase >= 0.5 {
			v = -1.0
		}
		v *= t.Volume * (1 - progress)

		s := int16(v * math.MaxInt16)
		buf[4*i] = byte(s)
		buf[4*i+1] = byte(s >> 8)
		buf[4*i+2] = byte(s)
		buf[4*i+3] = byte(s >> 8)

		phase += freq / SampleRate
		phase -= math.Floor(phase)
	}
	return buf
}

var (
	contextOnce sync.Once
	audioCtx    *audio.Context
)

func audioContext() *audio.Context {
	contextOnce.Do(func() {
		audioCtx = audio.CurrentContext()
		if audioCtx == nil {
			audioCtx = audio.NewContext(SampleRate)
		}
	})
	return audioCtx
}

// Sounds plays cached tones. A nil *Sounds is silent.
type Sounds struct {
	cache map[Tone][]byte
}

// NewSounds creates a sound bank on the process-wide audio context
func NewSounds() *Sounds {
	audioContext()
	return &Sounds{cache: make(map[Tone][]byte)}
}

// Play starts t from the beginning
func (s *Sounds) Play(t Tone) {
	if s == nil {
		return
	}
	pcm, ok := s.cache[t]
	if !ok {
		pcm = Synthesize(t)
		s.cache[t] = pcm
	}
	p := audioContext().NewPlayerFromBytes(pcm)
	p.Play()
	logger.Component("fx").WithField("freq", t.Freq).Trace("Tone")
}
