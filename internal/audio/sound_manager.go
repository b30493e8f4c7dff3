// Package audio renders simulation cues as short synthesized sounds.
// Audio is optional: every call is a no-op until Initialize succeeds.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/botrun/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays cue sounds through a single speaker mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	volume      float64 // Linear gain, 1.0 = unchanged
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 0.6,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the audio device. Initialize may
// be called again afterwards.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// SetMuted silences or restores cue playback.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute flag and returns the new value.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether playback is muted.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play renders the sound for a simulation event.
func (sm *SoundManager) Play(ev core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := Cue(ev)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(streamer, sm.volume))
	speaker.Unlock()
}

// PlayAll renders every event of a step in order.
func (sm *SoundManager) PlayAll(events []core.Event) {
	for _, ev := range events {
		sm.Play(ev)
	}
}

// Cue builds the finite streamer for an event, or nil for unknown events.
func Cue(ev core.Event) beep.Streamer {
	switch ev {
	case core.EventJump:
		return beep.Take(sampleRate.N(time.Millisecond*120), NewChirpGenerator(sampleRate, 300, 700, time.Millisecond*120))
	case core.EventPowerUp:
		return beep.Seq(tone(660, 80*time.Millisecond), tone(990, 140*time.Millisecond))
	case core.EventGameOver:
		return beep.Seq(
			tone(440, 150*time.Millisecond),
			tone(330, 150*time.Millisecond),
			tone(220, 300*time.Millisecond),
		)
	default:
		return nil
	}
}

// tone returns a sine note of the given length with a short fade-out.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	n := sampleRate.N(d)
	return &fadeOut{streamer: beep.Take(n, sine), total: n}
}

// withVolume scales a streamer by a linear gain.
// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// fadeOut applies a linear release over the last fifth of a finite streamer.
type fadeOut struct {
	streamer beep.Streamer
	total    int
	pos      int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	release := f.total / 5
	for i := 0; i < n; i++ {
		remaining := f.total - f.pos
		if release > 0 && remaining < release {
			gain := float64(remaining) / float64(release)
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }

// ChirpGenerator sweeps a sine from one frequency to another.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewChirpGenerator creates a rising or falling sweep of the given length.
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*progress

		// Integrate phase so the sweep stays continuous
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := 1 - progress
		sample := 0.25 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}
