package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/botrun/internal/core"
)

// TestSoundManagerGracefulDegradation verifies cues don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(core.EventJump)
	sm.PlayAll([]core.Event{core.EventPowerUp, core.EventGameOver})
	sm.Cleanup()
}

// TestSoundManagerCleanupReleasesDevice needs an audio device and skips without one
func TestSoundManagerCleanupReleasesDevice(t *testing.T) {
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		t.Skipf("no audio device: %v", err)
	}

	sm.Play(core.EventJump)
	sm.Cleanup()
	if sm.initialized {
		t.Fatal("Cleanup() should leave the manager uninitialized")
	}

	// A released device can be opened again
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize() after Cleanup() = %v", err)
	}
	sm.Cleanup()
	sm.Cleanup()
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager()

	if sm.Muted() {
		t.Fatal("new manager should not be muted")
	}
	if !sm.ToggleMute() || !sm.Muted() {
		t.Error("ToggleMute() should mute")
	}
	sm.SetMuted(false)
	if sm.Muted() {
		t.Error("SetMuted(false) should unmute")
	}
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		ev   core.Event
		want time.Duration
	}{
		{core.EventJump, 120 * time.Millisecond},
		{core.EventPowerUp, 220 * time.Millisecond},
		{core.EventGameOver, 600 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.ev.String(), func(t *testing.T) {
			s := Cue(tc.ev)
			if s == nil {
				t.Fatal("Cue() returned nil")
			}
			got := drain(s)
			if want := sampleRate.N(tc.want); got != want {
				t.Errorf("cue length = %d samples, expected %d", got, want)
			}
		})
	}
}

func TestCueUnknownEvent(t *testing.T) {
	if Cue(core.Event(99)) != nil {
		t.Error("unknown event should have no cue")
	}
}

func TestChirpStaysInRange(t *testing.T) {
	g := NewChirpGenerator(sampleRate, 300, 700, 100*time.Millisecond)
	buf := make([][2]float64, 512)
	for i := 0; i < 20; i++ {
		n, ok := g.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("Stream() = (%d, %v)", n, ok)
		}
		for _, s := range buf {
			if s[0] > 1 || s[0] < -1 {
				t.Fatalf("sample %v out of range", s[0])
			}
		}
	}
}

// drain counts the samples a finite streamer produces.
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}
