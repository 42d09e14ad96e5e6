// Package audio plays short sound cues for game events.
// Sound is optional: when the speaker cannot be opened every call is a no-op
// and the game runs silently.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone of a cue.
type note struct {
	freq     float64
	duration time.Duration
}

var (
	eatCue       = []note{{660, 40 * time.Millisecond}, {990, 60 * time.Millisecond}}
	crashCue     = []note{{220, 120 * time.Millisecond}, {147, 120 * time.Millisecond}, {98, 220 * time.Millisecond}}
	boardFullCue = []note{{523, 80 * time.Millisecond}, {659, 80 * time.Millisecond}, {784, 80 * time.Millisecond}, {1047, 200 * time.Millisecond}}
	restartCue   = []note{{440, 50 * time.Millisecond}}
)

// SoundManager mixes cues into a single speaker stream.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with the given volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

// Initialize opens the speaker. A failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether cues are actually played.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Handle plays the cue for each event of a step.
func (sm *SoundManager) Handle(events []core.Event) {
	for _, ev := range events {
		switch ev {
		case core.EventAte:
			sm.play(eatCue)
		case core.EventCrashed:
			sm.play(crashCue)
		case core.EventBoardFull:
			sm.play(boardFullCue)
		case core.EventRestarted:
			sm.play(restartCue)
		}
	}
}

func (sm *SoundManager) play(cue []note) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := cueStreamer(cue, sm.volume)
	if err != nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the speaker.
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

// cueStreamer renders a cue as a finite stream of sine tones.
func cueStreamer(cue []note, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(cue))
	for _, n := range cue {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.0fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), tone))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is
// handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
