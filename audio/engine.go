// Package audio synthesizes the game's three cues as short sine tones.
// Audio is strictly fire-and-forget: if the speaker cannot be initialized
// the engine flips a disabled flag and every later call becomes a no-op,
// so missing audio hardware never reaches game logic.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/Ramprajapat28/DhanMunch/core"
)

// cue describes one synthesized tone
type cue struct {
	freq     float64
	duration time.Duration
}

// cues maps each sound type to its tone
var cues = [core.SoundTypeCount]cue{
	core.SoundSuccess:  {freq: 880, duration: 60 * time.Millisecond},
	core.SoundFailure:  {freq: 220, duration: 90 * time.Millisecond},
	core.SoundGameOver: {freq: 440, duration: 350 * time.Millisecond},
}

// Engine plays cues through the system speaker
type Engine struct {
	sampleRate beep.SampleRate
	disabled   atomic.Bool
	muted      atomic.Bool
}

// NewEngine initializes the speaker; on failure the engine comes up
// disabled rather than returning an error
func NewEngine(muted bool) *Engine {
	e := &Engine{sampleRate: beep.SampleRate(44100)}
	e.muted.Store(muted)
	if err := speaker.Init(e.sampleRate, e.sampleRate.N(time.Second/10)); err != nil {
		e.disabled.Store(true)
	}
	return e
}

// Play fires the cue for the given sound type and returns immediately
func (e *Engine) Play(st core.SoundType) {
	if e.disabled.Load() || e.muted.Load() {
		return
	}
	if st < 0 || st >= core.SoundTypeCount {
		return
	}

	c := cues[st]
	tone, err := generators.SineTone(e.sampleRate, c.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(e.sampleRate.N(c.duration), tone))
}

// ToggleMute flips the mute flag and returns the new state
func (e *Engine) ToggleMute() bool {
	for {
		old := e.muted.Load()
		if e.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports whether cues are suppressed
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsDisabled reports whether the speaker failed to initialize
func (e *Engine) IsDisabled() bool {
	return e.disabled.Load()
}

// Close releases the speaker; safe when the engine is disabled
func (e *Engine) Close() {
	if !e.disabled.Load() {
		speaker.Close()
	}
}
