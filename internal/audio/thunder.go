// Package audio plays a procedurally generated thunder rumble when the
// scene spawns a lightning bolt. Sound is strictly best-effort: if the
// speaker cannot be initialized the engine is nil and every call is a no-op.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	rumbleLen   = 2 * time.Second
	rumbleGain  = 0.6
	lowpassCoef = 0.04 // one-pole low-pass: small coefficient keeps the low frequencies
	decayRate   = 4.0  // exponent for the amplitude envelope
)

// Engine owns the speaker and plays thunder claps. A nil Engine is valid
// and silently discards every call.
type Engine struct {
	muted bool
	rng   *rand.Rand
}

// NewEngine initializes the speaker. On failure it returns a nil engine
// and the error; callers may log it and continue without sound.
func NewEngine() (*Engine, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Engine{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// SetMuted sets the mute state.
func (e *Engine) SetMuted(muted bool) {
	if e == nil {
		return
	}
	e.muted = muted
}

// ToggleMute flips the mute state and returns the new value.
func (e *Engine) ToggleMute() bool {
	if e == nil {
		return true
	}
	e.muted = !e.muted
	return e.muted
}

// PlayThunder starts a rumble. Overlapping rumbles from concurrent strikes
// mix in the speaker.
func (e *Engine) PlayThunder() {
	if e == nil || e.muted {
		return
	}
	speaker.Play(newRumble(e.rng.Int63()))
}

// rumble is a beep.Streamer producing low-passed white noise under an
// exponentially decaying envelope.
type rumble struct {
	rng   *rand.Rand
	total int
	pos   int
	prev  float64
}

func newRumble(seed int64) *rumble {
	return &rumble{
		rng:   rand.New(rand.NewSource(seed)),
		total: sampleRate.N(rumbleLen),
	}
}

// Stream fills samples until the rumble has fully decayed.
func (r *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	if r.pos >= r.total {
		return 0, false
	}

	for i := range samples {
		if r.pos >= r.total {
			return i, true
		}

		white := r.rng.Float64()*2 - 1
		r.prev += lowpassCoef * (white - r.prev)

		env := math.Exp(-decayRate * float64(r.pos) / float64(r.total))
		v := r.prev * env * rumbleGain
		// The low-pass keeps |prev| well under 1, but clamp anyway
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}

		samples[i][0] = v
		samples[i][1] = v
		r.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer; rumble generation cannot fail.
func (r *rumble) Err() error {
	return nil
}
