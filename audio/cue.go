package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/vmath"
)

// Cue identifies a match sound
type Cue int

const (
	CueHit Cue = iota
	CueWall
	CueKnockout
	CueVictory
	CueDraw
)

func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueWall:
		return "wall"
	case CueKnockout:
		return "knockout"
	case CueVictory:
		return "victory"
	case CueDraw:
		return "draw"
	}
	return "unknown"
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a finite oscillator; noise is seeded so cues replay identically
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(parameter.AudioNoiseSeed),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// NewCue builds a fresh, finite stream for cue at the given gain
func NewCue(cue Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueHit:
		s = tone(parameter.HitCueFreq, WaveSquare,
			parameter.HitCueDuration, parameter.HitCueAttack, parameter.HitCueRelease, rate)

	case CueWall:
		s = tone(parameter.WallCueFreq, WaveSine,
			parameter.WallCueDuration, parameter.WallCueAttack, parameter.WallCueRelease, rate)

	case CueKnockout:
		// Low saw under a noise burst
		s = beep.Mix(
			newVolume(tone(parameter.KnockoutCueFreq, WaveSaw,
				parameter.KnockoutCueDuration, parameter.KnockoutCueAttack, parameter.KnockoutCueRelease, rate), 0.6),
			newVolume(tone(0, WaveNoise,
				parameter.KnockoutCueDuration, parameter.KnockoutCueAttack, parameter.KnockoutCueRelease, rate), 0.4),
		)

	case CueVictory:
		s = fanfare(rate, 523.25, 659.25, 783.99, 1046.50) // C5 E5 G5 C6

	case CueDraw:
		s = fanfare(rate, 392.00, 311.13) // G4 Eb4

	default:
		return beep.Silence(0)
	}
	return newVolume(s, volume)
}

func fanfare(rate beep.SampleRate, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(f, WaveSine,
			parameter.FanfareNoteDuration, parameter.FanfareNoteAttack, parameter.FanfareNoteRelease, rate)
	}
	return beep.Seq(notes...)
}
