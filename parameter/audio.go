package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// CueVolume is the default gain applied to every cue
	CueVolume = 0.5

	// MinCueGap between two plays of the same cue
	MinCueGap = 50 * time.Millisecond

	// AudioNoiseSeed keeps noise cues identical across runs
	AudioNoiseSeed = 0xa0d10
)

// Hit cue
const (
	HitCueDuration = 80 * time.Millisecond
	HitCueAttack   = 5 * time.Millisecond
	HitCueRelease  = 40 * time.Millisecond
	HitCueFreq     = 220.0
)

// Wall bounce cue
const (
	WallCueDuration = 40 * time.Millisecond
	WallCueAttack   = 2 * time.Millisecond
	WallCueRelease  = 30 * time.Millisecond
	WallCueFreq     = 440.0
)

// Knockout cue
const (
	KnockoutCueDuration = 300 * time.Millisecond
	KnockoutCueAttack   = 5 * time.Millisecond
	KnockoutCueRelease  = 250 * time.Millisecond
	KnockoutCueFreq     = 110.0
)

// Victory and draw cues are note sequences
const (
	FanfareNoteDuration = 120 * time.Millisecond
	FanfareNoteAttack   = 5 * time.Millisecond
	FanfareNoteRelease  = 60 * time.Millisecond
)
