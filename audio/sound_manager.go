package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager turns match events into cues on a shared mixer
// Without Initialize cues still stream into the mixer, which lets tests pull samples
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	lastPlayed  map[Cue]time.Time
	now         func() time.Time
}

// NewSoundManager creates a manager playing cues at volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:      &beep.Mixer{},
		volume:     volume,
		lastPlayed: make(map[Cue]time.Time),
		now:        time.Now,
	}
}

// Initialize opens the speaker and starts streaming the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences every pending cue
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
		speaker.Clear()
		sm.initialized = false
		return
	}
	sm.mixer.Clear()
}

// Play queues cue unless the same cue played within MinCueGap
func (sm *SoundManager) Play(cue Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	if last, ok := sm.lastPlayed[cue]; ok && now.Sub(last) < parameter.MinCueGap {
		return false
	}
	sm.lastPlayed[cue] = now

	s := NewCue(cue, sm.volume, sampleRate)
	if sm.initialized {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	} else {
		sm.mixer.Add(s)
	}
	return true
}

// Handle maps a match event to its cue; returns whether a cue was queued
func (sm *SoundManager) Handle(ev event.Event) bool {
	switch ev.Type {
	case event.EventHit:
		return sm.Play(CueHit)
	case event.EventWallBounce:
		return sm.Play(CueWall)
	case event.EventKnockout:
		return sm.Play(CueKnockout)
	case event.EventMatchEnd:
		if p, ok := ev.Payload.(*event.MatchEndPayload); ok && p.Draw {
			return sm.Play(CueDraw)
		}
		return sm.Play(CueVictory)
	}
	return false
}

// Pending returns the number of cues still streaming
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return sm.mixer.Len()
}
