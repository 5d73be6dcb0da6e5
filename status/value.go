package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// Float is a float64 gauge, read and written with atomic.Uint64 bit patterns
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Store(v float64) { f.bits.Store(math.Float64bits(v)) }

func (f *Float) Load() float64 { return math.Float64frombits(f.bits.Load()) }

// Add accumulates delta and returns the running total
func (f *Float) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		sum := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(sum)) {
			return sum
		}
	}
}

// MaxLabelLen holds a match id or a player name
const MaxLabelLen = 36

// Label is a short text metric such as the match id or the winner's name
type Label struct {
	v atomic.Pointer[string]
}

// Store keeps at most MaxLabelLen bytes, cut on a rune boundary
func (l *Label) Store(s string) {
	if len(s) > MaxLabelLen {
		cut := MaxLabelLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	l.v.Store(&s)
}

func (l *Label) Load() string {
	if p := l.v.Load(); p != nil {
		return *p
	}
	return ""
}
