package engine

import (
	"testing"
	"time"
)

func TestTimeProvider(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestSimClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewSimClock(start)

	if now := clock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time to be %v, got %v", start, now)
	}

	next := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	clock.SetTime(next)
	if now := clock.Now(); !now.Equal(next) {
		t.Errorf("Expected time to be %v after SetTime, got %v", next, now)
	}

	clock.Advance(time.Second / 60)
	if now, want := clock.Now(), next.Add(time.Second/60); !now.Equal(want) {
		t.Errorf("Expected time to be %v after Advance, got %v", want, now)
	}
}
