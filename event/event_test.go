package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-arena/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	assert.Nil(t, q.Consume())

	for i := 0; i < 5; i++ {
		q.Push(Event{Type: EventWallBounce, Tick: int64(i)})
	}
	assert.Equal(t, 5, q.Len())

	got := q.Consume()
	require.Len(t, got, 5)
	for i, ev := range got {
		assert.Equal(t, int64(i), ev.Tick)
	}
	assert.Zero(t, q.Len())
	assert.Nil(t, q.Consume())
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventHit, Tick: int64(i)})
	}
	assert.Equal(t, parameter.EventQueueSize, q.Len())
	assert.Equal(t, uint64(10), q.Dropped())

	got := q.Consume()
	require.Len(t, got, parameter.EventQueueSize)
	assert.Equal(t, int64(10), got[0].Tick)
	assert.Equal(t, int64(total-1), got[len(got)-1].Tick)

	// Skipped events stay counted once consumed past
	assert.Equal(t, uint64(10), q.Dropped())
	assert.Zero(t, q.Len())
	q.Push(Event{Type: EventHit, Tick: int64(total)})
	got = q.Consume()
	require.Len(t, got, 1)
	assert.Equal(t, int64(total), got[0].Tick)
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 16; i++ {
				q.Push(Event{Type: EventHit})
			}
		}()
	}
	wg.Wait()
	assert.Len(t, q.Consume(), 64)
}

func TestEmitHit(t *testing.T) {
	q := NewQueue()
	EmitHit(q, 7, HitPayload{Victim: 1, Attacker: 0, Damage: 1, Remaining: 2}, false, "B")
	EmitHit(q, 8, HitPayload{Victim: 0, Attacker: 1, Damage: 1, Remaining: 0}, true, "A")

	got := q.Consume()
	require.Len(t, got, 3)
	assert.Equal(t, EventHit, got[0].Type)
	assert.Equal(t, EventHit, got[1].Type)
	assert.Equal(t, EventKnockout, got[2].Type)
	ko := got[2].Payload.(*KnockoutPayload)
	assert.Equal(t, KnockoutPayload{Victim: 0, Attacker: 1, Name: "A"}, *ko)
	assert.Equal(t, int64(8), got[2].Tick)
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "MatchEnd", EventMatchEnd.String())
	assert.Equal(t, "Unknown", EventType(999).String())

	et, ok := Lookup("knockout")
	assert.True(t, ok)
	assert.Equal(t, EventKnockout, et)

	mask, unknown := ParseMask("hit, MatchEnd,bogus")
	assert.Equal(t, map[EventType]bool{EventHit: true, EventMatchEnd: true}, mask)
	assert.Equal(t, []string{"bogus"}, unknown)

	all, _ := ParseMask("")
	assert.Len(t, all, 6)
}
