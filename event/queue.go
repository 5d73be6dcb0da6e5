package event

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-arena/parameter"
)

// slot holds one event; seq is position+1 once the event at position is fully written
type slot struct {
	seq atomic.Uint64
	ev  Event
}

// Queue carries match events from the tick loop to observers without blocking the tick
// Any number of goroutines may Push; a single goroutine Consumes
// When observers fall behind the oldest events are overwritten and counted in Dropped
type Queue struct {
	slots [parameter.EventQueueSize]slot
	head  atomic.Uint64 // next position to read, owned by the consumer
	tail  atomic.Uint64 // next position to claim
	lost  atomic.Uint64 // positions the consumer skipped
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push claims the next position and publishes ev into it
func (q *Queue) Push(ev Event) {
	pos := q.tail.Add(1) - 1
	s := &q.slots[pos&parameter.EventBufferMask]
	s.ev = ev
	s.seq.Store(pos + 1)
}

// Consume returns the pending events oldest first
// Stops early at a slot whose producer has not finished writing
func (q *Queue) Consume() []Event {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail-head > parameter.EventQueueSize {
		q.lost.Add(tail - parameter.EventQueueSize - head)
		head = tail - parameter.EventQueueSize
	}

	var out []Event
	pos := head
	for ; pos < tail; pos++ {
		s := &q.slots[pos&parameter.EventBufferMask]
		seq := s.seq.Load()
		if seq < pos+1 {
			break
		}
		if seq > pos+1 {
			// Lapped by a newer write since tail was read
			q.lost.Add(1)
			continue
		}
		out = append(out, s.ev)
	}
	q.head.Store(pos)
	return out
}

// Len is the number of events a Consume would return, capped at the ring size
func (q *Queue) Len() int {
	pending := q.tail.Load() - q.head.Load()
	return int(min(pending, parameter.EventQueueSize))
}

// Dropped counts events overwritten before they were consumed
func (q *Queue) Dropped() uint64 {
	dropped := q.lost.Load()
	if pending := q.tail.Load() - q.head.Load(); pending > parameter.EventQueueSize {
		dropped += pending - parameter.EventQueueSize
	}
	return dropped
}
