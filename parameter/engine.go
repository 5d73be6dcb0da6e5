package parameter

import "time"

// Match loop
const (
	// TickRate is the default fixed logical tick rate (Hz)
	TickRate = 60

	// TickInterval is the wall-clock pacing of one logical tick at TickRate
	TickInterval = time.Second / TickRate

	// MaxMatchTicks is the default tick limit; 0 runs a match until the win condition
	MaxMatchTicks = 0

	// DefaultSeed is used when no seed is configured
	DefaultSeed = 0x5eed
)

// Event queue sizing, power of two for mask indexing
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
