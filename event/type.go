package event

// EventType represents the type of match event
type EventType int

const (
	// EventMatchStart fires once the world is built and the match is active
	// Trigger: NewMatch | Payload: *MatchStartPayload
	EventMatchStart EventType = iota + 1

	// EventMatchEnd fires when the win condition or the tick limit ends the match
	// Trigger: Match.Advance | Payload: *MatchEndPayload
	EventMatchEnd

	// EventHit fires for every damage application
	// Trigger: combat resolution | Payload: *HitPayload
	EventHit

	// EventKnockout fires when a hit takes the victim to zero health or below
	// Trigger: combat resolution | Payload: *KnockoutPayload
	EventKnockout

	// EventWallBounce fires when a player is clamped against the arena boundary
	// Trigger: collision resolution | Payload: *WallBouncePayload
	EventWallBounce

	// EventPlayerBounce fires once per colliding pair per tick
	// Trigger: collision resolution | Payload: *PlayerBouncePayload
	EventPlayerBounce
)

// Event is a single queued match event
type Event struct {
	Type    EventType
	Payload any
	Tick    int64
}
