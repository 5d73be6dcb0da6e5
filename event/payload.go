package event

// MatchStartPayload describes a freshly constructed match
type MatchStartPayload struct {
	MatchID string
	Seed    uint64
	Players []string
}

// MatchEndPayload carries the final result
// Winner is -1 on a draw
type MatchEndPayload struct {
	MatchID  string
	Winner   int
	Name     string
	Draw     bool
	TimedOut bool
	Ticks    int64
}

// HitPayload is one resolved damage application
type HitPayload struct {
	Victim    int
	Attacker  int
	Damage    float64
	Remaining float64 // Victim health after the hit
}

// KnockoutPayload names the player taken out and by whom
type KnockoutPayload struct {
	Victim   int
	Attacker int
	Name     string
}

// WallBouncePayload is the clamped contact point of a wall collision
type WallBouncePayload struct {
	Player int
	X, Y   float64
}

// PlayerBouncePayload is an unordered colliding pair, A < B
type PlayerBouncePayload struct {
	A, B int
}
