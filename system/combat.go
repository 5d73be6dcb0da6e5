package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/status"
)

// Hit is one damage application resolved for a contact pair
type Hit struct {
	Victim   int
	Attacker int
	Damage   float64
	// Knockout is set when this hit took the victim's health to zero or below
	Knockout bool
}

// Contact is an unordered colliding pair, A < B
type Contact struct {
	A, B int
}

// CombatSystem resolves contact damage with a per-pair debounce
// Victim choice reads a frozen snapshot taken before any player is mutated,
// so the result does not depend on the order players are processed in
type CombatSystem struct {
	// lastVictim remembers who took the previous tied contact of each pair
	lastVictim map[Contact]int

	statHits      *atomic.Int64
	statKnockouts *atomic.Int64
	statContacts  *atomic.Int64
}

// NewCombatSystem creates a combat system reporting into reg
func NewCombatSystem(reg *status.Registry) *CombatSystem {
	return &CombatSystem{
		lastVictim:    make(map[Contact]int),
		statHits:      reg.Ints.Get("combat.hits"),
		statKnockouts: reg.Ints.Get("combat.knockouts"),
		statContacts:  reg.Ints.Get("combat.contacts"),
	}
}

// Name returns system's name
func (s *CombatSystem) Name() string {
	return "combat"
}

// Reset forgets every pair history
func (s *CombatSystem) Reset() {
	clear(s.lastVictim)
}

// Contacts collects each colliding pair once, in order of first discovery
// A pair exists when either side's outcome names the other
func Contacts(outcomes []physics.Outcome) []Contact {
	var out []Contact
	seen := make(map[Contact]bool)
	for i, o := range outcomes {
		if !o.Collided || o.Other == physics.NoPlayer {
			continue
		}
		c := Contact{A: min(i, o.Other), B: max(i, o.Other)}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Resolve applies this tick's contact damage and stamps LastHit for every collided player
func (s *CombatSystem) Resolve(players []*component.Player, outcomes []physics.Outcome, now time.Time) []Hit {
	// Frozen pre-commit snapshot
	lastHit := make([]time.Time, len(players))
	alive := make([]bool, len(players))
	for i, p := range players {
		lastHit[i] = p.LastHit
		alive[i] = p.Alive
	}

	var hits []Hit
	for _, c := range Contacts(outcomes) {
		s.statContacts.Add(1)
		victim, attacker := s.pickVictim(c, lastHit)
		if !alive[attacker] || !alive[victim] {
			continue
		}
		dmg := players[attacker].Damage
		ko := players[victim].TakeDamage(dmg)
		hits = append(hits, Hit{Victim: victim, Attacker: attacker, Damage: dmg, Knockout: ko})
		s.statHits.Add(1)
		if ko {
			s.statKnockouts.Add(1)
		}
	}

	for i, o := range outcomes {
		if o.Collided {
			players[i].LastHit = now
		}
	}
	return hits
}

// pickVictim returns the side whose last hit is strictly older
// Ties alternate per pair, starting with the higher index
func (s *CombatSystem) pickVictim(c Contact, lastHit []time.Time) (victim, attacker int) {
	switch {
	case lastHit[c.A].Before(lastHit[c.B]):
		victim = c.A
	case lastHit[c.B].Before(lastHit[c.A]):
		victim = c.B
	default:
		victim = c.B
		if prev, ok := s.lastVictim[c]; ok && prev == c.B {
			victim = c.A
		}
		s.lastVictim[c] = victim
	}
	if victim == c.A {
		return c.A, c.B
	}
	return c.B, c.A
}
