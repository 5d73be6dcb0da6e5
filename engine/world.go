package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/snapshot"
	"github.com/lixenwraith/vi-arena/status"
	"github.com/lixenwraith/vi-arena/system"
	"github.com/lixenwraith/vi-arena/vmath"
)

// TickReport describes everything one Step resolved
// Slices are indexed by player unless noted
type TickReport struct {
	Proposals []physics.Proposal
	Outcomes  []physics.Outcome
	// Contacts are the colliding pairs, in discovery order
	Contacts []system.Contact
	Hits     []system.Hit
	// Knockouts lists victims taken out this tick, in hit order
	Knockouts []int
	// Separations counts pushes applied after commit
	Separations int
}

// WallHits returns the indices of players clamped against a wall
func (r TickReport) WallHits() []int {
	var out []int
	for i, o := range r.Outcomes {
		if o.Wall() {
			out = append(out, i)
		}
	}
	return out
}

// World owns the player list and advances it one tick at a time
// Players are mutated only inside Step
type World struct {
	mu sync.RWMutex

	arena    core.Arena
	players  []*component.Player
	rng      vmath.Rand
	resolver physics.Resolver
	retarget physics.Retargeter
	combat   *system.CombatSystem

	statTicks       *atomic.Int64
	statWallHits    *atomic.Int64
	statSeparations *atomic.Int64
	statAlive       *atomic.Int64
}

// NewWorld takes ownership of players; reg may be nil
func NewWorld(a core.Arena, players []*component.Player, rng vmath.Rand, reg *status.Registry) *World {
	if reg == nil {
		reg = status.NewRegistry()
	}
	w := &World{
		arena:           a,
		players:         players,
		rng:             rng,
		resolver:        physics.Resolver{Arena: a},
		retarget:        physics.Retargeter{Arena: a, Rand: rng},
		combat:          system.NewCombatSystem(reg),
		statTicks:       reg.Ints.Get("world.ticks"),
		statWallHits:    reg.Ints.Get("world.wall_hits"),
		statSeparations: reg.Ints.Get("world.separations"),
		statAlive:       reg.Ints.Get("world.alive"),
	}
	w.statAlive.Store(int64(system.Survivors(players)))
	return w
}

// Step runs one tick: propose, resolve, retarget, combat, commit, separate
func (w *World) Step(dt float64, now time.Time) TickReport {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := len(w.players)
	previous := make([]vmath.Vec2, n)
	for i, p := range w.players {
		previous[i] = p.Current
	}

	// Propose: every tentative is computed before any collision work
	proposals := physics.ProposeAll(w.arena, w.players, dt, w.rng)
	tentatives := physics.Tentatives(proposals)

	// Resolve against the frozen tentative set
	outcomes := w.resolver.ResolveAll(previous, tentatives)

	next := make([]vmath.Vec2, n)
	targets := make([]vmath.Vec2, n)
	for i, o := range outcomes {
		if !o.Collided {
			next[i] = tentatives[i]
			targets[i] = proposals[i].Target
			continue
		}
		var otherPrev vmath.Vec2
		if o.Other != physics.NoPlayer {
			otherPrev = previous[o.Other]
		} else {
			w.statWallHits.Add(1)
		}
		next[i] = o.Contact
		targets[i] = w.retarget.Next(proposals[i].Lead, o, otherPrev)
	}

	hits := w.combat.Resolve(w.players, outcomes, now)
	separations := physics.Separate(w.arena, next)

	for i, p := range w.players {
		p.Current = next[i]
		p.Target = targets[i]
	}

	var knockouts []int
	for _, h := range hits {
		if h.Knockout {
			knockouts = append(knockouts, h.Victim)
		}
	}

	w.statTicks.Add(1)
	w.statSeparations.Add(int64(separations))
	w.statAlive.Store(int64(system.Survivors(w.players)))

	return TickReport{
		Proposals:   proposals,
		Outcomes:    outcomes,
		Contacts:    system.Contacts(outcomes),
		Hits:        hits,
		Knockouts:   knockouts,
		Separations: separations,
	}
}

// Evaluate applies the win rule to the current players
func (w *World) Evaluate() (system.Result, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return system.Evaluate(w.players)
}

// Leader picks the healthiest survivor for a match stopped early
func (w *World) Leader() system.Result {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return system.Leader(w.players)
}

func (w *World) Arena() core.Arena {
	return w.arena
}

func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.players)
}

// Player returns a copy of player i
func (w *World) Player(i int) component.Player {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return *w.players[i]
}

// Frame captures the committed state; MatchID is left for the caller
func (w *World) Frame(tick int64) snapshot.Frame {
	w.mu.RLock()
	defer w.mu.RUnlock()

	f := snapshot.Frame{Tick: tick, Players: make([]snapshot.Player, len(w.players))}
	for i, p := range w.players {
		f.Players[i] = snapshot.Player{
			Index:     i,
			Name:      p.Name,
			X:         p.Current.X,
			Y:         p.Current.Y,
			Health:    p.Health,
			MaxHealth: p.MaxHealth,
			Alive:     p.Alive,
		}
	}
	return f
}

// Clear drops every player and the combat pair history
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.players = nil
	w.combat.Reset()
	w.statAlive.Store(0)
}
