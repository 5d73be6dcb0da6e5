package physics

import (
	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/vmath"
)

// Proposal is a player's intended move for one tick, computed before any collision work
type Proposal struct {
	// Lead is target - current against the target the player actually steers to
	Lead vmath.Vec2
	// Tentative is the position reached if nothing is hit
	Tentative vmath.Vec2
	// Target differs from the player's target when it had arrived and drew a new one
	Target vmath.Vec2
}

// Propose computes the lead vector and tentative position for one player over dt seconds
// Reads the player only; a refreshed target is returned, not written
func Propose(a core.Arena, p *component.Player, dt float64, rng vmath.Rand) Proposal {
	target := p.Target
	lead := target.Sub(p.Current)
	dist := lead.Mag()

	// Arrived: draw a fresh target so the player never stalls
	if dist < parameter.MinTargetDistance {
		target = a.RandomPoint(rng)
		lead = target.Sub(p.Current)
		dist = lead.Mag()
	}

	if dist == 0 {
		return Proposal{Lead: lead, Tentative: p.Current, Target: target}
	}

	step := p.Speed * dt
	ratio := step / dist
	if ratio > 1 {
		ratio = 1 // Never overshoot
	}
	if ratio < 0 {
		ratio = 0
	}

	return Proposal{
		Lead:      lead,
		Tentative: p.Current.Add(lead.Scale(ratio)),
		Target:    target,
	}
}

// ProposeAll computes proposals for every player in list order
func ProposeAll(a core.Arena, players []*component.Player, dt float64, rng vmath.Rand) []Proposal {
	out := make([]Proposal, len(players))
	for i, p := range players {
		out[i] = Propose(a, p, dt, rng)
	}
	return out
}

// Tentatives extracts tentative positions in list order
func Tentatives(proposals []Proposal) []vmath.Vec2 {
	out := make([]vmath.Vec2, len(proposals))
	for i, pr := range proposals {
		out[i] = pr.Tentative
	}
	return out
}
