package physics

import (
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/vmath"
)

// NoPlayer marks a wall collision in Outcome.Other
const NoPlayer = -1

// Outcome is the per-player, per-tick collision result
type Outcome struct {
	Collided bool
	// Contact replaces the tentative position when Collided
	Contact vmath.Vec2
	// Other is the index of the player hit, NoPlayer for walls
	Other int
}

// Wall reports a wall collision
func (o Outcome) Wall() bool {
	return o.Collided && o.Other == NoPlayer
}

// Resolver detects wall and inter-player collisions against a frozen set of tentative positions
type Resolver struct {
	Arena core.Arena
}

// Wall clamps every violated axis to its inset boundary
// Both axes clamp on a corner hit
func (r Resolver) Wall(tentative vmath.Vec2) Outcome {
	a := r.Arena
	contact := tentative
	hit := false

	if tentative.X+a.Radius > a.Width {
		contact.X = a.Width - a.Radius
		hit = true
	}
	if tentative.X-a.Radius < 0 {
		contact.X = a.Radius
		hit = true
	}
	if tentative.Y+a.Radius > a.Height {
		contact.Y = a.Height - a.Radius
		hit = true
	}
	if tentative.Y-a.Radius < 0 {
		contact.Y = a.Radius
		hit = true
	}

	if !hit {
		return Outcome{Contact: tentative, Other: NoPlayer}
	}
	return Outcome{Collided: true, Contact: contact, Other: NoPlayer}
}

// Players finds the first other player (list order) whose tentative position overlaps player i
// The contact point backs i off along the separation vector by half the penetration depth
func (r Resolver) Players(i int, previous vmath.Vec2, tentatives []vmath.Vec2) Outcome {
	radius := r.Arena.Radius
	minDistSq := 4 * radius * radius
	own := tentatives[i]

	for j, other := range tentatives {
		if j == i {
			continue
		}
		sep := own.Sub(other)
		distSq := sep.MagSq()
		if distSq >= minDistSq {
			continue
		}

		dist := sep.Mag()
		if dist == 0 {
			// Coincident proposals have no normal; stay put
			return Outcome{Collided: true, Contact: previous, Other: j}
		}
		penetration := (2*radius - dist) / 2
		contact := own.Add(sep.Scale(penetration / dist))
		return Outcome{Collided: true, Contact: r.Arena.Clamp(contact), Other: j}
	}

	return Outcome{Contact: own, Other: NoPlayer}
}

// Resolve checks walls first, then players
func (r Resolver) Resolve(i int, previous vmath.Vec2, tentatives []vmath.Vec2) Outcome {
	if o := r.Wall(tentatives[i]); o.Collided {
		return o
	}
	return r.Players(i, previous, tentatives)
}

// ResolveAll resolves every player against the same tentative snapshot
func (r Resolver) ResolveAll(previous, tentatives []vmath.Vec2) []Outcome {
	out := make([]Outcome, len(tentatives))
	for i := range tentatives {
		out[i] = r.Resolve(i, previous[i], tentatives)
	}
	return out
}

// Separate pushes apart any pair of committed positions closer than two radii
// Passes repeat until no pair overlaps, bounded by SeparationIterations
// Positions are clamped into the inset bounds after every push
// Returns the number of pushes applied
func Separate(a core.Arena, positions []vmath.Vec2) int {
	minDist := 2 * a.Radius
	minDistSq := minDist * minDist
	pushes := 0

	for iter := 0; iter < parameter.SeparationIterations; iter++ {
		moved := false
		for i := 0; i < len(positions); i++ {
			for j := i + 1; j < len(positions); j++ {
				if positions[i].DistSq(positions[j]) >= minDistSq {
					continue
				}
				positions[i], positions[j] = separatePair(a, positions[i], positions[j], minDist)
				moved = true
				pushes++
			}
		}
		if !moved {
			break
		}
	}
	return pushes
}

// separatePair moves pi and pj apart along their separation axis
// Whatever a wall absorbs on one side goes to the other; a pair wedged on both
// sides slides along the wall tangent toward the arena center instead
func separatePair(a core.Arena, pi, pj vmath.Vec2, minDist float64) (vmath.Vec2, vmath.Vec2) {
	sep := pi.Sub(pj)
	dist := sep.Mag()
	n := vmath.V2(1, 0)
	if dist > 0 {
		n = sep.Scale(1 / dist)
	} else if pj.X < a.Center.X {
		// Coincident: push the free side toward the center
		n = vmath.V2(-1, 0)
	}

	need := minDist - dist + parameter.SeparationSlack
	ni := a.Clamp(pi.Add(n.Scale(need / 2)))
	movedI := ni.Sub(pi).Dot(n)
	nj := a.Clamp(pj.Sub(n.Scale(need - movedI)))
	movedJ := pj.Sub(nj).Dot(n)
	if rest := need - movedI - movedJ; rest > 0 {
		ni = a.Clamp(ni.Add(n.Scale(rest)))
	}
	if ni.DistSq(nj) >= minDist*minDist {
		return ni, nj
	}

	// Both sides blocked along n
	t := n.Perpendicular()
	if t.Dot(a.Center.Sub(nj)) < 0 {
		t = t.Scale(-1)
	}
	gap := minDist - ni.Dist(nj) + parameter.SeparationSlack
	return a.Clamp(ni.Sub(t.Scale(gap))), a.Clamp(nj.Add(t.Scale(gap)))
}
