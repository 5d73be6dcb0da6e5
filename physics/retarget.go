package physics

import (
	"math"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/vmath"
)

// Retargeter derives a new autonomous target after a collision
type Retargeter struct {
	Arena core.Arena
	Rand  vmath.Rand
}

// Next picks the target for a collided player
// otherPrev is the other player's pre-tick position, ignored for wall hits
func (r Retargeter) Next(lead vmath.Vec2, o Outcome, otherPrev vmath.Vec2) vmath.Vec2 {
	if o.Other == NoPlayer {
		return r.WallReflect(lead, o.Contact)
	}
	return r.PlayerReflect(lead, o.Contact, otherPrev)
}

// WallReflect mirrors lead on the axes of the walls touching contact and casts it to the boundary
func (r Retargeter) WallReflect(lead, contact vmath.Vec2) vmath.Vec2 {
	a := r.Arena
	tol := parameter.WallTolerance

	hitLeft := math.Abs(contact.X-a.Radius) < tol
	hitRight := math.Abs(contact.X-(a.Width-a.Radius)) < tol
	hitBottom := math.Abs(contact.Y-a.Radius) < tol
	hitTop := math.Abs(contact.Y-(a.Height-a.Radius)) < tol

	reflected := lead
	if hitLeft || hitRight {
		reflected = reflected.ReflectAxisX()
	}
	if hitTop || hitBottom {
		reflected = reflected.ReflectAxisY()
	}

	return r.EnsureMinimumDistance(contact, r.castOrRandom(contact, reflected))
}

// PlayerReflect reflects lead about the normal from the other player to the contact point
func (r Retargeter) PlayerReflect(lead, contact, otherPrev vmath.Vec2) vmath.Vec2 {
	normal := contact.Sub(otherPrev)
	if normal.IsZero() {
		normal = lead.Perpendicular()
	}
	if normal.IsZero() {
		normal = vmath.V2(r.Rand.Float64()-0.5, r.Rand.Float64()-0.5)
	}
	if normal.IsZero() {
		normal = vmath.V2(1, 0)
	}

	reflected := lead.Reflect(normal.Normalize())
	return r.EnsureMinimumDistance(contact, r.castOrRandom(contact, reflected))
}

func (r Retargeter) castOrRandom(start, dir vmath.Vec2) vmath.Vec2 {
	if p, ok := CastToWall(r.Arena, start, dir); ok {
		return p
	}
	return r.Arena.RandomPoint(r.Rand)
}

// castEpsilon absorbs rounding when a ray lands exactly on a corner
const castEpsilon = 1e-9

// CastToWall intersects the ray start+t*dir with the inset arena boundary
// Picks the smallest positive t whose hit lies within the perpendicular wall's extent
func CastToWall(a core.Arena, start, dir vmath.Vec2) (vmath.Vec2, bool) {
	d := dir.Normalize()
	if d.IsZero() {
		return vmath.Vec2{}, false
	}

	lo, hi := a.Min(), a.Max()
	bestT := math.MaxFloat64
	var best vmath.Vec2
	found := false

	consider := func(t float64, p vmath.Vec2) {
		if t > 0 && t < bestT {
			bestT = t
			best = p
			found = true
		}
	}

	// Vertical walls
	if d.X != 0 {
		wallX := lo.X
		if d.X > 0 {
			wallX = hi.X
		}
		t := (wallX - start.X) / d.X
		y := start.Y + t*d.Y
		if y >= lo.Y-castEpsilon && y <= hi.Y+castEpsilon {
			consider(t, vmath.V2(wallX, vmath.Clamp(y, lo.Y, hi.Y)))
		}
	}

	// Horizontal walls
	if d.Y != 0 {
		wallY := lo.Y
		if d.Y > 0 {
			wallY = hi.Y
		}
		t := (wallY - start.Y) / d.Y
		x := start.X + t*d.X
		if x >= lo.X-castEpsilon && x <= hi.X+castEpsilon {
			consider(t, vmath.V2(vmath.Clamp(x, lo.X, hi.X), wallY))
		}
	}

	return best, found
}

// EnsureMinimumDistance extends a target closer than MinTargetDistance along the same direction
// The extended point is clamped into the inset bounds; a zero direction draws a random target
func (r Retargeter) EnsureMinimumDistance(from, to vmath.Vec2) vmath.Vec2 {
	delta := to.Sub(from)
	dist := delta.Mag()
	if dist >= parameter.MinTargetDistance {
		return to
	}
	if dist == 0 {
		return r.Arena.RandomPoint(r.Rand)
	}
	extended := from.Add(delta.Scale(parameter.MinTargetDistance / dist))
	return r.Arena.Clamp(extended)
}
