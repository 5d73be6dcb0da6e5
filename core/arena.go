package core

import (
	"fmt"

	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/vmath"
)

// Arena is the fixed playing field of a match, shared read-only by every component
type Arena struct {
	Width, Height float64
	Radius        float64 // Player collision radius
	StartRadius   float64 // Spawn ring radius around Center
	Center        vmath.Vec2
}

// DefaultArena returns the 500x500 arena with 12px players
func DefaultArena() Arena {
	return NewArena(parameter.ArenaWidth, parameter.ArenaHeight, parameter.PlayerRadius, parameter.StartRingRadius)
}

// NewArena builds an arena centered on its own midpoint
func NewArena(width, height, radius, startRadius float64) Arena {
	return Arena{
		Width:       width,
		Height:      height,
		Radius:      radius,
		StartRadius: startRadius,
		Center:      vmath.V2(width/2, height/2),
	}
}

// Validate rejects arenas that cannot hold a single player or its spawn ring
func (a Arena) Validate() error {
	if a.Radius <= 0 {
		return fmt.Errorf("arena radius %g must be positive", a.Radius)
	}
	if a.Width <= 2*a.Radius || a.Height <= 2*a.Radius {
		return fmt.Errorf("arena %gx%g too small for radius %g", a.Width, a.Height, a.Radius)
	}
	if a.StartRadius < 0 {
		return fmt.Errorf("start ring radius %g must not be negative", a.StartRadius)
	}
	if !a.Inside(a.Center) {
		return fmt.Errorf("arena center %v outside inset bounds", a.Center)
	}
	// The ring touches the inset bounds at Center +- StartRadius on each axis
	if limit := min(a.Width, a.Height)/2 - a.Radius; a.StartRadius > limit {
		return fmt.Errorf("start ring radius %g exceeds %g, spawns would leave the arena", a.StartRadius, limit)
	}
	return nil
}

// Min is the lowest legal player center
func (a Arena) Min() vmath.Vec2 {
	return vmath.V2(a.Radius, a.Radius)
}

// Max is the highest legal player center
func (a Arena) Max() vmath.Vec2 {
	return vmath.V2(a.Width-a.Radius, a.Height-a.Radius)
}

// Inside reports whether p satisfies the inset bounds [r, dim-r] on both axes
func (a Arena) Inside(p vmath.Vec2) bool {
	return p.X >= a.Radius && p.X <= a.Width-a.Radius &&
		p.Y >= a.Radius && p.Y <= a.Height-a.Radius
}

// Clamp moves p into the inset bounds
func (a Arena) Clamp(p vmath.Vec2) vmath.Vec2 {
	return p.Clamp(a.Min(), a.Max())
}

// RandomPoint returns a uniform point within the inset bounds
func (a Arena) RandomPoint(rng vmath.Rand) vmath.Vec2 {
	lo, hi := a.Min(), a.Max()
	return vmath.V2(
		lo.X+rng.Float64()*(hi.X-lo.X),
		lo.Y+rng.Float64()*(hi.Y-lo.Y),
	)
}
