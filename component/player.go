package component

import (
	"time"

	"github.com/lixenwraith/vi-arena/vmath"
)

// Player is the mutable state of one arena agent
// Identity is the index in the world's player list
type Player struct {
	Name string

	// Health is the remaining health, never increases during a match
	Health float64
	// MaxHealth is the health the player was constructed with
	MaxHealth float64

	// Damage dealt to the opponent on a qualifying contact
	Damage float64
	// Speed in px/s
	Speed float64

	Current vmath.Vec2
	Target  vmath.Vec2

	// LastHit is the time of the last resolved collision the player took part in
	LastHit time.Time

	// Alive mirrors Health > 0 and latches false
	Alive bool
}

// NewPlayer creates a living player at start heading to target
func NewPlayer(name string, health, damage, speed float64, start, target vmath.Vec2, now time.Time) *Player {
	return &Player{
		Name:      name,
		Health:    health,
		MaxHealth: health,
		Damage:    damage,
		Speed:     speed,
		Current:   start,
		Target:    target,
		LastHit:   now,
		Alive:     health > 0,
	}
}

// TakeDamage subtracts amount from health and latches death at or below zero
// Returns true when this hit knocked the player out
func (p *Player) TakeDamage(amount float64) bool {
	if !p.Alive {
		return false
	}
	p.Health -= amount
	if p.Health <= 0 {
		p.Alive = false
		return true
	}
	return false
}

// HealthRatio returns health as a fraction of MaxHealth clamped to [0, 1]
func (p *Player) HealthRatio() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return vmath.Clamp(p.Health/p.MaxHealth, 0, 1)
}
