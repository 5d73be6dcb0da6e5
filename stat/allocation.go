package stat

import (
	"fmt"

	"github.com/lixenwraith/vi-arena/parameter"
)

// Allocation splits a player's point budget between damage, speed and health
type Allocation struct {
	Damage int `toml:"damage"`
	Speed  int `toml:"speed"`
	Health int `toml:"health"`
}

// Stats are the derived values a player is constructed with
type Stats struct {
	Damage float64
	Speed  float64 // px/s
	Health float64
}

func (a Allocation) Total() int {
	return a.Damage + a.Speed + a.Health
}

// CheckAllocation checks the allocation against the model budget and the per-stat minimums
func (m Model) CheckAllocation(a Allocation) error {
	if a.Damage < 0 || a.Speed < 0 || a.Health < 0 {
		return fmt.Errorf("negative points in %+v: %w", a, ErrInvalidAllocation)
	}
	if a.Total() > m.Budget {
		return fmt.Errorf("allocation %+v spends %d of %d points: %w", a, a.Total(), m.Budget, ErrInvalidAllocation)
	}
	if a.Damage < parameter.MinDamagePoints {
		return fmt.Errorf("damage points %d below minimum %d: %w", a.Damage, parameter.MinDamagePoints, ErrInvalidAllocation)
	}
	if a.Health < parameter.MinHealthPoints {
		return fmt.Errorf("health points %d below minimum %d: %w", a.Health, parameter.MinHealthPoints, ErrInvalidAllocation)
	}
	return nil
}

// Derive validates the allocation and maps it to stats
func (m Model) Derive(a Allocation) (Stats, error) {
	if err := m.CheckAllocation(a); err != nil {
		return Stats{}, err
	}
	damage, err := m.Damage(a.Damage)
	if err != nil {
		return Stats{}, err
	}
	speed, err := m.Speed(a.Speed)
	if err != nil {
		return Stats{}, err
	}
	health, err := m.Health(a.Health)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Damage: damage, Speed: speed, Health: health}, nil
}

// Remaining returns unspent points, negative when over budget
func (m Model) Remaining(a Allocation) int {
	return m.Budget - a.Total()
}
