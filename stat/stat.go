// Package stat derives player damage, speed and health from a point allocation
package stat

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/vi-arena/parameter"
)

// ErrInvalidAllocation marks a point value outside the range a derivation accepts
// Always a caller or configuration bug; construction must reject it
var ErrInvalidAllocation = errors.New("invalid allocation")

// SpeedTiers is the tunable speed curve
type SpeedTiers struct {
	Malus         float64 `toml:"malus"`          // Speed at 0 points
	Base          float64 `toml:"base"`           // Speed before per-point increments
	LowTierPoints int     `toml:"low_tier_points"` // Points earning LowStep each
	LowStep       float64 `toml:"low_step"`
	HighStep      float64 `toml:"high_step"` // Per point past LowTierPoints
}

// DefaultSpeedTiers returns the 70 / 80+20n / 140+30(n-3) curve
func DefaultSpeedTiers() SpeedTiers {
	return SpeedTiers{
		Malus:         parameter.SpeedMalus,
		Base:          parameter.SpeedBase,
		LowTierPoints: parameter.SpeedLowTierPoints,
		LowStep:       parameter.SpeedLowTierStep,
		HighStep:      parameter.SpeedHighTierStep,
	}
}

// Validate requires per-point increments that never shrink past the first point
// and a curve that stays strictly increasing from the malus
func (t SpeedTiers) Validate() error {
	if t.Malus <= 0 {
		return fmt.Errorf("speed malus %g must be positive", t.Malus)
	}
	if t.LowTierPoints < 0 {
		return fmt.Errorf("speed low tier points %d must not be negative", t.LowTierPoints)
	}
	if t.LowStep <= 0 || t.HighStep < t.LowStep {
		return fmt.Errorf("speed steps low=%g high=%g must satisfy 0 < low <= high", t.LowStep, t.HighStep)
	}
	first := t.Base + t.HighStep
	if t.LowTierPoints > 0 {
		first = t.Base + t.LowStep
	}
	if first <= t.Malus {
		return fmt.Errorf("one speed point yields %g, must exceed malus %g", first, t.Malus)
	}
	return nil
}

// Model bundles the point budget and speed tiers used to derive stats
type Model struct {
	Budget int
	Tiers  SpeedTiers
}

// DefaultModel derives stats with the default budget and tiers
var DefaultModel = Model{
	Budget: parameter.PointBudget,
	Tiers:  DefaultSpeedTiers(),
}

func (m Model) Validate() error {
	if m.Budget <= 0 {
		return fmt.Errorf("point budget %d must be positive", m.Budget)
	}
	return m.Tiers.Validate()
}

// Damage returns ceil((p/7)*100)/100, rejecting p outside [0, budget)
func (m Model) Damage(p int) (float64, error) {
	if p < 0 || p >= m.Budget {
		return 0, fmt.Errorf("damage points %d outside [0,%d): %w", p, m.Budget, ErrInvalidAllocation)
	}
	raw := float64(p) / parameter.DamageDivisor
	return math.Ceil(raw*parameter.DamageRoundingScale) / parameter.DamageRoundingScale, nil
}

// Speed returns the tiered speed in px/s, rejecting p outside [0, budget)
func (m Model) Speed(p int) (float64, error) {
	if p < 0 || p >= m.Budget {
		return 0, fmt.Errorf("speed points %d outside [0,%d): %w", p, m.Budget, ErrInvalidAllocation)
	}
	t := m.Tiers
	if p == 0 {
		return t.Malus, nil
	}
	if p <= t.LowTierPoints {
		return t.Base + t.LowStep*float64(p), nil
	}
	return t.Base + t.LowStep*float64(t.LowTierPoints) + t.HighStep*float64(p-t.LowTierPoints), nil
}

// Health returns p as health, rejecting p outside [0, budget]
func (m Model) Health(p int) (float64, error) {
	if p < 0 || p > m.Budget {
		return 0, fmt.Errorf("health points %d outside [0,%d]: %w", p, m.Budget, ErrInvalidAllocation)
	}
	return float64(p), nil
}

func DamageFromPoints(p int) (float64, error) { return DefaultModel.Damage(p) }
func SpeedFromPoints(p int) (float64, error)  { return DefaultModel.Speed(p) }
func HealthFromPoints(p int) (float64, error) { return DefaultModel.Health(p) }
