package stat

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-arena/parameter"
)

func TestDamageFromPoints(t *testing.T) {
	prev := -1.0
	for p := 0; p < parameter.PointBudget; p++ {
		d, err := DamageFromPoints(p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, d, 0.0)
		assert.GreaterOrEqual(t, d, prev, "damage must not decrease at %d points", p)
		// At most two decimals
		assert.InDelta(t, math.Round(d*100), d*100, 1e-9)
		prev = d
	}

	d, err := DamageFromPoints(7)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	d, err = DamageFromPoints(1)
	require.NoError(t, err)
	assert.Equal(t, 0.15, d) // 0.142857 rounded up

	_, err = DamageFromPoints(10)
	assert.ErrorIs(t, err, ErrInvalidAllocation)
	_, err = DamageFromPoints(-1)
	assert.ErrorIs(t, err, ErrInvalidAllocation)
}

func TestSpeedFromPoints(t *testing.T) {
	s, err := SpeedFromPoints(0)
	require.NoError(t, err)
	assert.Equal(t, parameter.SpeedMalus, s)

	want := []float64{70, 100, 120, 140, 170, 200, 230, 260, 290, 320}
	prev := 0.0
	for p := 0; p < parameter.PointBudget; p++ {
		s, err := SpeedFromPoints(p)
		require.NoError(t, err)
		assert.Equal(t, want[p], s, "speed at %d points", p)
		assert.Greater(t, s, prev, "speed must strictly increase at %d points", p)
		prev = s
	}

	_, err = SpeedFromPoints(-1)
	assert.ErrorIs(t, err, ErrInvalidAllocation)
	_, err = SpeedFromPoints(parameter.PointBudget)
	assert.ErrorIs(t, err, ErrInvalidAllocation)
}

func TestHealthFromPoints(t *testing.T) {
	for p := 0; p <= parameter.PointBudget; p++ {
		h, err := HealthFromPoints(p)
		require.NoError(t, err)
		assert.Equal(t, float64(p), h)
	}
	_, err := HealthFromPoints(parameter.PointBudget + 1)
	assert.True(t, errors.Is(err, ErrInvalidAllocation))
}

func TestSpeedTiersValidate(t *testing.T) {
	require.NoError(t, DefaultSpeedTiers().Validate())

	bad := DefaultSpeedTiers()
	bad.HighStep = 10
	assert.Error(t, bad.Validate(), "high step below low step shrinks marginal gain")

	bad = DefaultSpeedTiers()
	bad.Base = 40
	assert.Error(t, bad.Validate(), "first point must beat the malus")

	custom := Model{Budget: 10, Tiers: SpeedTiers{Malus: 50, Base: 60, LowTierPoints: 2, LowStep: 10, HighStep: 15}}
	require.NoError(t, custom.Validate())
	s, err := custom.Speed(4)
	require.NoError(t, err)
	assert.Equal(t, 60.0+20+30, s)
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name    string
		alloc   Allocation
		want    Stats
		wantErr bool
	}{
		{"balanced", Allocation{Damage: 3, Speed: 3, Health: 4}, Stats{Damage: 0.43, Speed: 140, Health: 4}, false},
		{"glass cannon", Allocation{Damage: 7, Speed: 2, Health: 1}, Stats{Damage: 1, Speed: 120, Health: 1}, false},
		{"no speed", Allocation{Damage: 1, Speed: 0, Health: 9}, Stats{Damage: 0.15, Speed: 70, Health: 9}, false},
		{"over budget", Allocation{Damage: 5, Speed: 5, Health: 5}, Stats{}, true},
		{"no damage", Allocation{Damage: 0, Speed: 5, Health: 5}, Stats{}, true},
		{"no health", Allocation{Damage: 5, Speed: 5, Health: 0}, Stats{}, true},
		{"negative", Allocation{Damage: 2, Speed: -1, Health: 2}, Stats{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DefaultModel.Derive(tc.alloc)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAllocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 2, DefaultModel.Remaining(Allocation{Damage: 3, Speed: 3, Health: 2}))
	assert.Equal(t, -1, DefaultModel.Remaining(Allocation{Damage: 5, Speed: 3, Health: 3}))
}
