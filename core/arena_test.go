package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-arena/vmath"
)

func TestDefaultArena(t *testing.T) {
	a := DefaultArena()
	require.NoError(t, a.Validate())
	assert.Equal(t, vmath.V2(250, 250), a.Center)
	assert.Equal(t, vmath.V2(12, 12), a.Min())
	assert.Equal(t, vmath.V2(488, 488), a.Max())
}

func TestArenaInsideAndClamp(t *testing.T) {
	a := DefaultArena()
	assert.True(t, a.Inside(vmath.V2(12, 488)))
	assert.False(t, a.Inside(vmath.V2(11.9, 250)))
	assert.Equal(t, vmath.V2(488, 12), a.Clamp(vmath.V2(600, -3)))
}

func TestArenaRandomPointInside(t *testing.T) {
	a := DefaultArena()
	rng := vmath.NewFastRand(99)
	for i := 0; i < 1000; i++ {
		p := a.RandomPoint(rng)
		require.True(t, a.Inside(p), "random point %v outside inset bounds", p)
	}
}

func TestArenaValidate(t *testing.T) {
	assert.Error(t, NewArena(20, 500, 12, 0).Validate())
	assert.Error(t, NewArena(500, 500, 0, 75).Validate())
	assert.Error(t, NewArena(500, 500, 12, -1).Validate())
	assert.NoError(t, NewArena(300, 200, 10, 50).Validate())

	// Ring must fit the inset bounds on the shorter axis
	assert.NoError(t, NewArena(300, 200, 10, 90).Validate())
	assert.Error(t, NewArena(300, 200, 10, 90.5).Validate())
	assert.Error(t, NewArena(500, 500, 12, 300).Validate())
}
