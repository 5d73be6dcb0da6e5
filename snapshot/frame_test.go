package snapshot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(tick int64) Frame {
	return Frame{
		Tick:    tick,
		MatchID: "6f1c2a2e-9a57-4a8e-bb0b-9a3f4c1d2e11",
		Players: []Player{
			{Index: 0, Name: "Ada", X: 233.5, Y: 250, Health: 4, MaxHealth: 5, Alive: true},
			{Index: 1, Name: "Bob", X: 257.5, Y: 250, Health: -0.25, MaxHealth: 3, Alive: false},
		},
	}
}

func TestEncodeDecode(t *testing.T) {
	data, err := Encode(sample(42))
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, sample(42), got)
	assert.Equal(t, 1, got.AliveCount())
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte{0xc1})
	assert.Error(t, err)
}

func TestStreamReadAll(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)
	for tick := int64(1); tick <= 3; tick++ {
		require.NoError(t, s.Write(sample(tick)))
	}
	assert.Equal(t, 3, s.Frames())

	var ticks []int64
	err := ReadAll(&buf, func(f Frame) error {
		ticks = append(ticks, f.Tick)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ticks)
}

func TestCloneIsIndependent(t *testing.T) {
	f := sample(1)
	c := f.Clone()
	c.Players[0].X = 0
	assert.Equal(t, 233.5, f.Players[0].X)
}
