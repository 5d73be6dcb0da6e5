package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/status"
	"github.com/lixenwraith/vi-arena/vmath"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func fighter(name string, health, damage float64, lastHit time.Time) *component.Player {
	return component.NewPlayer(name, health, damage, 100, vmath.V2(100, 100), vmath.V2(200, 200), lastHit)
}

func mutual(i, j int) []physics.Outcome {
	out := make([]physics.Outcome, max(i, j)+1)
	for k := range out {
		out[k] = physics.Outcome{Other: physics.NoPlayer}
	}
	out[i] = physics.Outcome{Collided: true, Other: j}
	out[j] = physics.Outcome{Collided: true, Other: i}
	return out
}

func TestContactsDeduplicates(t *testing.T) {
	outcomes := []physics.Outcome{
		{Collided: true, Other: 2},
		{Collided: true, Other: physics.NoPlayer},
		{Collided: true, Other: 0},
		{Collided: true, Other: 1},
		{Other: physics.NoPlayer},
	}
	assert.Equal(t, []Contact{{A: 0, B: 2}, {A: 1, B: 3}}, Contacts(outcomes))
}

func TestCombatOlderLastHitTakesDamage(t *testing.T) {
	reg := status.NewRegistry()
	cs := NewCombatSystem(reg)
	players := []*component.Player{
		fighter("A", 5, 1.5, epoch),
		fighter("B", 5, 0.5, epoch.Add(time.Second)),
	}
	now := epoch.Add(2 * time.Second)

	hits := cs.Resolve(players, mutual(0, 1), now)
	require.Len(t, hits, 1)
	assert.Equal(t, Hit{Victim: 0, Attacker: 1, Damage: 0.5}, hits[0])
	assert.InDelta(t, 4.5, players[0].Health, 1e-12)
	assert.Equal(t, 5.0, players[1].Health)

	assert.Equal(t, now, players[0].LastHit)
	assert.Equal(t, now, players[1].LastHit)
	assert.Equal(t, int64(1), reg.Ints.Get("combat.hits").Load())
	assert.Equal(t, int64(1), reg.Ints.Get("combat.contacts").Load())
}

func TestCombatOrderIndependent(t *testing.T) {
	a := func() *component.Player { return fighter("A", 5, 1, epoch) }
	b := func() *component.Player { return fighter("B", 5, 2, epoch.Add(time.Millisecond)) }
	now := epoch.Add(time.Second)

	forward := []*component.Player{a(), b()}
	hf := NewCombatSystem(status.NewRegistry()).Resolve(forward, mutual(0, 1), now)

	reversed := []*component.Player{b(), a()}
	hr := NewCombatSystem(status.NewRegistry()).Resolve(reversed, mutual(0, 1), now)

	require.Len(t, hf, 1)
	require.Len(t, hr, 1)
	assert.Equal(t, "A", forward[hf[0].Victim].Name)
	assert.Equal(t, "A", reversed[hr[0].Victim].Name)
	assert.Equal(t, forward[0].Health, reversed[1].Health)
	assert.Equal(t, forward[1].Health, reversed[0].Health)
}

func TestCombatTieBreaksByListIndex(t *testing.T) {
	now := epoch.Add(time.Second)
	forward := []*component.Player{fighter("A", 5, 1, epoch), fighter("B", 5, 1, epoch)}
	reversed := []*component.Player{fighter("B", 5, 1, epoch), fighter("A", 5, 1, epoch)}

	hf := NewCombatSystem(status.NewRegistry()).Resolve(forward, mutual(0, 1), now)
	hr := NewCombatSystem(status.NewRegistry()).Resolve(reversed, mutual(0, 1), now)

	require.Len(t, hf, 1)
	require.Len(t, hr, 1)
	assert.Equal(t, 1, hf[0].Victim)
	assert.Equal(t, 1, hr[0].Victim)
	assert.Equal(t, "B", forward[hf[0].Victim].Name)
	assert.Equal(t, "A", reversed[hr[0].Victim].Name)
}

func TestCombatTiesAlternate(t *testing.T) {
	cs := NewCombatSystem(status.NewRegistry())
	players := []*component.Player{
		fighter("A", 10, 1, epoch),
		fighter("B", 10, 1, epoch),
	}

	var victims []int
	for tick := 1; tick <= 4; tick++ {
		hits := cs.Resolve(players, mutual(0, 1), epoch.Add(time.Duration(tick)*time.Second))
		require.Len(t, hits, 1)
		victims = append(victims, hits[0].Victim)
	}
	assert.Equal(t, []int{1, 0, 1, 0}, victims)
	assert.Equal(t, 8.0, players[0].Health)
	assert.Equal(t, 8.0, players[1].Health)

	cs.Reset()
	hits := cs.Resolve(players, mutual(0, 1), epoch.Add(5*time.Second))
	assert.Equal(t, 1, hits[0].Victim)
}

func TestCombatDeadDealNoDamage(t *testing.T) {
	cs := NewCombatSystem(status.NewRegistry())
	players := []*component.Player{
		fighter("A", 5, 1, epoch),
		fighter("B", 1, 3, epoch.Add(time.Second)),
	}
	players[1].TakeDamage(1)
	require.False(t, players[1].Alive)

	hits := cs.Resolve(players, mutual(0, 1), epoch.Add(2*time.Second))
	assert.Empty(t, hits)
	assert.Equal(t, 5.0, players[0].Health)
	assert.False(t, players[1].Alive)
	assert.Equal(t, epoch.Add(2*time.Second), players[1].LastHit)
}

func TestCombatWallStampsLastHit(t *testing.T) {
	cs := NewCombatSystem(status.NewRegistry())
	players := []*component.Player{fighter("A", 5, 1, epoch), fighter("B", 5, 1, epoch)}
	outcomes := []physics.Outcome{
		{Collided: true, Other: physics.NoPlayer},
		{Other: physics.NoPlayer},
	}
	now := epoch.Add(time.Second)

	assert.Empty(t, cs.Resolve(players, outcomes, now))
	assert.Equal(t, now, players[0].LastHit)
	assert.Equal(t, epoch, players[1].LastHit)
}

func TestCombatOneSidedContact(t *testing.T) {
	cs := NewCombatSystem(status.NewRegistry())
	players := []*component.Player{fighter("A", 5, 1, epoch), fighter("B", 5, 2, epoch.Add(time.Second))}
	// B hit a wall first, but A still named B
	outcomes := []physics.Outcome{
		{Collided: true, Other: 1},
		{Collided: true, Other: physics.NoPlayer},
	}
	hits := cs.Resolve(players, outcomes, epoch.Add(2*time.Second))
	require.Len(t, hits, 1)
	assert.Equal(t, 0, hits[0].Victim)
	assert.Equal(t, 3.0, players[0].Health)
}

func TestCombatDoubleKnockout(t *testing.T) {
	reg := status.NewRegistry()
	cs := NewCombatSystem(reg)
	players := []*component.Player{
		fighter("A", 1, 0.5, epoch),
		fighter("B", 0.5, 0.5, epoch),
		fighter("C", 3.5, 1, epoch.Add(time.Second)),
	}
	outcomes := []physics.Outcome{
		{Collided: true, Other: 2},
		{Collided: true, Other: 2},
		{Collided: true, Other: 0},
	}

	hits := cs.Resolve(players, outcomes, epoch.Add(2*time.Second))
	require.Len(t, hits, 2)
	for _, h := range hits {
		assert.Equal(t, 2, h.Attacker)
		assert.True(t, h.Knockout)
	}
	assert.Equal(t, 3.5, players[2].Health)
	assert.Equal(t, int64(2), reg.Ints.Get("combat.knockouts").Load())

	res, done := Evaluate(players)
	require.True(t, done)
	assert.Equal(t, Result{Winner: 2, Name: "C"}, res)
}

func TestEvaluate(t *testing.T) {
	players := []*component.Player{
		fighter("A", 2, 1, epoch),
		fighter("B", 3, 1, epoch),
	}
	_, done := Evaluate(players)
	assert.False(t, done)
	assert.Equal(t, 2, Survivors(players))

	players[0].TakeDamage(2)
	players[1].TakeDamage(3)
	res, done := Evaluate(players)
	require.True(t, done)
	assert.True(t, res.Draw)
	assert.Equal(t, NoWinner, res.Winner)
}

func TestLeader(t *testing.T) {
	players := []*component.Player{
		fighter("A", 2, 1, epoch),
		fighter("B", 4, 1, epoch),
		fighter("C", 3, 1, epoch),
	}
	res := Leader(players)
	assert.Equal(t, Result{Winner: 1, Name: "B", TimedOut: true}, res)

	players[2].Health = 4
	res = Leader(players)
	assert.True(t, res.Draw)
	assert.True(t, res.TimedOut)

	for _, p := range players {
		p.TakeDamage(10)
	}
	assert.Equal(t, Result{Winner: NoWinner, Draw: true, TimedOut: true}, Leader(players))
}
