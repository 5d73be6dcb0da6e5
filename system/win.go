package system

import (
	"github.com/lixenwraith/vi-arena/component"
)

// NoWinner marks a draw in Result.Winner
const NoWinner = -1

// Result is the end-of-match outcome
type Result struct {
	// Winner is the index of the surviving player, NoWinner on a draw
	Winner int
	Name   string
	Draw   bool
	// TimedOut is set when the match hit its tick limit before resolving
	TimedOut bool
}

// Survivors counts players with positive health
func Survivors(players []*component.Player) int {
	n := 0
	for _, p := range players {
		if p.Health > 0 {
			n++
		}
	}
	return n
}

// Evaluate reports the match result once fewer than two players have positive health
// A simultaneous knockout of the last players is a draw
func Evaluate(players []*component.Player) (Result, bool) {
	if Survivors(players) >= 2 {
		return Result{}, false
	}
	for i, p := range players {
		if p.Health > 0 {
			return Result{Winner: i, Name: p.Name}, true
		}
	}
	return Result{Winner: NoWinner, Draw: true}, true
}

// Leader picks the healthiest living player for a match stopped before resolving
// A shared lead or no living player is a draw
func Leader(players []*component.Player) Result {
	best := NoWinner
	for i, p := range players {
		if p.Health <= 0 {
			continue
		}
		if best == NoWinner || p.Health > players[best].Health {
			best = i
		}
	}
	if best == NoWinner {
		return Result{Winner: NoWinner, Draw: true, TimedOut: true}
	}
	// Shared lead is still a draw
	for i, p := range players {
		if i != best && p.Health == players[best].Health {
			return Result{Winner: NoWinner, Draw: true, TimedOut: true}
		}
	}
	return Result{Winner: best, Name: players[best].Name, TimedOut: true}
}
