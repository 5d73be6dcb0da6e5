// Package roster turns construction input into the player list a match starts with
package roster

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/stat"
	"github.com/lixenwraith/vi-arena/vmath"
)

var (
	// ErrPlayerCount rejects rosters outside [MinPlayers, MaxPlayers]
	ErrPlayerCount = errors.New("invalid player count")
	// ErrOutOfBounds rejects explicit positions the arena cannot hold
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Spec is one player's construction input
// Start and Target override the ring placement for scripted scenarios
type Spec struct {
	Name   string          `toml:"name"`
	Points stat.Allocation `toml:"points"`
	Start  *vmath.Vec2     `toml:"start"`
	Target *vmath.Vec2     `toml:"target"`
}

// DefaultName is the label a player gets when none is given, 1-based
func DefaultName(index int) string {
	return fmt.Sprintf("PLAYER %d", index+1)
}

// CheckCount validates the roster size
func CheckCount(n int) error {
	if n < parameter.MinPlayers || n > parameter.MaxPlayers {
		return fmt.Errorf("%d players, want %d to %d: %w", n, parameter.MinPlayers, parameter.MaxPlayers, ErrPlayerCount)
	}
	return nil
}

// Build derives stats and places every player
// Players without explicit positions start on the ring heading for the arena edge
func Build(a core.Arena, m stat.Model, specs []Spec) ([]*component.Player, error) {
	if err := CheckCount(len(specs)); err != nil {
		return nil, err
	}

	starts := StartPositions(a, len(specs))
	targets := EdgeTargets(a, len(specs))
	players := make([]*component.Player, 0, len(specs))

	for i, s := range specs {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			name = DefaultName(i)
		}

		st, err := m.Derive(s.Points)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", name, err)
		}

		start, target := starts[i], targets[i]
		if s.Start != nil {
			if !a.Inside(*s.Start) {
				return nil, fmt.Errorf("player %q start %v outside inset bounds: %w", name, *s.Start, ErrOutOfBounds)
			}
			start = *s.Start
		}
		if s.Target != nil {
			if !inBox(a, *s.Target) {
				return nil, fmt.Errorf("player %q target %v outside arena: %w", name, *s.Target, ErrOutOfBounds)
			}
			target = *s.Target
		}

		players = append(players, component.NewPlayer(name, st.Health, st.Damage, st.Speed, start, target, time.Time{}))
	}
	return players, nil
}

// StartPositions spreads n points evenly on the start ring, first point on the +X axis
func StartPositions(a core.Arena, n int) []vmath.Vec2 {
	out := make([]vmath.Vec2, n)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(n)
		out[i] = a.Center.Add(vmath.V2(math.Cos(angle), math.Sin(angle)).Scale(a.StartRadius))
	}
	return out
}

// EdgeTargets casts a ray from the center along each ring angle to the arena edge
func EdgeTargets(a core.Arena, n int) []vmath.Vec2 {
	out := make([]vmath.Vec2, n)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(n)
		dir := vmath.V2(math.Cos(angle), math.Sin(angle))

		tX, tY := math.Inf(1), math.Inf(1)
		if dir.X > 0 {
			tX = (a.Width - a.Center.X) / dir.X
		} else if dir.X < 0 {
			tX = -a.Center.X / dir.X
		}
		if dir.Y > 0 {
			tY = (a.Height - a.Center.Y) / dir.Y
		} else if dir.Y < 0 {
			tY = -a.Center.Y / dir.Y
		}

		hit := a.Center.Add(dir.Scale(math.Min(tX, tY)))
		out[i] = hit.Clamp(vmath.Vec2{}, vmath.V2(a.Width, a.Height))
	}
	return out
}

func inBox(a core.Arena, p vmath.Vec2) bool {
	return p.X >= 0 && p.X <= a.Width && p.Y >= 0 && p.Y <= a.Height
}
