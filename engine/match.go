package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/roster"
	"github.com/lixenwraith/vi-arena/snapshot"
	"github.com/lixenwraith/vi-arena/stat"
	"github.com/lixenwraith/vi-arena/status"
	"github.com/lixenwraith/vi-arena/system"
	"github.com/lixenwraith/vi-arena/vmath"
)

// ErrInvalidConfig rejects a match configuration before any player is built
var ErrInvalidConfig = errors.New("invalid match config")

// MatchConfig is the fixed setup of one match
type MatchConfig struct {
	Arena    core.Arena
	Model    stat.Model
	Seed     uint64
	TickRate int
	// MaxTicks ends an unresolved match with the health leader, 0 disables the limit
	MaxTicks int64
}

// DefaultMatchConfig returns the 500x500 arena at 60 Hz with the default stat model
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Arena:    core.DefaultArena(),
		Model:    stat.DefaultModel,
		Seed:     parameter.DefaultSeed,
		TickRate: parameter.TickRate,
		MaxTicks: parameter.MaxMatchTicks,
	}
}

func (c MatchConfig) Validate() error {
	if err := c.Arena.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Model.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalidConfig, c.TickRate)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("%w: max ticks %d must not be negative", ErrInvalidConfig, c.MaxTicks)
	}
	return nil
}

// Step is the fixed logical tick duration in seconds
func (c MatchConfig) Step() float64 {
	return 1 / float64(c.TickRate)
}

// Interval is the wall-clock pacing of one tick
func (c MatchConfig) Interval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Option configures a Match
type Option func(*Match)

// WithLogger routes match logs to l
func WithLogger(l *log.Logger) Option {
	return func(m *Match) { m.logger = l }
}

// WithClock replaces the simulated clock
// A clock that cannot be advanced makes collision timestamps wall-clock dependent
func WithClock(c Clock) Option {
	return func(m *Match) { m.clock = c }
}

// WithRand replaces the seeded random source
func WithRand(r vmath.Rand) Option {
	return func(m *Match) { m.rng = r }
}

// WithRegistry reports metrics into reg
func WithRegistry(reg *status.Registry) Option {
	return func(m *Match) { m.reg = reg }
}

// WithEvents publishes into an existing queue
func WithEvents(q *event.Queue) Option {
	return func(m *Match) { m.events = q }
}

// clockOrigin is the simulated time a match starts at
var clockOrigin = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Match drives one World from construction to a result
// Advance, Run and Simulate must be called from a single goroutine
// Active, Done, Result and Frame are safe from any goroutine
type Match struct {
	id     string
	cfg    MatchConfig
	world  *World
	clock  Clock
	rng    vmath.Rand
	events *event.Queue
	reg    *status.Registry
	logger *log.Logger

	active   atomic.Bool
	done     chan struct{}
	tick     int64
	mu       sync.RWMutex
	frame    snapshot.Frame
	result   system.Result
	resolved bool

	statTicks  *atomic.Int64
	statActive *atomic.Bool
	statWinner *status.Label
	statTime   *status.Float
}

// NewMatch validates the input, builds the world and starts the match
func NewMatch(cfg MatchConfig, specs []roster.Spec, opts ...Option) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Match{
		id:   uuid.New().String(),
		cfg:  cfg,
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard, "", 0)
	}
	if m.clock == nil {
		m.clock = NewSimClock(clockOrigin)
	}
	if m.rng == nil {
		m.rng = vmath.NewFastRand(cfg.Seed)
	}
	if m.reg == nil {
		m.reg = status.NewRegistry()
	}
	if m.events == nil {
		m.events = event.NewQueue()
	}

	players, err := roster.Build(cfg.Arena, cfg.Model, specs)
	if err != nil {
		return nil, fmt.Errorf("build roster: %w", err)
	}
	m.world = NewWorld(cfg.Arena, players, m.rng, m.reg)

	m.statTicks = m.reg.Ints.Get("match.ticks")
	m.statActive = m.reg.Bools.Get("match.active")
	m.statWinner = m.reg.Labels.Get("match.winner")
	m.statTime = m.reg.Floats.Get("match.elapsed")
	m.reg.Labels.Get("match.id").Store(m.id)

	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}

	m.frame = m.world.Frame(0)
	m.frame.MatchID = m.id
	m.active.Store(true)
	m.statActive.Store(true)
	m.events.Push(event.Event{
		Type:    event.EventMatchStart,
		Payload: &event.MatchStartPayload{MatchID: m.id, Seed: cfg.Seed, Players: names},
	})
	m.logger.Printf("match %s started: %d players, seed %#x, %d Hz", m.id, len(players), cfg.Seed, cfg.TickRate)
	return m, nil
}

func (m *Match) ID() string {
	return m.id
}

func (m *Match) Config() MatchConfig {
	return m.cfg
}

// Active is true from construction until the match resolves
func (m *Match) Active() bool {
	return m.active.Load()
}

// Done is closed when the match resolves
func (m *Match) Done() <-chan struct{} {
	return m.done
}

// Result returns the outcome once the match has resolved
func (m *Match) Result() (system.Result, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.result, m.resolved
}

func (m *Match) Events() *event.Queue {
	return m.events
}

func (m *Match) Registry() *status.Registry {
	return m.reg
}

// Tick returns the number of ticks advanced
func (m *Match) Tick() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tick
}

// Frame returns a copy of the latest committed frame
// The last frame of a resolved match stays available after the world is cleared
func (m *Match) Frame() snapshot.Frame {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.frame.Clone()
}

// Advance runs one tick of dt seconds and reports whether the match is still active
func (m *Match) Advance(dt float64) bool {
	if !m.active.Load() {
		return false
	}

	if c, ok := m.clock.(interface{ Advance(time.Duration) }); ok {
		c.Advance(time.Duration(dt * float64(time.Second)))
	}
	report := m.world.Step(dt, m.clock.Now())

	m.mu.Lock()
	m.tick++
	tick := m.tick
	m.frame = m.world.Frame(tick)
	m.frame.MatchID = m.id
	m.mu.Unlock()

	m.statTicks.Store(tick)
	m.statTime.Add(dt)
	m.publish(tick, report)

	if res, over := m.world.Evaluate(); over {
		m.finish(res)
		return false
	}
	if m.cfg.MaxTicks > 0 && tick >= m.cfg.MaxTicks {
		m.finish(m.world.Leader())
		return false
	}
	return true
}

// Run advances at the configured tick rate until the match resolves or ctx ends
// Simulated time moves by the fixed step; wall time only paces the loop
func (m *Match) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.cfg.Interval())
	defer ticker.Stop()

	dt := m.cfg.Step()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !m.Advance(dt) {
				return nil
			}
		}
	}
}

// Simulate advances without pacing until the match resolves or ctx ends
func (m *Match) Simulate(ctx context.Context) error {
	dt := m.cfg.Step()
	for m.Advance(dt) {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (m *Match) publish(tick int64, r TickReport) {
	for _, i := range r.WallHits() {
		c := r.Outcomes[i].Contact
		m.events.Push(event.Event{
			Type:    event.EventWallBounce,
			Payload: &event.WallBouncePayload{Player: i, X: c.X, Y: c.Y},
			Tick:    tick,
		})
	}
	for _, c := range r.Contacts {
		m.events.Push(event.Event{
			Type:    event.EventPlayerBounce,
			Payload: &event.PlayerBouncePayload{A: c.A, B: c.B},
			Tick:    tick,
		})
	}
	for _, h := range r.Hits {
		victim := m.world.Player(h.Victim)
		event.EmitHit(m.events, tick, event.HitPayload{
			Victim:    h.Victim,
			Attacker:  h.Attacker,
			Damage:    h.Damage,
			Remaining: victim.Health,
		}, h.Knockout, victim.Name)
		if h.Knockout {
			m.logger.Printf("match %s tick %d: %s knocked out by %s", m.id, tick, victim.Name, m.world.Player(h.Attacker).Name)
		}
	}
}

// finish records the result, clears the world and signals the end
func (m *Match) finish(res system.Result) {
	m.mu.Lock()
	m.result = res
	m.resolved = true
	tick := m.tick
	m.mu.Unlock()

	m.world.Clear()
	m.active.Store(false)
	m.statActive.Store(false)
	m.statWinner.Store(res.Name)

	m.events.Push(event.Event{
		Type: event.EventMatchEnd,
		Payload: &event.MatchEndPayload{
			MatchID:  m.id,
			Winner:   res.Winner,
			Name:     res.Name,
			Draw:     res.Draw,
			TimedOut: res.TimedOut,
			Ticks:    tick,
		},
		Tick: tick,
	})

	switch {
	case res.Draw:
		m.logger.Printf("match %s ended in a draw after %d ticks (timed out: %t)", m.id, tick, res.TimedOut)
	default:
		m.logger.Printf("match %s won by %s after %d ticks (timed out: %t)", m.id, res.Name, tick, res.TimedOut)
	}
	m.logger.Printf("match %s metrics: %s", m.id, m.reg.Summary())
	close(m.done)
}
