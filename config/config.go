// Package config loads match setup from a TOML file layered over compiled defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/roster"
	"github.com/lixenwraith/vi-arena/stat"
)

// ErrInvalid marks a decoded config that fails validation
var ErrInvalid = errors.New("invalid config")

type Arena struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Radius      float64 `toml:"radius"`
	StartRadius float64 `toml:"start_radius"`
}

type Match struct {
	Seed     uint64 `toml:"seed"`
	TickRate int    `toml:"tick_rate"`
	MaxTicks int64  `toml:"max_ticks"` // 0 disables the limit
}

type Stats struct {
	Budget int             `toml:"budget"`
	Speed  stat.SpeedTiers `toml:"speed"`
}

type Viewer struct {
	Color bool `toml:"color"`
	Sound bool `toml:"sound"`
	// Volume is the cue gain in [0, 1]
	Volume float64 `toml:"volume"`
	// Events is a comma-separated event name filter for the log, empty logs all
	Events string `toml:"events"`
}

// Config is the whole file
type Config struct {
	Arena   Arena         `toml:"arena"`
	Match   Match         `toml:"match"`
	Stats   Stats         `toml:"stats"`
	Viewer  Viewer        `toml:"viewer"`
	Players []roster.Spec `toml:"player"`
}

// Default returns the compiled-in configuration with a two-player roster
func Default() Config {
	return Config{
		Arena: Arena{
			Width:       parameter.ArenaWidth,
			Height:      parameter.ArenaHeight,
			Radius:      parameter.PlayerRadius,
			StartRadius: parameter.StartRingRadius,
		},
		Match: Match{
			Seed:     parameter.DefaultSeed,
			TickRate: parameter.TickRate,
			MaxTicks: parameter.MaxMatchTicks,
		},
		Stats: Stats{
			Budget: parameter.PointBudget,
			Speed:  stat.DefaultSpeedTiers(),
		},
		Viewer: Viewer{
			Color:  true,
			Volume: parameter.CueVolume,
		},
		Players: []roster.Spec{
			{Name: roster.DefaultName(0), Points: stat.Allocation{Damage: 3, Speed: 3, Health: 4}},
			{Name: roster.DefaultName(1), Points: stat.Allocation{Damage: 4, Speed: 2, Health: 4}},
		},
	}
}

// Load reads path over the defaults; keys absent from the file keep their default
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result
// Unknown keys are rejected
func Parse(data []byte) (Config, error) {
	cfg := Default()
	// A file roster replaces the default one rather than merging into it
	var probe struct {
		Players []roster.Spec `toml:"player"`
	}
	if _, err := toml.Decode(string(data), &probe); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if len(probe.Players) > 0 {
		cfg.Players = nil
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode renders cfg as TOML
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes cfg to path
func Save(path string, cfg Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate checks the match setup and the roster size
// Allocations are checked when the roster is built
func (c Config) Validate() error {
	if err := c.MatchConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := roster.CheckCount(len(c.Players)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Viewer.Volume < 0 || c.Viewer.Volume > 1 {
		return fmt.Errorf("%w: volume %g outside [0, 1]", ErrInvalid, c.Viewer.Volume)
	}
	return nil
}

// MatchConfig converts the file sections into engine input
func (c Config) MatchConfig() engine.MatchConfig {
	return engine.MatchConfig{
		Arena:    core.NewArena(c.Arena.Width, c.Arena.Height, c.Arena.Radius, c.Arena.StartRadius),
		Model:    stat.Model{Budget: c.Stats.Budget, Tiers: c.Stats.Speed},
		Seed:     c.Match.Seed,
		TickRate: c.Match.TickRate,
		MaxTicks: c.Match.MaxTicks,
	}
}
