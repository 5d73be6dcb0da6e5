package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-arena/audio"
	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/lixenwraith/vi-arena/snapshot"
	"github.com/lixenwraith/vi-arena/system"
)

var (
	configFlag   = flag.String("config", "", "TOML config file (defaults when empty)")
	writeConfig  = flag.String("write-config", "", "Write the effective config to this path and exit")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, overrides config")
	headlessFlag = flag.Bool("headless", false, "Simulate without the terminal viewer")
	soundFlag    = flag.Bool("sound", false, "Play audio cues")
	tickFlag     = flag.Int("tick", 0, "Logical tick rate in Hz, overrides config")
	maxTicksFlag = flag.Int64("max-ticks", 0, "Tick limit, overrides config")
	logFlag      = flag.String("log", "vi-arena.log", "Log file used while the viewer owns the terminal")
	colorFlag    = flag.String("color", "auto", "Color mode: auto (config), on, off")
	eventsFlag   = flag.String("events", "", "Comma-separated event names to log, overrides config")
	framesFlag   = flag.String("frames", "", "Stream msgpack frames to this file")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the viewer crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-arena: %v\n", err)
		os.Exit(2)
	}

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "vi-arena: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, closeLog, err := openLogger(*headlessFlag, *logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-arena: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, logger); err != nil {
		logger.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "vi-arena: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// loadConfig layers set flags over the file over the defaults
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Match.Seed = *seedFlag
		case "tick":
			cfg.Match.TickRate = *tickFlag
		case "max-ticks":
			cfg.Match.MaxTicks = *maxTicksFlag
		case "sound":
			cfg.Viewer.Sound = *soundFlag
		case "events":
			cfg.Viewer.Events = *eventsFlag
		case "color":
			switch strings.ToLower(*colorFlag) {
			case "on", "true":
				cfg.Viewer.Color = true
			case "off", "false":
				cfg.Viewer.Color = false
			}
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func openLogger(headless bool, path string) (*log.Logger, func(), error) {
	if headless {
		return log.New(os.Stderr, "[vi-arena] ", log.LstdFlags), func() {}, nil
	}
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return log.New(f, "[vi-arena] ", log.LstdFlags), func() { f.Close() }, nil
}

// session fans match events out to the log, the sound manager and the frame stream
type session struct {
	match    *engine.Match
	logger   *log.Logger
	mask     map[event.EventType]bool
	sound    *audio.SoundManager
	frames   *snapshot.Stream
	lastTick int64
}

// drain consumes pending events and writes the current frame if it is new
func (s *session) drain() {
	for _, ev := range s.match.Events().Consume() {
		if s.mask[ev.Type] {
			s.logger.Printf("tick %d %s %s", ev.Tick, ev.Type, describe(ev))
		}
		if s.sound != nil {
			s.sound.Handle(ev)
		}
	}
	if s.frames == nil {
		return
	}
	f := s.match.Frame()
	if f.Tick == s.lastTick && f.Tick != 0 {
		return
	}
	s.lastTick = f.Tick
	if err := s.frames.Write(f); err != nil {
		s.logger.Printf("frame stream stopped: %v", err)
		s.frames = nil
	}
}

func describe(ev event.Event) string {
	switch p := ev.Payload.(type) {
	case *event.MatchStartPayload:
		return fmt.Sprintf("id=%s players=%s", p.MatchID, strings.Join(p.Players, ","))
	case *event.MatchEndPayload:
		return fmt.Sprintf("winner=%q draw=%t timeout=%t", p.Name, p.Draw, p.TimedOut)
	case *event.HitPayload:
		return fmt.Sprintf("victim=%d attacker=%d damage=%.2f remaining=%.2f", p.Victim, p.Attacker, p.Damage, p.Remaining)
	case *event.KnockoutPayload:
		return fmt.Sprintf("victim=%s", p.Name)
	case *event.WallBouncePayload:
		return fmt.Sprintf("player=%d at=(%.1f,%.1f)", p.Player, p.X, p.Y)
	case *event.PlayerBouncePayload:
		return fmt.Sprintf("pair=%d,%d", p.A, p.B)
	}
	return ""
}

func run(cfg config.Config, logger *log.Logger) error {
	mask, unknown := event.ParseMask(cfg.Viewer.Events)
	if len(unknown) > 0 {
		sort.Strings(unknown)
		logger.Printf("ignoring unknown event names: %s", strings.Join(unknown, ", "))
	}

	m, err := engine.NewMatch(cfg.MatchConfig(), cfg.Players, engine.WithLogger(logger))
	if err != nil {
		return err
	}
	s := &session{match: m, logger: logger, mask: mask}

	if cfg.Viewer.Sound {
		sm := audio.NewSoundManager(cfg.Viewer.Volume)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the match runs silent
			logger.Printf("audio initialization failed: %v", err)
		} else {
			s.sound = sm
			defer sm.Cleanup()
		}
	}

	if *framesFlag != "" {
		f, err := os.Create(*framesFlag)
		if err != nil {
			return fmt.Errorf("create frame stream: %w", err)
		}
		defer f.Close()
		s.frames = snapshot.NewStream(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headlessFlag {
		err = runHeadless(ctx, m, s)
	} else {
		err = runViewer(ctx, cfg, m, s)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if res, ok := m.Result(); ok {
		fmt.Println(summary(res, m.Tick()))
	} else {
		fmt.Println("match stopped before a result")
	}
	return nil
}

func runHeadless(ctx context.Context, m *engine.Match, s *session) error {
	s.drain()
	step := m.Config().Step()
	for m.Advance(step) {
		s.drain()
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	s.drain()
	return nil
}

func runViewer(ctx context.Context, cfg config.Config, m *engine.Match, s *session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		core.SetCrashCleanup(nil)
		screen.Fini()
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	core.Go(func() {
		if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Printf("match loop: %v", err)
		}
	})

	viewer := render.NewViewer(screen, cfg.MatchConfig().Arena, cfg.Viewer.Color)
	err = viewer.Run(ctx, m, m.Config().Interval(), s.drain)
	cancel()
	s.drain()
	return err
}

func summary(res system.Result, ticks int64) string {
	var b strings.Builder
	if res.Draw {
		b.WriteString("draw")
	} else {
		fmt.Fprintf(&b, "winner: %s", res.Name)
	}
	fmt.Fprintf(&b, " after %d ticks", ticks)
	if res.TimedOut {
		b.WriteString(" (tick limit)")
	}
	return b.String()
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\nAutonomous arena fighters.\n\n", os.Args[0])
		flag.PrintDefaults()
		if info, ok := debug.ReadBuildInfo(); ok {
			fmt.Fprintf(flag.CommandLine.Output(), "\n%s %s\n", info.Main.Path, info.Main.Version)
		}
	}
}
