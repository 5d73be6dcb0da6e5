package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-arena/snapshot"
	"github.com/lixenwraith/vi-arena/system"
)

// Source supplies frames to the viewer
type Source interface {
	Frame() snapshot.Frame
	Result() (system.Result, bool)
}

// Run redraws src every interval until the user quits or ctx ends
// onTick runs before each redraw on the viewer goroutine
func (v *Viewer) Run(ctx context.Context, src Source, interval time.Duration, onTick func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			eventChan <- ev
		}
	}()

	v.draw(src)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if IsQuit(ev) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
				v.draw(src)
			}

		case <-ticker.C:
			if onTick != nil {
				onTick()
			}
			v.draw(src)
		}
	}
}

func (v *Viewer) draw(src Source) {
	if res, ok := src.Result(); ok {
		v.Draw(src.Frame(), &res)
		return
	}
	v.Draw(src.Frame(), nil)
}

// IsQuit reports Esc, Ctrl-C and q
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
