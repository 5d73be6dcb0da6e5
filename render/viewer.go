package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/snapshot"
	"github.com/lixenwraith/vi-arena/system"
)

// playerColors follows roster order
var playerColors = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorYellow,
	tcell.ColorPurple,
}

// Viewer draws frames of one arena onto a tcell screen
type Viewer struct {
	screen tcell.Screen
	arena  core.Arena
	color  bool
}

func NewViewer(screen tcell.Screen, arena core.Arena, color bool) *Viewer {
	return &Viewer{screen: screen, arena: arena, color: color}
}

// Field returns the playing field size in cells, borders excluded
func (v *Viewer) Field() (cols, rows int) {
	w, h := v.screen.Size()
	return w - parameter.SidebarWidth - 2, h - 2
}

// CellOf maps an arena position to the screen cell inside the border
func (v *Viewer) CellOf(x, y float64) (col, row int) {
	cols, rows := v.Field()
	col = 1 + min(max(int(x/v.arena.Width*float64(cols)), 0), cols-1)
	row = 1 + min(max(int(y/v.arena.Height*float64(rows)), 0), rows-1)
	return col, row
}

// PlayerStyle returns the style a player is drawn with
func (v *Viewer) PlayerStyle(index int, alive bool) tcell.Style {
	style := tcell.StyleDefault
	if v.color {
		style = style.Foreground(playerColors[index%len(playerColors)])
	}
	if !alive {
		style = style.Dim(true)
	}
	return style
}

// Draw renders f and, when res is non-nil, the result banner
func (v *Viewer) Draw(f snapshot.Frame, res *system.Result) {
	v.screen.Clear()
	cols, rows := v.Field()
	if cols < parameter.MinFieldCols || rows < parameter.MinFieldRows {
		v.text(0, 0, "terminal too small", tcell.StyleDefault)
		v.screen.Show()
		return
	}

	v.border(0, 0, cols+2, rows+2)

	// Dead players first so the living draw over them
	for pass := 0; pass < 2; pass++ {
		for _, p := range f.Players {
			if p.Alive != (pass == 1) {
				continue
			}
			col, row := v.CellOf(p.X, p.Y)
			v.screen.SetContent(col, row, glyph(p), nil, v.PlayerStyle(p.Index, p.Alive))
		}
	}

	v.sidebar(cols+2, f)
	if res != nil {
		v.banner(cols, rows, *res)
	}
	v.screen.Show()
}

func glyph(p snapshot.Player) rune {
	if !p.Alive {
		return parameter.GlyphDead
	}
	return rune('1' + p.Index%9)
}

func (v *Viewer) border(x0, y0, w, h int) {
	style := tcell.StyleDefault
	for x := x0 + 1; x < x0+w-1; x++ {
		v.screen.SetContent(x, y0, parameter.GlyphBorderH, nil, style)
		v.screen.SetContent(x, y0+h-1, parameter.GlyphBorderH, nil, style)
	}
	for y := y0 + 1; y < y0+h-1; y++ {
		v.screen.SetContent(x0, y, parameter.GlyphBorderV, nil, style)
		v.screen.SetContent(x0+w-1, y, parameter.GlyphBorderV, nil, style)
	}
	for _, c := range [][2]int{{x0, y0}, {x0 + w - 1, y0}, {x0, y0 + h - 1}, {x0 + w - 1, y0 + h - 1}} {
		v.screen.SetContent(c[0], c[1], parameter.GlyphBorderEdge, nil, style)
	}
}

func (v *Viewer) sidebar(x int, f snapshot.Frame) {
	x += 1
	row := 1
	for _, p := range f.Players {
		style := v.PlayerStyle(p.Index, p.Alive)
		v.text(x, row, fmt.Sprintf("%c %s", glyph(p), truncate(p.Name, parameter.SidebarWidth-4)), style)
		v.text(x+2, row+1, HealthBar(p.Health, p.MaxHealth, parameter.HealthBarWidth)+fmt.Sprintf(" %.2f", max(p.Health, 0)), style)
		row += 3
	}
	v.text(x, row, fmt.Sprintf("tick %d", f.Tick), tcell.StyleDefault.Dim(true))
}

func (v *Viewer) banner(cols, rows int, res system.Result) {
	msg := "DRAW"
	if !res.Draw {
		msg = "WINNER: " + res.Name
	}
	if res.TimedOut {
		msg += " (time)"
	}
	lines := []string{msg, "press q to quit"}
	for i, line := range lines {
		x := 1 + max((cols-len(line))/2, 0)
		v.text(x, rows/2+i, line, tcell.StyleDefault.Reverse(i == 0).Bold(i == 0))
	}
}

func (v *Viewer) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// HealthBar renders health as a fixed-width bar; negative health shows empty
func HealthBar(health, maxHealth float64, width int) string {
	filled := 0
	if maxHealth > 0 && health > 0 {
		filled = int(health/maxHealth*float64(width) + 0.5)
		filled = min(filled, width)
	}
	return "[" + strings.Repeat(string(parameter.GlyphBarFull), filled) +
		strings.Repeat(string(parameter.GlyphBarEmpty), width-filled) + "]"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
