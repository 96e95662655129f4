package frogger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Visual elements
const (
	WaterChar     = '≈'
	WoodChar      = '═'
	CarChar       = '▣'
	VanChar       = '█'
	DoorOpenChar  = '□'
	DoorWallChar  = '▓'
	FlagChar      = '*'
	FrogChar      = '@'
	BankChar      = '·'
	hudRows       = 1
	tooSmallTitle = "Terminal too small"
)

// glyph pairs a rune with its color.
type glyph struct {
	r rune
	c core.Color
}

var glyphs = map[Kind]glyph{
	KindWood:       {WoodChar, core.ColorBrown},
	KindCar:        {CarChar, core.ColorRed},
	KindVan:        {VanChar, core.ColorYellow},
	KindDoorOpen:   {DoorOpenChar, core.ColorGreen},
	KindDoorClosed: {DoorWallChar, core.ColorGray},
	KindFlag:       {FlagChar, core.ColorBrightYellow},
	KindFrog:       {FrogChar, core.ColorBrightGreen},
	KindSkull:      {'x', core.ColorWhite},
	KindStar:       {'✦', core.ColorBrightYellow},
}

// board maps canvas units to terminal cells.
type board struct {
	cols, rows int     // Grid size in cells
	cw, ch     float64 // Canvas units per cell
	ox, oy     int     // Top-left of the grid on screen
}

func (g *Game) board(dst *core.Screen) board {
	r := g.engine.Config().Render
	canvas := g.engine.Rules().Canvas

	b := board{
		cols: int(canvas / r.CellWidth),
		rows: int(canvas / r.CellHeight),
		cw:   r.CellWidth,
		ch:   r.CellHeight,
	}
	b.ox = (dst.Width() - b.cols) / 2
	b.oy = hudRows + (dst.Height()-hudRows-b.rows)/2
	if b.ox < 0 {
		b.ox = 0
	}
	if b.oy < hudRows {
		b.oy = hudRows
	}
	return b
}

// fits reports whether the whole grid and the HUD are visible.
func (b board) fits(dst *core.Screen) bool {
	return dst.Width() >= b.cols && dst.Height() >= b.rows+hudRows
}

// Render draws the current state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	b := g.board(dst)
	if !b.fits(dst) {
		g.drawCenteredMessage(dst, tooSmallTitle, fmt.Sprintf("Need %dx%d", b.cols, b.rows+hudRows))
		return
	}

	g.drawBackground(dst, b)
	for _, body := range g.state.Bodies() {
		g.drawBody(dst, b, body)
	}

	// Draw HUD
	scoreText := fmt.Sprintf(" Score: %d  Lives: %d ", g.state.Score, g.state.ExtraLife)
	dst.DrawText(b.ox, 0, scoreText)

	doorsText := fmt.Sprintf(" Doors: %d/%d ", len(g.state.DoorSuccess), len(g.state.Slots()))
	dst.DrawText(b.ox+b.cols-len(doorsText), 0, doorsText)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.state.GameEnd {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.state.Score))
	}
}

// drawBackground paints the river band as water and the safe rows as banks.
func (g *Game) drawBackground(dst *core.Screen, b board) {
	rules := g.engine.Rules()
	for row := 0; row < b.rows; row++ {
		y := float64(row) * b.ch
		fill, color := ' ', core.ColorDefault
		switch {
		case rules.RiverBand.Contains(y):
			fill, color = WaterChar, core.ColorBlue
		case !rules.TrafficBand.Contains(y) && !rules.DoorBand.Contains(y):
			fill, color = BankChar, core.ColorGray
		}
		for col := 0; col < b.cols; col++ {
			dst.SetColored(b.ox+col, b.oy+row, fill, color)
		}
	}
}

// drawBody fills the cells a body covers. Bodies that cross the right
// edge continue on the left, matching the torus the world lives on.
func (g *Game) drawBody(dst *core.Screen, b board, body Body) {
	gl, ok := glyphs[body.Kind]
	if !ok {
		return
	}

	col := int(math.Floor(body.Pos.X / b.cw))
	row := int(math.Floor(body.Pos.Y / b.ch))
	w := core.Max(1, int(math.Round(body.Width/b.cw)))
	h := core.Max(1, int(math.Round(body.Height/b.ch)))

	for dy := 0; dy < h; dy++ {
		if row+dy < 0 || row+dy >= b.rows {
			continue
		}
		for dx := 0; dx < w; dx++ {
			x := core.WrapI(col+dx, b.cols)
			dst.SetColored(b.ox+x, b.oy+row+dy, gl.r, gl.c)
		}
	}
}

// drawCenteredMessage displays a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
